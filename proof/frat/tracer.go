package frat

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/proof"
)

// Tracer produces FRAT proofs (ASCII or binary) from the stream of
// conflict-analysis events the search engine reports. As FRAT was designed
// for SAT solvers, theory conflicts are modelled as trusted assertions and
// never checked by this tracer.
type Tracer struct {
	enc    *encoder
	logger hclog.Logger
	binary bool

	nextStepID uint64
	// clause id -> proof-step id, for every clause currently known to the
	// proof (between its first appearance and a delete_clause).
	clauseDefs map[cnf.ClauseID]uint64
	// conflict clause id -> proof node, for conflicts currently under
	// analysis.
	openConflicts map[cnf.ClauseID]proof.Node
	// proof-step id -> clause, for theory-introduced clauses that have not
	// yet been incorporated into a learned clause.
	openTheory map[uint64]*cnf.Clause

	began bool
}

var _ proof.Tracer = (*Tracer)(nil)

// New returns a Tracer that writes to out in ASCII or binary mode. A nil
// logger defaults to hclog's null logger (no output).
func New(out io.WriteCloser, binary bool, logger hclog.Logger) *Tracer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Tracer{
		enc:           newEncoder(out, binary),
		logger:        logger.Named("frat"),
		binary:        binary,
		nextStepID:    1,
		clauseDefs:    make(map[cnf.ClauseID]uint64),
		openConflicts: make(map[cnf.ClauseID]proof.Node),
		openTheory:    make(map[uint64]*cnf.Clause),
	}
}

// Close flushes and closes the underlying proof stream.
func (t *Tracer) Close() error { return t.enc.Close() }

func (t *Tracer) TrivialProof() {
	empty := cnf.NewClause()
	t.writeComment("False asserted, proof trivial")
	t.originalClause(empty)
	t.finalClause(empty)
}

func (t *Tracer) BeginProof(db cnf.Database) {
	if t.began {
		panic("frat: begin_proof called more than once")
	}
	t.began = true
	for _, c := range db.Asserted() {
		t.originalClause(c)
	}
}

func (t *Tracer) InitConflict(conflict *cnf.Clause, explanation proof.Explanation) {
	if _, open := t.openConflicts[conflict.ID()]; open {
		panic(fmt.Sprintf("frat: init_conflict: clause %d already has an open conflict", conflict.ID()))
	}
	if _, isBoolean := explanation.(proof.Boolean); !isBoolean {
		if _, known := t.clauseDefs[conflict.ID()]; known {
			panic(fmt.Sprintf("frat: init_conflict: theory clause %d already registered", conflict.ID()))
		}
		t.theoryComment(explanation)
		t.originalClause(conflict)
		t.openTheory[t.clauseDefs[conflict.ID()]] = conflict
	}
	t.openConflicts[conflict.ID()] = proof.ConflictIntro{
		ClauseID:    conflict.ID(),
		Explanation: explanation,
	}
	t.logger.Debug("init_conflict", "clause", conflict.ID())
}

func (t *Tracer) ResolveConflict(active, other cnf.ClauseID) {
	node, open := t.openConflicts[active]
	if !open {
		panic(fmt.Sprintf("frat: resolve_conflict: %d has no open conflict", active))
	}
	if _, known := t.clauseDefs[other]; !known {
		panic(fmt.Sprintf("frat: resolve_conflict: %d is not a known clause", other))
	}
	t.openConflicts[active] = proof.Resolution{Inner: node, Other: other}
	t.logger.Debug("resolve_conflict", "active", active, "other", other)
}

func (t *Tracer) RenameConflict(from, to cnf.ClauseID) {
	node, open := t.openConflicts[from]
	if !open {
		panic(fmt.Sprintf("frat: rename_conflict: %d has no open conflict", from))
	}
	if from == to {
		return
	}
	if _, occupied := t.openConflicts[to]; occupied {
		panic(fmt.Sprintf("frat: rename_conflict: target %d already occupied", to))
	}
	delete(t.openConflicts, from)
	t.openConflicts[to] = node
	t.logger.Debug("rename_conflict", "from", from, "to", to)
}

func (t *Tracer) FinishConflicts() {
	for _, clause := range t.openTheory {
		t.DeleteClause(clause)
	}
	t.openTheory = make(map[uint64]*cnf.Clause)
	t.openConflicts = make(map[cnf.ClauseID]proof.Node)
	t.logger.Debug("finish_conflicts")
}

func (t *Tracer) LearnClause(learned *cnf.Clause) {
	node, open := t.openConflicts[learned.ID()]
	if !open {
		panic(fmt.Sprintf("frat: learn_clause: %d has no open conflict", learned.ID()))
	}
	chain := proof.Linearize(node)
	delete(t.openConflicts, learned.ID())

	if len(chain) == 1 {
		if step, isDefined := t.clauseDefs[chain[0]]; isDefined {
			if _, stillOpen := t.openTheory[step]; stillOpen {
				// Trivial conflict analysis: the theory clause is learned
				// as-is, with no resolution. Reuse its step id instead of
				// emitting a new `a` record.
				t.writeComment(fmt.Sprintf("Theory clause %d learned as-is", step))
				t.clauseDefs[learned.ID()] = step
				delete(t.openTheory, step)
				t.logger.Debug("learn_clause (theory reuse)", "clause", learned.ID(), "step", step)
				return
			}
		}
	}

	if _, exists := t.clauseDefs[learned.ID()]; exists {
		panic(fmt.Sprintf("frat: learn_clause: %d already registered", learned.ID()))
	}
	id := t.nextStepID
	t.nextStepID++
	t.clauseDefs[learned.ID()] = id

	t.enc.command('a')
	t.enc.unsigned(id)
	t.enc.clause(learned.Literals())
	if len(chain) > 0 {
		t.enc.zero()
		t.enc.command('l')
		for _, id := range chain {
			t.enc.signed(int(t.clauseDefs[id]))
		}
	}
	t.enc.end()
	t.logger.Debug("learn_clause", "clause", learned.ID(), "step", id, "chain", chain)
}

func (t *Tracer) DeleteClause(c *cnf.Clause) {
	id, known := t.clauseDefs[c.ID()]
	if !known {
		panic(fmt.Sprintf("frat: delete_clause: %d is not known to the proof", c.ID()))
	}
	delete(t.clauseDefs, c.ID())
	t.enc.command('d')
	t.enc.unsigned(id)
	t.enc.clause(c.Literals())
	t.enc.end()
	t.logger.Trace("delete_clause", "clause", c.ID(), "step", id)
}

func (t *Tracer) DeriveFinal(empty *cnf.Clause) {
	t.LearnClause(empty)
	t.finalClause(empty)
}

func (t *Tracer) EndProof(db cnf.Database) {
	for _, c := range t.openTheory {
		// Shouldn't normally exist: every theory clause should have been
		// absorbed into a learned clause or deleted by finish_conflicts.
		t.finalClause(c)
	}
	learned := db.Learned()
	for i := len(learned) - 1; i >= 0; i-- {
		t.finalClause(learned[i])
	}
	asserted := db.Asserted()
	for i := len(asserted) - 1; i >= 0; i-- {
		t.finalClause(asserted[i])
	}
}

func (t *Tracer) SupportsLRA() bool { return true }
func (t *Tracer) SupportsUF() bool  { return true }

func (t *Tracer) originalClause(c *cnf.Clause) {
	if _, exists := t.clauseDefs[c.ID()]; exists {
		panic(fmt.Sprintf("frat: original clause %d already registered", c.ID()))
	}
	id := t.nextStepID
	t.nextStepID++
	t.clauseDefs[c.ID()] = id
	t.enc.command('o')
	t.enc.unsigned(id)
	t.enc.clause(c.Literals())
	t.enc.end()
	t.logger.Trace("original", "clause", c.ID(), "step", id)
}

func (t *Tracer) finalClause(c *cnf.Clause) {
	id, known := t.clauseDefs[c.ID()]
	if !known {
		panic(fmt.Sprintf("frat: final clause %d is not known to the proof", c.ID()))
	}
	t.enc.command('f')
	t.enc.unsigned(id)
	t.enc.clause(c.Literals())
	t.enc.end()
	t.logger.Trace("final", "clause", c.ID(), "step", id)
}

func (t *Tracer) theoryComment(explanation proof.Explanation) {
	switch explanation.(type) {
	case proof.LRABounds:
		t.writeComment("Theory conflict (LRA bounds)")
	case proof.LRADisequality:
		t.writeComment("Theory conflict (LRA disequality)")
	case proof.UFCongruence:
		t.writeComment("Theory conflict (UF congruence)")
	default:
		t.writeComment("Theory conflict")
	}
}

func (t *Tracer) writeComment(text string) {
	t.enc.comment(text)
}
