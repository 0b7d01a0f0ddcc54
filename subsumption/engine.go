// Package subsumption implements restart-time removal of learned clauses
// subsumed by other learned clauses, and self-subsuming minimization of a
// freshly learned clause. It notifies a proof.Wrapper of every clause it
// removes so an in-progress proof stays valid.
package subsumption

import (
	"sort"

	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/proof"
)

// Trail is the read-only view of the solver trail subsumption is handed;
// this package does not currently need anything from it, but the parameter
// is threaded through OnRestart/Minimize to match the contract the search
// engine calls them under.
type Trail interface{}

// clausePtr pairs a clause with its precomputed signature, avoiding
// recomputation every time it's visited from a different occurrence list.
type clausePtr struct {
	clause *cnf.Clause
	sig    uint64
}

// Engine removes subsumed learned clauses on restart and minimizes learned
// clauses via self-subsuming resolution.
type Engine struct {
	// literal -> clauses (with signature) in which it occurs, rebuilt on
	// each restart over the learned-clause region.
	occur map[cnf.Literal][]clausePtr
	// scratch bitset for subset tests in subsumes/selfSubsumes, reused and
	// cleared between calls.
	litBitset map[cnf.Literal]bool
	// number of learned clauses present at the end of the previous restart
	// pass.
	oldSize int
	tracer  proof.Wrapper
}

// NewEngine returns an Engine that reports every clause it removes to
// tracer. Pass the zero proof.Wrapper to run without proof production.
func NewEngine(tracer proof.Wrapper) *Engine {
	return &Engine{
		occur:     make(map[cnf.Literal][]clausePtr),
		litBitset: make(map[cnf.Literal]bool),
		tracer:    tracer,
	}
}

func makeClausePtr(c *cnf.Clause) clausePtr {
	return clausePtr{clause: c, sig: cnf.Signature(c.Literals())}
}

// OnRestart finds and removes subsumed learned clauses from db.
func (e *Engine) OnRestart(db cnf.Database, trail Trail) {
	learned := db.Learned()

	if e.oldSize < len(learned) {
		newClauses := learned[e.oldSize:]
		sort.Slice(newClauses, func(i, j int) bool {
			return newClauses[i].Len() < newClauses[j].Len()
		})
	}

	e.index(learned)

	for _, c := range learned {
		if c.IsEmpty() {
			continue
		}
		e.removeSubsumed(c)
	}

	db.Compact()
	e.oldSize = len(db.Learned())
}

// index rebuilds occur from scratch over clauses.
func (e *Engine) index(clauses []*cnf.Clause) {
	e.occur = make(map[cnf.Literal][]clausePtr)
	for _, c := range clauses {
		if c.IsEmpty() {
			continue
		}
		cp := makeClausePtr(c)
		for _, lit := range c.Literals() {
			e.occur[lit] = append(e.occur[lit], cp)
		}
	}
}

// subsumes reports whether first is a proper subset of second: every
// literal of first appears in second, and first is strictly shorter.
func (e *Engine) subsumes(first, second clausePtr) bool {
	if first.clause == second.clause {
		return false
	}
	if first.clause.Len() >= second.clause.Len() {
		return false
	}
	if first.sig&^second.sig != 0 {
		return false
	}

	for _, l := range second.clause.Literals() {
		e.litBitset[l] = true
	}
	ok := true
	for _, l := range first.clause.Literals() {
		if !e.litBitset[l] {
			ok = false
			break
		}
	}
	for _, l := range second.clause.Literals() {
		delete(e.litBitset, l)
	}
	return ok
}

// removeSubsumed reports and clears every clause subsumed by c: the tracer
// is notified with the clause's literals still intact, and only then is it
// cleared (marking it empty for later database compaction) — clearing
// before the tracer call would make delete_clause emit an empty literal
// body instead of the subsumed clause's actual literals.
func (e *Engine) removeSubsumed(c *cnf.Clause) {
	lits := c.Literals()
	if len(lits) == 0 {
		return
	}

	// Pick the literal with the shortest occurrence list: fewer candidates
	// to test against.
	shortest := lits[0]
	for _, l := range lits[1:] {
		if len(e.occur[l]) < len(e.occur[shortest]) {
			shortest = l
		}
	}

	cp := makeClausePtr(c)
	for _, dp := range e.occur[shortest] {
		if dp.clause == c || dp.clause.IsEmpty() {
			continue
		}
		if e.subsumes(cp, dp) {
			e.tracer.DeleteClause(dp.clause)
			dp.clause.Clear()
		}
	}
}

// selfSubsumes reports whether every literal of first other than lit is
// present in second other than lit's negation: equivalently, whether
// resolve(first, second, lit) — i.e. (first \ {lit}) ∪ (second \ {¬lit}) —
// is exactly second's literals minus lit's negation. If so, lit's negation
// can be dropped from second via self-subsuming resolution against first.
func (e *Engine) selfSubsumes(first, second *cnf.Clause, lit cnf.Literal) bool {
	notLit := lit.Negate()
	for _, l := range second.Literals() {
		if l == notLit {
			continue
		}
		e.litBitset[l] = true
	}

	ok := true
	for _, l := range first.Literals() {
		if l == lit {
			continue
		}
		if !e.litBitset[l] {
			ok = false
			break
		}
	}

	for _, l := range second.Literals() {
		if l == notLit {
			continue
		}
		delete(e.litBitset, l)
	}
	return ok
}

// Minimize shrinks clause via self-subsuming resolution: for each literal
// lit of clause, if some indexed clause D with |D| <= |clause| satisfies
// selfSubsumes(D, clause, ¬lit), lit is redundant and is removed.
func (e *Engine) Minimize(trail Trail, clause *cnf.Clause) {
	i := 0
	for i < clause.Len() {
		lit := clause.Literals()[i]
		removed := false

		for _, dp := range e.occur[lit.Negate()] {
			d := dp.clause
			if d.IsEmpty() || d.Len() > clause.Len() {
				continue
			}
			if e.selfSubsumes(d, clause, lit.Negate()) {
				clause.RemoveAt(i)
				removed = true
				break
			}
		}

		if !removed {
			i++
		}
		// If a literal was removed, a fresh literal now occupies index i
		// (swap-with-last), so the cursor is not advanced.
	}
}
