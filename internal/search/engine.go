// Package search is a minimal CDCL engine over Boolean CNF, adapted from a
// table-driven unit-propagation solver into a harness that drives a
// proof.Wrapper and a subsumption.Engine at every event the real
// solver's plugins (CDCL+theory conflict analysis) would. It exists to
// exercise the proof and subsumption packages end to end; it is not a
// competitive solver, and has no support for any theory beyond Boolean
// satisfiability.
package search

import (
	"github.com/hashicorp/go-hclog"
	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/proof"
	"github.com/kjmnn/yaga/subsumption"
)

// varInfo tracks a single variable's current assignment.
type varInfo struct {
	assigned bool
	value    bool // polarity asserted, meaningful only if assigned
	level    int
	reason   *cnf.Clause // nil for decisions
}

// Engine is a CDCL search loop over a cnf.Database, reporting every
// conflict-analysis event to a proof.Wrapper and invoking a
// subsumption.Engine on restart.
type Engine struct {
	db      *cnf.MemoryDatabase
	tracer  proof.Wrapper
	subsume *subsumption.Engine
	logger  hclog.Logger

	vars []cnf.Variable
	info map[cnf.Variable]*varInfo

	trail    []cnf.Literal
	trailIdx []int // trail index at the start of each decision level

	// reason clause for the literal that this map's key stands for, by its
	// asserted (true) form.
	reasonMap map[cnf.Literal]*cnf.Clause

	// conflict-analysis scratch state, valid only while analyzing a
	// conflict.
	cH map[cnf.Literal]struct{} // literals currently in the resolvent
	cP map[cnf.Literal]struct{} // cH literals from a decision level below current
	cL cnf.Literal              // most recently asserted literal among cH's negations
	cN int                      // count of cH literals at the current decision level

	restartEvery int
	conflicts    int
}

// NewEngine returns an Engine over db, reporting to tracer and consulting
// subsume for restart-time subsumption. restartEvery is the number of
// conflicts between restarts (0 disables restarts).
func NewEngine(db *cnf.MemoryDatabase, tracer proof.Wrapper, subsume *subsumption.Engine, logger hclog.Logger, restartEvery int) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		db:           db,
		tracer:       tracer,
		subsume:      subsume,
		logger:       logger.Named("search"),
		info:         make(map[cnf.Variable]*varInfo),
		reasonMap:    make(map[cnf.Literal]*cnf.Clause),
		restartEvery: restartEvery,
	}
}

// AddVariable registers v as part of the problem, so the engine knows to
// decide it.
func (e *Engine) AddVariable(v cnf.Variable) {
	if _, known := e.info[v]; known {
		return
	}
	e.vars = append(e.vars, v)
	e.info[v] = &varInfo{}
}

// Solve runs the search loop to completion, returning true iff the
// database's asserted clauses are satisfiable.
func (e *Engine) Solve() bool {
	for _, c := range e.db.Asserted() {
		if c.IsEmpty() {
			e.tracer.TrivialProof()
			return false
		}
	}

	e.tracer.BeginProof(e.db)

	for {
		conflict := e.propagate()
		if conflict != nil {
			e.logger.Debug("conflict", "clause", conflict.ID(), "level", e.decisionLevel())
			if e.decisionLevel() == 0 {
				e.analyzeAndFinish(conflict)
				return false
			}

			level, learned := e.analyze(conflict)
			if learned.IsEmpty() {
				e.tracer.DeriveFinal(learned)
				return false
			}

			e.logger.Debug("learned", "clause", learned.ID(), "backjump", level)
			e.tracer.LearnClause(learned)
			e.db.AddLearned(learned)
			e.trimToLevel(level)
			lit := e.cL.Negate()
			e.assert(lit, e.decisionLevel(), learned)

			e.conflicts++
			if e.restartEvery > 0 && e.conflicts%e.restartEvery == 0 {
				e.logger.Debug("restart", "conflicts", e.conflicts)
				e.restart()
			}
			continue
		}

		next, ok := e.pickUnassigned()
		if !ok {
			e.tracer.EndProof(e.db)
			return true
		}
		e.newDecisionLevel()
		e.logger.Trace("decide", "var", next)
		e.assert(cnf.NewLiteral(next, true), e.decisionLevel(), nil)
	}
}

// decisionLevel returns the number of decisions currently on the trail.
func (e *Engine) decisionLevel() int { return len(e.trailIdx) }

func (e *Engine) newDecisionLevel() {
	e.trailIdx = append(e.trailIdx, len(e.trail))
}

func (e *Engine) pickUnassigned() (cnf.Variable, bool) {
	for _, v := range e.vars {
		if !e.info[v].assigned {
			return v, true
		}
	}
	return 0, false
}

// valueOf reports the current truth value of lit: true, false, or unknown
// (ok=false).
func (e *Engine) valueOf(lit cnf.Literal) (value bool, ok bool) {
	info, known := e.info[lit.Var()]
	if !known || !info.assigned {
		return false, false
	}
	if lit.IsNegation() {
		return !info.value, true
	}
	return info.value, true
}

func (e *Engine) assert(lit cnf.Literal, level int, reason *cnf.Clause) {
	info := e.info[lit.Var()]
	info.assigned = true
	info.value = !lit.IsNegation()
	info.level = level
	info.reason = reason
	e.trail = append(e.trail, lit)
	e.reasonMap[lit] = reason
}

// propagate applies unit propagation until fixpoint or conflict, returning
// the falsified clause on conflict.
func (e *Engine) propagate() *cnf.Clause {
	for {
		progressed := false
		for _, c := range e.allClauses() {
			unassignedCount := 0
			var unassigned cnf.Literal
			satisfied := false
			falseCount := 0
			for _, l := range c.Literals() {
				v, ok := e.valueOf(l)
				switch {
				case !ok:
					unassignedCount++
					unassigned = l
				case v:
					satisfied = true
				default:
					falseCount++
				}
			}
			if satisfied {
				continue
			}
			if falseCount == c.Len() {
				return c
			}
			if unassignedCount == 1 {
				e.assert(unassigned, e.decisionLevel(), c)
				progressed = true
			}
		}
		if !progressed {
			return nil
		}
	}
}

func (e *Engine) allClauses() []*cnf.Clause {
	all := make([]*cnf.Clause, 0, len(e.db.Asserted())+len(e.db.Learned()))
	all = append(all, e.db.Asserted()...)
	all = append(all, e.db.Learned()...)
	return all
}

// trimToLevel unassigns every variable assigned above level, leaving level
// as the current decision level.
func (e *Engine) trimToLevel(level int) {
	if len(e.trailIdx) <= level {
		return
	}
	cut := e.trailIdx[level]
	for i := len(e.trail) - 1; i >= cut; i-- {
		lit := e.trail[i]
		delete(e.reasonMap, lit)
		info := e.info[lit.Var()]
		info.assigned = false
		info.reason = nil
	}
	e.trail = e.trail[:cut]
	e.trailIdx = e.trailIdx[:level]
}

func (e *Engine) restart() {
	e.trimToLevel(0)
	if e.subsume != nil {
		e.subsume.OnRestart(e.db, nil)
	}
}
