package proof

import "github.com/kjmnn/yaga/cnf"

// Wrapper is a null-safe facade around a Tracer: every operation is a
// no-op when no underlying tracer is installed, and the capability flags
// report true so theory use is never blocked just because proofs are
// disabled.
//
// A Wrapper is a plain struct holding a Tracer interface value, so copying
// it by value already gives shared-by-reference semantics for the
// underlying tracer (the interface's dynamic pointer is copied, not the
// tracer it points to) — multiple theory plugins can hold a Wrapper by
// value and still write to one proof stream, with no explicit refcounting
// needed.
type Wrapper struct {
	tracer Tracer
}

// NewWrapper wraps tracer. A nil tracer produces a null object: every
// operation is a no-op and SupportsLRA/SupportsUF both report true.
func NewWrapper(tracer Tracer) Wrapper {
	return Wrapper{tracer: tracer}
}

// Installed reports whether an underlying tracer is present.
func (w Wrapper) Installed() bool { return w.tracer != nil }

func (w Wrapper) TrivialProof() {
	if w.tracer != nil {
		w.tracer.TrivialProof()
	}
}

func (w Wrapper) BeginProof(db cnf.Database) {
	if w.tracer != nil {
		w.tracer.BeginProof(db)
	}
}

func (w Wrapper) InitConflict(conflict *cnf.Clause, explanation Explanation) {
	if w.tracer != nil {
		w.tracer.InitConflict(conflict, explanation)
	}
}

func (w Wrapper) ResolveConflict(active, other cnf.ClauseID) {
	if w.tracer != nil {
		w.tracer.ResolveConflict(active, other)
	}
}

func (w Wrapper) RenameConflict(from, to cnf.ClauseID) {
	if w.tracer != nil {
		w.tracer.RenameConflict(from, to)
	}
}

func (w Wrapper) FinishConflicts() {
	if w.tracer != nil {
		w.tracer.FinishConflicts()
	}
}

func (w Wrapper) LearnClause(learned *cnf.Clause) {
	if w.tracer != nil {
		w.tracer.LearnClause(learned)
	}
}

func (w Wrapper) DeleteClause(c *cnf.Clause) {
	if w.tracer != nil {
		w.tracer.DeleteClause(c)
	}
}

func (w Wrapper) DeriveFinal(empty *cnf.Clause) {
	if w.tracer != nil {
		w.tracer.DeriveFinal(empty)
	}
}

func (w Wrapper) EndProof(db cnf.Database) {
	if w.tracer != nil {
		w.tracer.EndProof(db)
	}
}

func (w Wrapper) SupportsLRA() bool {
	if w.tracer != nil {
		return w.tracer.SupportsLRA()
	}
	return true
}

func (w Wrapper) SupportsUF() bool {
	if w.tracer != nil {
		return w.tracer.SupportsUF()
	}
	return true
}
