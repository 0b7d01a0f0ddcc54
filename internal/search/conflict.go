package search

import (
	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/proof"
)

// levelOf returns the decision level at which lit's variable was assigned,
// or 0 if unassigned.
func (e *Engine) levelOf(lit cnf.Literal) int {
	info, ok := e.info[lit.Var()]
	if !ok || !info.assigned {
		return 0
	}
	return info.level
}

// addConflictLiteral folds l into the resolvent under construction: if
// l.Negate() was assigned above level 0, l joins cH (and cN or cP,
// depending on whether it's at the current decision level).
func (e *Engine) addConflictLiteral(l cnf.Literal) {
	if _, already := e.cH[l]; already {
		return
	}
	level := e.levelOf(l.Negate())
	if level == 0 {
		return
	}
	e.cH[l] = struct{}{}
	if level == e.decisionLevel() {
		e.cN++
	} else {
		e.cP[l] = struct{}{}
	}
}

// removeConflictLiteral drops l from the resolvent, adjusting cN/cP to
// match.
func (e *Engine) removeConflictLiteral(l cnf.Literal) {
	delete(e.cH, l)
	if e.levelOf(l.Negate()) == e.decisionLevel() {
		e.cN--
	} else {
		delete(e.cP, l)
	}
}

// findLastAsserted sets cL to the most recently asserted literal whose
// negation is in cH: the next literal conflict analysis will explain.
func (e *Engine) findLastAsserted() {
	for i := len(e.trail) - 1; i >= 0; i-- {
		l := e.trail[i]
		if _, inResolvent := e.cH[l.Negate()]; inResolvent {
			e.cL = l
			return
		}
	}
}

// analyze resolves conflict back to its first unique implication point,
// reporting every resolution step to the tracer, and returns the backjump
// level together with the newly learned clause.
func (e *Engine) analyze(conflict *cnf.Clause) (int, *cnf.Clause) {
	e.cH = make(map[cnf.Literal]struct{})
	e.cP = make(map[cnf.Literal]struct{})
	e.cN = 0

	e.tracer.InitConflict(conflict, proof.Boolean{})
	active := conflict.ID()

	for _, l := range conflict.Literals() {
		e.addConflictLiteral(l)
	}
	e.findLastAsserted()

	for e.cN != 1 {
		lit := e.cL
		reason := e.reasonMap[lit]
		if reason == nil {
			break
		}
		e.tracer.ResolveConflict(active, reason.ID())
		e.removeConflictLiteral(lit.Negate())
		for _, l := range reason.Literals() {
			if l != lit {
				e.addConflictLiteral(l)
			}
		}
		e.findLastAsserted()
	}

	lits := make([]cnf.Literal, 0, len(e.cP)+1)
	for l := range e.cP {
		lits = append(lits, l)
	}
	lits = append(lits, e.cL.Negate())
	learned := cnf.NewClause(lits...)

	e.tracer.RenameConflict(active, learned.ID())
	if e.subsume != nil {
		e.subsume.Minimize(nil, learned)
	}

	level := 0
	for l := range e.cP {
		if lv := e.levelOf(l.Negate()); lv > level {
			level = lv
		}
	}
	return level, learned
}

// analyzeAndFinish handles a conflict discovered at decision level 0: every
// literal of conflict was already falsified by unit propagation alone, so
// walking the trail backwards and resolving against the propagation reason
// of every literal still in the resolvent derives the empty clause
// directly, with no UIP search needed.
func (e *Engine) analyzeAndFinish(conflict *cnf.Clause) {
	e.tracer.InitConflict(conflict, proof.Boolean{})
	active := conflict.ID()

	pending := make(map[cnf.Literal]struct{})
	for _, l := range conflict.Literals() {
		pending[l] = struct{}{}
	}
	for i := len(e.trail) - 1; i >= 0; i-- {
		lit := e.trail[i]
		if _, inResolvent := pending[lit.Negate()]; !inResolvent {
			continue
		}
		delete(pending, lit.Negate())
		reason := e.reasonMap[lit]
		if reason == nil {
			continue
		}
		e.tracer.ResolveConflict(active, reason.ID())
		for _, l := range reason.Literals() {
			if l != lit {
				pending[l] = struct{}{}
			}
		}
	}

	empty := cnf.NewClause()
	e.tracer.RenameConflict(active, empty.ID())
	e.tracer.DeriveFinal(empty)
}
