// Package proof defines the conflict-explanation and proof-tree data model,
// the Tracer capability interface the search engine drives, and a null-safe
// facade around it. Concrete emitters (FRAT) live in proof/frat.
package proof

import "math/big"

// Explanation tags why a conflict clause exists. Only Boolean corresponds to
// a clause already present in the database; the other variants describe a
// theory-introduced clause that must be recorded as an "original" in the
// proof. The tracer treats non-Boolean explanations as trusted assertions —
// it never verifies the witness they carry.
type Explanation interface {
	isExplanation()
}

// Boolean marks a conflict clause that is unsatisfiable purely by Boolean
// unit propagation; it already exists in the clause database.
type Boolean struct{}

func (Boolean) isExplanation() {}

// LRABounds explains a conflict between a variable's lower and upper
// bounds, witnessed by non-negative Farkas coefficients.
type LRABounds struct {
	Coefficients []*big.Rat
}

func (LRABounds) isExplanation() {}

// LRADisequality explains a conflict where non-strict bounds force a value
// prohibited by a disequality, witnessed by Farkas coefficients.
type LRADisequality struct {
	Coefficients []*big.Rat
}

func (LRADisequality) isExplanation() {}

// UFCongruence explains a conflict of the form x... == y... but
// f(x...) != f(y...) under uninterpreted function congruence.
type UFCongruence struct{}

func (UFCongruence) isExplanation() {}
