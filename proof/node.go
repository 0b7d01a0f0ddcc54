package proof

import "github.com/kjmnn/yaga/cnf"

// Node is a recursive tagged tree recording how a conflict clause came to
// be: either a leaf introduction or a resolution step that extends a prior
// node with one more clause. Resolution chains are linear — the conflict
// side grows, the other side is always a single clause — matching how CDCL
// conflict analysis actually walks the trail.
//
// A Node owns its children exclusively: a Resolution's Inner is built once
// and never shared, so there is no need for reference counting the way the
// originating C++ design needed unique_ptr.
type Node interface {
	isNode()
}

// ConflictIntro is the leaf of a proof tree: the conflict started from this
// clause, explained by Explanation.
type ConflictIntro struct {
	ClauseID    cnf.ClauseID
	Explanation Explanation
}

func (ConflictIntro) isNode() {}

// Resolution is an inner node: the current conflict clause is the result of
// resolving the clause described by Inner with Other.
type Resolution struct {
	Inner Node
	Other cnf.ClauseID
}

func (Resolution) isNode() {}

// Linearize walks a proof node from its root, producing the chain of
// resolved clause ids in the order they were applied during analysis
// (most-recently-resolved first), terminated by the introduction id. FRAT
// resolutions are commutative within a chain up to pivot choice, so
// checkers reconstruct pivots regardless of this order; implementers
// targeting a specific checker should verify it accepts this ordering
// before reordering it.
func Linearize(n Node) []cnf.ClauseID {
	var chain []cnf.ClauseID
	for {
		switch t := n.(type) {
		case Resolution:
			chain = append(chain, t.Other)
			n = t.Inner
		case ConflictIntro:
			chain = append(chain, t.ClauseID)
			return chain
		default:
			panic("proof: unknown Node variant")
		}
	}
}
