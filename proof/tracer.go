package proof

import "github.com/kjmnn/yaga/cnf"

// Tracer is the capability set the search engine invokes to incrementally
// record a refutation proof. Implementations must observe calls in the
// program order the search engine makes them; Tracer itself assumes no
// concurrent callers (the core is single-threaded and cooperative).
type Tracer interface {
	// TrivialProof is called when the input formula already reduces to
	// false, before any conflict analysis runs.
	TrivialProof()

	// BeginProof emits every asserted clause of db as an original step and
	// registers its id. Called exactly once, before any conflict.
	BeginProof(db cnf.Database)

	// InitConflict starts tracking conflict. If explanation is not Boolean,
	// the clause is theory-introduced and must be emitted as an original
	// first. Precondition: conflict.ID() has no open entry yet.
	InitConflict(conflict *cnf.Clause, explanation Explanation)

	// ResolveConflict extends the proof node tracked for active by
	// resolving it against other. Preconditions: active has an open entry;
	// other is a clause currently known to the proof.
	ResolveConflict(active, other cnf.ClauseID)

	// RenameConflict moves the open proof node at key from to key to. A
	// no-op if from == to; otherwise to must be unoccupied. Used when the
	// search engine replaces the conflict clause with a resolvent that has
	// a new id.
	RenameConflict(from, to cnf.ClauseID)

	// FinishConflicts ends the conflict-analysis phase: any conflict left
	// open (abandoned, not learned) is cleaned up, and theory clauses that
	// were introduced but never incorporated into a learned clause are
	// deleted.
	FinishConflicts()

	// LearnClause closes the conflict identified by learned.ID(),
	// linearizing its proof node into a resolution chain and emitting the
	// learned step (unless the trivial theory-clause-reused-as-is case
	// applies).
	LearnClause(learned *cnf.Clause)

	// DeleteClause records that c is no longer part of the proof's live
	// clause set.
	DeleteClause(c *cnf.Clause)

	// DeriveFinal is equivalent to LearnClause(empty) followed by recording
	// empty as a final clause of the refutation.
	DeriveFinal(empty *cnf.Clause)

	// EndProof emits the final block: remaining theory conflict clauses,
	// then learned clauses of db in reverse registration order, then
	// asserted clauses in reverse order.
	EndProof(db cnf.Database)

	// SupportsLRA reports whether this tracer can represent LRA theory
	// conflicts.
	SupportsLRA() bool
	// SupportsUF reports whether this tracer can represent UF theory
	// conflicts.
	SupportsUF() bool
}
