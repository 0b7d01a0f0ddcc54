package subsumption

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/proof"
	"github.com/kjmnn/yaga/proof/frat"
	"github.com/stretchr/testify/require"
)

// recordingTracer is a minimal proof.Tracer double that records every
// DeleteClause call's clause id *and* the literals it was called with — the
// latter matters because a caller that clears a clause before reporting its
// removal would otherwise go unnoticed (the id alone can't tell the
// difference).
type recordingTracer struct {
	deleted     []cnf.ClauseID
	deletedLits [][]cnf.Literal
}

func (r *recordingTracer) TrivialProof()                               {}
func (r *recordingTracer) BeginProof(db cnf.Database)                  {}
func (r *recordingTracer) InitConflict(*cnf.Clause, proof.Explanation) {}
func (r *recordingTracer) ResolveConflict(active, other cnf.ClauseID)  {}
func (r *recordingTracer) RenameConflict(from, to cnf.ClauseID)        {}
func (r *recordingTracer) FinishConflicts()                            {}
func (r *recordingTracer) LearnClause(*cnf.Clause)                     {}
func (r *recordingTracer) DeleteClause(c *cnf.Clause) {
	r.deleted = append(r.deleted, c.ID())
	r.deletedLits = append(r.deletedLits, append([]cnf.Literal(nil), c.Literals()...))
}
func (r *recordingTracer) DeriveFinal(*cnf.Clause)  {}
func (r *recordingTracer) EndProof(db cnf.Database) {}
func (r *recordingTracer) SupportsLRA() bool        { return true }
func (r *recordingTracer) SupportsUF() bool         { return true }

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

var _ proof.Tracer = (*recordingTracer)(nil)

func lit(v int32) cnf.Literal { return cnf.NewLiteral(cnf.Variable(v), true) }

// Scenario 6: {(a b c), (a b), (a b c d)} subsumed down to {(a b)}.
func TestEngine_OnRestart_SubsumptionScenario(t *testing.T) {
	a, b, c, d := lit(0), lit(1), lit(2), lit(3)

	abc := cnf.NewClause(a, b, c)
	ab := cnf.NewClause(a, b)
	abcd := cnf.NewClause(a, b, c, d)

	db := cnf.NewMemoryDatabase()
	db.AddLearned(abc)
	db.AddLearned(ab)
	db.AddLearned(abcd)

	tracer := &recordingTracer{}
	e := NewEngine(proof.NewWrapper(tracer))

	e.OnRestart(db, nil)

	require.Len(t, db.Learned(), 1)
	require.ElementsMatch(t, []cnf.Literal{a, b}, db.Learned()[0].Literals())
	require.ElementsMatch(t, []cnf.ClauseID{abc.ID(), abcd.ID()}, tracer.deleted)
	require.Equal(t, 1, e.oldSize)

	// The deleted clauses must have been reported with their actual
	// literals, not the empty slice Clear() leaves behind: DeleteClause must
	// see each clause's contents before it is cleared.
	deletedByID := make(map[cnf.ClauseID][]cnf.Literal)
	for i, id := range tracer.deleted {
		deletedByID[id] = tracer.deletedLits[i]
	}
	require.ElementsMatch(t, []cnf.Literal{a, b, c}, deletedByID[abc.ID()])
	require.ElementsMatch(t, []cnf.Literal{a, b, c, d}, deletedByID[abcd.ID()])
}

// Same scenario as above, but driven through a real frat.Tracer instead of a
// recording double, asserting the emitted "d" records carry the subsumed
// clauses' actual literals rather than an empty body — this checks the
// bytes the FRAT encoder actually writes, which the recordingTracer test
// above does not reach.
func TestEngine_OnRestart_SubsumptionScenario_RealTracerEmitsLiterals(t *testing.T) {
	a, b, c, d := lit(0), lit(1), lit(2), lit(3)

	abc := cnf.NewClause(a, b, c)
	ab := cnf.NewClause(a, b)
	abcd := cnf.NewClause(a, b, c, d)

	db := cnf.NewMemoryDatabase()
	// Registered as asserted so the tracer knows their literals up front,
	// and as learned so the subsumption engine has something to restart
	// over; a real search engine would instead have reported them via
	// LearnClause as it derived them.
	for _, cl := range []*cnf.Clause{abc, ab, abcd} {
		db.AddAsserted(cl)
		db.AddLearned(cl)
	}

	var buf bytes.Buffer
	tracer := frat.New(nopCloser{&buf}, false, nil)
	tracer.BeginProof(db)

	e := NewEngine(proof.NewWrapper(tracer))
	e.OnRestart(db, nil)

	require.Len(t, db.Learned(), 1)
	require.ElementsMatch(t, []cnf.Literal{a, b}, db.Learned()[0].Literals())

	require.Equal(t,
		"o 1 1 2 3 0\no 2 1 2 0\no 3 1 2 3 4 0\nd 1 1 2 3 0\nd 3 1 2 3 4 0\n",
		buf.String())
}

func TestEngine_OnRestart_NoSubsumptionLeavesAllClauses(t *testing.T) {
	a, b, c := lit(0), lit(1), lit(2)

	c1 := cnf.NewClause(a, b)
	c2 := cnf.NewClause(a, c)

	db := cnf.NewMemoryDatabase()
	db.AddLearned(c1)
	db.AddLearned(c2)

	tracer := &recordingTracer{}
	e := NewEngine(proof.NewWrapper(tracer))
	e.OnRestart(db, nil)

	require.Len(t, db.Learned(), 2)
	require.Empty(t, tracer.deleted)
}

// Self-subsumption: (a b) together with (¬a b c) resolves on a, shrinking
// the second clause to (b c).
func TestEngine_Minimize_SelfSubsumptionShrinks(t *testing.T) {
	a, b, c := lit(0), lit(1), lit(2)

	indexed := cnf.NewClause(a, b)
	db := cnf.NewMemoryDatabase()
	db.AddLearned(indexed)

	e := NewEngine(proof.Wrapper{})
	e.index(db.Learned())

	target := cnf.NewClause(a.Negate(), b, c)
	e.Minimize(nil, target)

	require.ElementsMatch(t, []cnf.Literal{b, c}, target.Literals())
}

func TestEngine_Minimize_NoApplicableClauseLeavesUnchanged(t *testing.T) {
	a, b, c := lit(0), lit(1), lit(2)

	indexed := cnf.NewClause(a, b)
	db := cnf.NewMemoryDatabase()
	db.AddLearned(indexed)

	e := NewEngine(proof.Wrapper{})
	e.index(db.Learned())

	target := cnf.NewClause(a, b, c)
	e.Minimize(nil, target)

	require.ElementsMatch(t, []cnf.Literal{a, b, c}, target.Literals())
}

// subsumes must never report a clause subsuming a shorter or equal-length
// clause, and must agree with the brute-force subset test on random data.
func TestEngine_Subsumes_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEngine(proof.Wrapper{})

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(6) + 1
		var full []cnf.Literal
		for i := 0; i < n; i++ {
			full = append(full, cnf.NewLiteral(cnf.Variable(i), rng.Intn(2) == 0))
		}
		rng.Shuffle(len(full), func(i, j int) { full[i], full[j] = full[j], full[i] })
		subLen := rng.Intn(n + 1)
		sub := append([]cnf.Literal(nil), full[:subLen]...)

		first := cnf.NewClause(sub...)
		second := cnf.NewClause(full...)

		got := e.subsumes(makeClausePtr(first), makeClausePtr(second))
		want := subLen < n
		require.Equal(t, want, got, "sub=%v full=%v", sub, full)
	}
}

func TestEngine_Subsumes_RejectsSameClause(t *testing.T) {
	e := NewEngine(proof.Wrapper{})
	c := cnf.NewClause(lit(0), lit(1))
	cp := makeClausePtr(c)
	require.False(t, e.subsumes(cp, cp))
}
