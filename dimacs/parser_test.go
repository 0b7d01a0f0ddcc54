package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SimpleProblem(t *testing.T) {
	input := `c a comment
p cnf 3 2
1 -2 0
-1 3 0
`
	problem, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, problem.NumVars)
	require.Len(t, problem.Clauses, 2)
	require.Equal(t, 2, problem.Clauses[0].Len())
	require.Equal(t, 2, problem.Clauses[1].Len())
}

func TestParse_ClauseSpanningMultipleLines(t *testing.T) {
	input := "p cnf 2 1\n1\n-2 0\n"
	problem, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, problem.Clauses, 1)
	require.Equal(t, 2, problem.Clauses[0].Len())
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 -2 0\n"))
	require.Error(t, err)
}

func TestParse_PercentCommentIgnored(t *testing.T) {
	input := "p cnf 1 1\n1 0\n% trailer\n"
	problem, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, problem.Clauses, 1)
}

func TestParse_TrailingUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\n1"))
	require.Error(t, err)
}
