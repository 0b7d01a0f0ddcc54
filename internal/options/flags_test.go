package options

import (
	"testing"

	"github.com/kjmnn/yaga/proof"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse([]string{"problem.smt2"})
	require.NoError(t, err)
	require.Equal(t, "problem.smt2", opts.InputPath)
	require.Equal(t, PhasePositive, opts.Phase)
	require.False(t, opts.Proof.ProduceProofs)
	require.False(t, opts.PrintStats)
}

func TestParse_AllFlags(t *testing.T) {
	opts, err := Parse([]string{
		"--print-stats",
		"--prop-rational",
		"--deduce-bounds",
		"--phase", "cache",
		"--frat",
		"problem.smt2",
	})
	require.NoError(t, err)
	require.True(t, opts.PrintStats)
	require.True(t, opts.PropRational)
	require.True(t, opts.DeduceBounds)
	require.Equal(t, PhaseCache, opts.Phase)
	require.True(t, opts.Proof.ProduceProofs)
	require.Equal(t, proof.FormatFRATASCII, opts.Proof.Format)
	require.Equal(t, "problem.smt2", opts.InputPath)
}

func TestParse_NoInputPath(t *testing.T) {
	_, err := Parse([]string{"--print-stats"})
	require.ErrorIs(t, err, ErrNoInputPath)
}

func TestParse_UnknownPhase(t *testing.T) {
	_, err := Parse([]string{"--phase", "sideways", "problem.smt2"})
	require.Error(t, err)
}

func TestPhase_String(t *testing.T) {
	require.Equal(t, "positive", PhasePositive.String())
	require.Equal(t, "negative", PhaseNegative.String())
	require.Equal(t, "cache", PhaseCache.String())
}
