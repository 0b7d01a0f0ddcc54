package frat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kjmnn/yaga/proof"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	w, tracer, err := NewFromConfig(proof.Config{ProduceProofs: false}, nil)
	require.NoError(t, err)
	require.Nil(t, tracer)
	require.False(t, w.Installed())
}

func TestNewFromConfig_AletheRejected(t *testing.T) {
	_, _, err := NewFromConfig(proof.Config{
		ProduceProofs: true,
		Format:        proof.FormatAletheStream,
	}, nil)
	require.ErrorIs(t, err, proof.ErrUnsupportedFormat)

	_, _, err = NewFromConfig(proof.Config{
		ProduceProofs: true,
		Format:        proof.FormatAletheMemory,
	}, nil)
	require.ErrorIs(t, err, proof.ErrUnsupportedFormat)
}

func TestNewFromConfig_DefaultPathByFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "problem.smt2")

	w, tracer, err := NewFromConfig(proof.Config{
		ProduceProofs: true,
		Format:        proof.FormatFRATASCII,
		InputPath:     input,
	}, nil)
	require.NoError(t, err)
	require.True(t, w.Installed())
	require.NoError(t, tracer.Close())
	_, err = os.Stat(input + ".frat")
	require.NoError(t, err)

	w, tracer, err = NewFromConfig(proof.Config{
		ProduceProofs: true,
		Format:        proof.FormatFRATBinary,
		InputPath:     input,
	}, nil)
	require.NoError(t, err)
	require.True(t, w.Installed())
	require.NoError(t, tracer.Close())
	_, err = os.Stat(input + ".bfrat")
	require.NoError(t, err)
}
