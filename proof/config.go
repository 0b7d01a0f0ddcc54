package proof

import "github.com/pkg/errors"

// Format names a proof output format a Tracer can be asked to produce.
type Format int

const (
	// FormatFRATASCII is the human-readable FRAT encoding.
	FormatFRATASCII Format = iota
	// FormatFRATBinary is the LEB128/zig-zag FRAT encoding.
	FormatFRATBinary
	// FormatAletheStream streams an Alethe proof to a file. Unsupported by
	// this module; constructing a tracer for it fails with
	// ErrUnsupportedFormat.
	FormatAletheStream
	// FormatAletheMemory builds and prunes an Alethe proof in memory.
	// Unsupported by this module; constructing a tracer for it fails with
	// ErrUnsupportedFormat.
	FormatAletheMemory
)

func (f Format) String() string {
	switch f {
	case FormatFRATASCII:
		return "frat-ascii"
	case FormatFRATBinary:
		return "frat-binary"
	case FormatAletheStream:
		return "alethe-stream"
	case FormatAletheMemory:
		return "alethe-memory"
	default:
		return "unknown"
	}
}

// Config carries the subset of solver options relevant to constructing a
// proof tracer.
type Config struct {
	// ProduceProofs enables proof production at all. When false, callers
	// should use a nil Tracer (or the zero Wrapper), never attempt to build
	// one.
	ProduceProofs bool
	// Format selects the proof encoding.
	Format Format
	// ProofPath is the output path. If empty, it defaults to
	// <InputPath>.frat (ASCII) or <InputPath>.bfrat (binary).
	ProofPath string
	// InputPath is the solver's input file path, used to derive ProofPath
	// when it is empty.
	InputPath string
}

// ErrUnsupportedFormat is returned when Config.Format names a format this
// module cannot produce (the Alethe family is declared but unimplemented).
var ErrUnsupportedFormat = errors.New("proof: unsupported format")

// DefaultProofPath derives the default output path for cfg.Format when
// cfg.ProofPath is empty.
func (cfg Config) DefaultProofPath() string {
	if cfg.ProofPath != "" {
		return cfg.ProofPath
	}
	switch cfg.Format {
	case FormatFRATBinary:
		return cfg.InputPath + ".bfrat"
	default:
		return cfg.InputPath + ".frat"
	}
}
