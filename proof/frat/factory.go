package frat

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/kjmnn/yaga/proof"
	"github.com/pkg/errors"
)

// NewFromConfig builds the proof.Wrapper a solver run should use for cfg.
// When cfg.ProduceProofs is false, it returns the null wrapper with no
// error. The Alethe formats are recognized but rejected with
// proof.ErrUnsupportedFormat, per spec: this module only produces FRAT.
//
// The returned closer must be closed by the caller once the run ends
// (it is nil when no tracer was constructed).
func NewFromConfig(cfg proof.Config, logger hclog.Logger) (proof.Wrapper, *Tracer, error) {
	if !cfg.ProduceProofs {
		return proof.NewWrapper(nil), nil, nil
	}

	switch cfg.Format {
	case proof.FormatFRATASCII, proof.FormatFRATBinary:
		binary := cfg.Format == proof.FormatFRATBinary
		path := cfg.DefaultProofPath()
		f, err := os.Create(path)
		if err != nil {
			return proof.Wrapper{}, nil, errors.Wrapf(err, "frat: failed to open proof output %q", path)
		}
		tracer := New(f, binary, logger)
		return proof.NewWrapper(tracer), tracer, nil
	case proof.FormatAletheStream, proof.FormatAletheMemory:
		return proof.Wrapper{}, nil, errors.Wrapf(proof.ErrUnsupportedFormat, "%s", cfg.Format)
	default:
		return proof.Wrapper{}, nil, errors.Errorf("frat: unknown proof format %v", cfg.Format)
	}
}
