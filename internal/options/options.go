// Package options defines the solver's configuration surface: the flags
// the CLI parses, and their defaults.
package options

import (
	"github.com/kjmnn/yaga/proof"
)

// Phase is the value-selection strategy for Boolean variable decisions.
type Phase int

const (
	// PhasePositive always decides true for Boolean variables.
	PhasePositive Phase = iota
	// PhaseNegative always decides false for Boolean variables.
	PhaseNegative
	// PhaseCache reuses the variable's last assigned value.
	PhaseCache
)

func (p Phase) String() string {
	switch p {
	case PhasePositive:
		return "positive"
	case PhaseNegative:
		return "negative"
	case PhaseCache:
		return "cache"
	default:
		return "unknown"
	}
}

// Options holds the solver's runtime configuration, parsed from the command
// line.
type Options struct {
	// PropRational, if true, decides rational variables with only one
	// allowed value before any other variable.
	PropRational bool
	// DeduceBounds, if true, derives new LRA bounds via Fourier-Motzkin
	// elimination.
	DeduceBounds bool
	// PrintStats, if true, prints solver counters (conflicts, restarts, ...)
	// after the run.
	PrintStats bool
	// Phase is the Boolean decision strategy.
	Phase Phase
	// InputPath is the input problem file.
	InputPath string
	// Proof is the proof-production configuration, handed directly to
	// frat.NewFromConfig (or an equivalent factory for other formats).
	Proof proof.Config
}

// Default returns the solver's default configuration: proof production
// disabled, positive phase, FRAT ASCII if proofs are later turned on.
func Default() Options {
	return Options{
		Phase: PhasePositive,
		Proof: proof.Config{
			Format: proof.FormatFRATASCII,
		},
	}
}
