package options

import (
	"fmt"

	"github.com/kjmnn/yaga/proof"
	"github.com/spf13/pflag"
)

// ErrNoInputPath is returned by Parse when no positional input file was
// given.
var ErrNoInputPath = fmt.Errorf("options: no input path given")

// Parse parses args (as in os.Args[1:]) into Options. It mirrors the flag
// set of the original command-line driver: --print-stats, --prop-rational,
// --deduce-bounds, --phase {positive|negative|cache}, --frat, and a single
// positional input path.
func Parse(args []string) (Options, error) {
	opts := Default()

	fs := pflag.NewFlagSet("yaga", pflag.ContinueOnError)
	fs.BoolVar(&opts.PropRational, "prop-rational", false,
		"decide rational variables with only one allowed value first")
	fs.BoolVar(&opts.DeduceBounds, "deduce-bounds", false,
		"derive new LRA bounds using Fourier-Motzkin elimination")
	fs.BoolVar(&opts.PrintStats, "print-stats", false,
		"print solver counters like the number of conflicts")
	phase := fs.String("phase", opts.Phase.String(),
		"value selection strategy for boolean variables: positive|negative|cache")
	frat := fs.Bool("frat", false, "enable ASCII FRAT proof production")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	switch *phase {
	case "positive":
		opts.Phase = PhasePositive
	case "negative":
		opts.Phase = PhaseNegative
	case "cache":
		opts.Phase = PhaseCache
	default:
		return Options{}, fmt.Errorf("options: unknown phase %q", *phase)
	}

	if *frat {
		opts.Proof.ProduceProofs = true
		opts.Proof.Format = proof.FormatFRATASCII
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Options{}, ErrNoInputPath
	}
	opts.InputPath = rest[0]
	opts.Proof.InputPath = opts.InputPath

	return opts, nil
}
