// Command yaga is the solver's command-line entrypoint: it parses a DIMACS
// CNF input file, runs the CDCL demo search engine over it, and (if
// requested) produces a FRAT proof alongside the result.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/kjmnn/yaga/cnf"
	"github.com/kjmnn/yaga/dimacs"
	"github.com/kjmnn/yaga/internal/options"
	"github.com/kjmnn/yaga/internal/search"
	"github.com/kjmnn/yaga/proof"
	"github.com/kjmnn/yaga/proof/frat"
	"github.com/kjmnn/yaga/subsumption"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{Writer: os.Stdout, ErrorWriter: os.Stderr}

	// There is exactly one real command; registering it under "solve" and
	// always dispatching to it lets the driver use hashicorp/cli's help and
	// error-formatting machinery without inventing a subcommand vocabulary
	// the original tool never had.
	app := &cli.CLI{
		Name:     "yaga",
		Version:  "0.1.0",
		Args:     append([]string{"solve"}, args...),
		HelpFunc: cli.BasicHelpFunc("yaga"),
		Commands: map[string]cli.CommandFactory{
			"solve": func() (cli.Command, error) {
				return &solveCommand{ui: ui}, nil
			},
		},
	}

	exitCode, err := app.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("yaga: %s", err))
		return 1
	}
	return exitCode
}

type solveCommand struct {
	ui cli.Ui
}

func (c *solveCommand) Help() string {
	return `Usage: yaga [options] <input-path.cnf>

  Runs the CDCL demo engine over a DIMACS CNF file.

Options:
  --print-stats      print solver counters like the number of conflicts
  --prop-rational     decide rational variables with only one allowed value first
  --deduce-bounds      derive new LRA bounds using Fourier-Motzkin elimination
  --phase positive|negative|cache   value selection strategy for boolean variables
  --frat               enable ASCII FRAT proof production
`
}

func (c *solveCommand) Synopsis() string {
	return "Run the CDCL demo engine over a DIMACS CNF file"
}

func (c *solveCommand) Run(args []string) int {
	opts, err := options.Parse(args)
	if err != nil {
		c.ui.Error(err.Error())
		c.ui.Error(c.Help())
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "yaga",
		Level: hclog.Warn,
	})

	exitCode, err := c.solve(opts, logger)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error: %s", err))
		return 1
	}
	return exitCode
}

func (c *solveCommand) solve(opts options.Options, logger hclog.Logger) (exitCode int, err error) {
	// Invariant violations inside the proof core surface as panics (the
	// proof.Tracer methods have no error return, mirroring the original's
	// exception-raising std::ofstream); recover and fold them into the
	// returned error here rather than letting them crash the process.
	defer func() {
		if r := recover(); r != nil {
			err = multierror.Append(err, fmt.Errorf("proof core panic: %v", r))
		}
	}()

	f, openErr := os.Open(opts.InputPath)
	if openErr != nil {
		return 1, fmt.Errorf("failed to open input file %q: %w", opts.InputPath, openErr)
	}
	defer f.Close()

	problem, parseErr := dimacs.Parse(f)
	if parseErr != nil {
		return 1, parseErr
	}

	opts.Proof.InputPath = opts.InputPath
	wrapper, tracer, tracerErr := frat.NewFromConfig(opts.Proof, logger)
	if tracerErr != nil {
		return 1, tracerErr
	}
	if tracer != nil {
		defer func() {
			if closeErr := tracer.Close(); closeErr != nil {
				err = multierror.Append(err, closeErr)
			}
		}()
	}

	db := cnf.NewMemoryDatabase()
	for _, cl := range problem.Clauses {
		db.AddAsserted(cl)
	}

	sub := subsumption.NewEngine(wrapper)
	engine := search.NewEngine(db, wrapper, sub, logger, 0)
	for v := 0; v < problem.NumVars; v++ {
		engine.AddVariable(cnf.Variable(v))
	}

	sat := engine.Solve()
	if sat {
		c.ui.Output("sat")
		return 0, nil
	}
	c.ui.Output("unsat")
	return 0, nil
}
