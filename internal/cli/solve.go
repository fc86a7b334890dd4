package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapdag/bb"
	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/crosscheck"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		inst     instanceFlags
		algos    []string
		oracle   bool
		tieBreak string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance with every selected algorithm and compare the answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Flags override the configuration.
			fl := cmd.Flags()
			if fl.Changed("algo") {
				a.cfg.Solve.Algos = algos
			}
			if fl.Changed("oracle") {
				a.cfg.Solve.Oracle = oracle
			}
			if fl.Changed("tie-break") {
				a.cfg.Solve.TieBreak = tieBreak
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			in, err := inst.load(cmd, a)
			if err != nil {
				return err
			}

			return a.runSolve(cmd, in.CoreItems(), in.Capacity, in.Optimum, in.Selection)
		},
	}

	inst.register(cmd)
	cmd.Flags().StringSliceVar(&algos, "algo", nil, "Algorithms to run: dp, sp-dense, sp-frontier, bb (default: config solve.algos)")
	cmd.Flags().BoolVar(&oracle, "oracle", true, "Cross-check against the branch-and-bound oracle")
	cmd.Flags().StringVar(&tieBreak, "tie-break", "prefer-skip", "Path tie-break: prefer-skip or first-predecessor")

	return cmd
}

// runSolve prints one report per algorithm, then the cross-check verdict.
func (a *app) runSolve(cmd *cobra.Command, items core.Items, capacity int, optimum *int, known []int) error {
	out := cmd.OutOrStdout()
	tb, err := dag.ParseTieBreak(a.cfg.Solve.TieBreak)
	if err != nil {
		return err
	}

	// 1. Each selected algorithm on its own.
	fmt.Fprintf(out, "Number of items: %d\nCapacity: %d\n", len(items), capacity)
	for _, name := range a.cfg.Solve.Algos {
		algo, err := solver.ParseAlgo(name)
		if err != nil {
			return err
		}
		res, err := solver.Solve(items, capacity, solver.Options{
			Algo:      algo,
			TieBreak:  tb,
			TimeLimit: a.cfg.Solve.TimeLimit,
			Context:   cmd.Context(),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", algo, err)
		}
		printSolution(out, algo.String(), res)
		a.log.WithField("algo", algo.String()).WithField("elapsed", res.Elapsed).Debug("solved")
	}

	// 2. Cross-check.
	opts := []crosscheck.Option{
		crosscheck.WithMaxGoroutines(a.cfg.Solve.MaxGoroutines),
		crosscheck.WithTieBreak(tb),
	}
	if a.cfg.Solve.Oracle {
		opts = append(opts, crosscheck.WithOracle(bb.New(bb.WithTimeLimit(a.cfg.Solve.TimeLimit))))
	}
	if optimum != nil {
		var sel core.Selection
		if known != nil {
			if sel, err = core.SelectionFromBits(known); err != nil {
				return err
			}
		}
		opts = append(opts, crosscheck.WithExpectation(*optimum, sel))
	}
	rep, err := crosscheck.Run(items, capacity, opts...)
	if err != nil {
		return err
	}
	for _, m := range rep.Mismatches {
		a.log.WithField("fatal", m.Fatal).Warn(m.String())
	}
	fmt.Fprintf(out, "Same objective: %v\nSame solution: %v\n", rep.ObjectiveAgree, rep.SelectionAgree)

	return rep.Err()
}

// printSolution writes the profit, residual capacity, time and taken items.
func printSolution(w io.Writer, name string, res core.Result) {
	fmt.Fprintf(w, "\n[%s]\nProfit = %d, Residual capacity = %d, Time = %v\n", name, res.Objective, res.Residual, res.Elapsed)
	var b strings.Builder
	for _, i := range res.Selection.Indices() {
		fmt.Fprintf(&b, "x[%d] = 1\n", i)
	}
	fmt.Fprint(w, b.String())
}
