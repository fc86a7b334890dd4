package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapdag/bb"
	"github.com/katalvlaran/knapdag/crosscheck"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/generate"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes  []int
		seed   int64
		oracle bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the size sweep: random instances of growing size, every solver, agreement check",
		Long: `bench draws one capacity and, for every size, a random instance sorted
by value/weight ratio, then solves it with the dynamic program, both
shortest-path builders and (optionally) the branch-and-bound oracle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			if fl.Changed("sizes") {
				a.cfg.Bench.Sizes = sizes
			}
			if fl.Changed("seed") {
				a.cfg.Bench.Seed = seed
			}
			if fl.Changed("oracle") {
				a.cfg.Solve.Oracle = oracle
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runBench(cmd)
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "Instance sizes (default: config bench.sizes)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Base seed (default: config bench.seed)")
	cmd.Flags().BoolVar(&oracle, "oracle", true, "Include the branch-and-bound oracle")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command) error {
	b := a.cfg.Bench
	tb, err := dag.ParseTieBreak(a.cfg.Solve.TieBreak)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	log := a.log.WithField("run_id", runID)

	// 1. One capacity for the whole sweep.
	capacity, err := generate.Capacity(b.MinCapacity, b.MaxCapacity, generate.WithSeed(b.Seed))
	if err != nil {
		return err
	}
	log.WithField("capacity", capacity).WithField("sizes", b.Sizes).Info("bench started")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s seed %d capacity %d\n", runID, b.Seed, capacity)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "items\tdense nodes\tobjective\tdp\tsp-dense\tsp-frontier"
	if a.cfg.Solve.Oracle {
		header += "\toracle"
	}
	fmt.Fprintln(tw, header+"\tsame")

	// 2. Sweep.
	var failed error
	for i, n := range b.Sizes {
		items, err := generate.Items(n, b.MinValue, b.MaxValue, generate.WithSeed(generate.DeriveSeed(b.Seed, uint64(i)+1)))
		if err != nil {
			return err
		}
		if b.SortByRatio {
			items = generate.SortByRatio(items)
		}

		opts := []crosscheck.Option{
			crosscheck.WithMaxGoroutines(a.cfg.Solve.MaxGoroutines),
			crosscheck.WithTieBreak(tb),
		}
		if a.cfg.Solve.Oracle {
			opts = append(opts, crosscheck.WithOracle(bb.New(bb.WithTimeLimit(a.cfg.Solve.TimeLimit))))
		}
		rep, err := crosscheck.Run(items, capacity, opts...)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		row := fmt.Sprintf("%d\t%s\t%d", n, humanize.Comma(int64(n)*int64(capacity+1)+2), rep.Results[rep.Names[0]].Objective)
		for _, name := range rep.Names {
			row += "\t" + rep.Results[name].Elapsed.Round(time.Microsecond).String()
		}
		fmt.Fprintf(tw, "%s\t%v\n", row, rep.SelectionAgree)

		if err = rep.Err(); err != nil && failed == nil {
			failed = fmt.Errorf("size %d: %w", n, err)
		}
		for _, m := range rep.Mismatches {
			log.WithField("items", n).WithField("fatal", m.Fatal).Warn(m.String())
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	log.Info("bench finished")

	return failed
}
