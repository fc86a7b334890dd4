package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/layered"
	"github.com/katalvlaran/knapdag/render"
)

func newDotCmd(a *app) *cobra.Command {
	var (
		inst     instanceFlags
		frontier bool
		path     bool
		output   string
		maxNodes int
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the layered graph of an instance in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxNodes < 1 {
				return fmt.Errorf("--max-nodes must be at least 1, got %d", maxNodes)
			}
			in, err := inst.load(cmd, a)
			if err != nil {
				return err
			}

			strategy := layered.Dense
			if frontier {
				strategy = layered.Frontier
			}
			g, err := layered.Build(in.CoreItems(), in.Capacity, strategy)
			if err != nil {
				return err
			}

			opts := []render.Option{render.WithMaxNodes(maxNodes)}
			if path {
				res, err := dag.Solve(g, dag.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				opts = append(opts, render.WithPath(res.Path))
				a.log.WithField("objective", res.Objective).Info("path highlighted")
			}

			if err = writeDOT(cmd.OutOrStdout(), output, g, opts...); err != nil {
				return err
			}
			a.log.WithField("nodes", g.Order()).WithField("arcs", g.Size()).Info("graph exported")

			return nil
		},
	}

	inst.register(cmd)
	cmd.Flags().BoolVar(&frontier, "frontier", false, "Draw only reachable nodes")
	cmd.Flags().BoolVar(&path, "path", true, "Highlight the optimal path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", render.DefaultMaxNodes, "Refuse graphs with more nodes")

	return cmd
}

// writeDOT renders g to path, or to stdout when path is empty.
func writeDOT(stdout io.Writer, path string, g *layered.Graph, opts ...render.Option) error {
	if path == "" {
		return render.DOT(stdout, g, opts...)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.DOT(f, g, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
