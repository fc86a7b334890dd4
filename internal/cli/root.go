// Package cli implements the knapdag command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapdag/internal/config"
	"github.com/katalvlaran/knapdag/internal/logger"
)

var version = "v0.1.0"

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg config.Config
	log *logrus.Logger

	configPath string
	debug      bool
	verbose    bool
	jsonLogs   bool
	quiet      bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "knapdag",
		Short: "Solve 0/1 knapsack instances by dynamic programming and as shortest paths on a layered DAG",
		Long: `knapdag solves 0/1 knapsack instances two ways, by the classic dynamic
program and as a shortest path over a layered DAG, and checks that both
agree with each other and with an exact branch-and-bound oracle.`,
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file (default $KNAPDAG_CONFIG)")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&a.jsonLogs, "json", false, "Output logs in JSON format")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress non-error logs")

	root.AddCommand(newSolveCmd(a), newBenchCmd(a), newDotCmd(a))

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logger.New(cmd.ErrOrStderr(), logger.Options{
		Level: cfg.Log.Level,
		Debug: a.debug || a.verbose,
		Quiet: a.quiet,
		JSON:  a.jsonLogs || cfg.Log.Format == "json",
	})
	if err != nil {
		return err
	}
	a.log.WithField("config", a.configPath).Debug("configuration loaded")

	return nil
}
