package root

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/cmd/enumerate"
	"github.com/operator-framework/backtrack/cmd/run"
	"github.com/operator-framework/backtrack/internal/cli"
)

func NewRootCmd() *cobra.Command {
	opts := &cli.Options{}
	rootCmd := &cobra.Command{
		Use:   "backtrack",
		Short: "Backtrack is a generic backtracking search framework",
		Long: `A generic backtracking search framework written in Go.
Solutions are written to stdout, one per line, log messages to stderr.`,
		SilenceUsage: true,
	}
	opts.AddFlags(rootCmd.PersistentFlags())

	// add sub-commands
	rootCmd.AddCommand(run.NewRunCommand(opts))
	rootCmd.AddCommand(enumerate.NewSubsetsCommand(opts))
	rootCmd.AddCommand(enumerate.NewPermutationsCommand(opts))

	return rootCmd
}
