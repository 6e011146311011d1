package enumerate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/internal/cli"
	"github.com/operator-framework/backtrack/pkg/config"
)

func NewSubsetsCommand(opts *cli.Options) *cobra.Command {
	return newDomainCommand(opts, config.Subsets, "Prints every subset of [1..n]")
}

func NewPermutationsCommand(opts *cli.Options) *cobra.Command {
	return newDomainCommand(opts, config.Permutations, "Prints every permutation of [0..n-1]")
}

func newDomainCommand(opts *cli.Options, kind config.DomainKind, short string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <n>", kind),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return &config.ConfigurationError{Field: config.KeyMaxDepth, Reason: fmt.Sprintf("%q is not a number", args[0])}
			}
			cfg := config.New(kind, n)
			cfg.Limit = limit
			return cli.Execute(cmd, opts, cfg)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions (0 means no limit)")
	return cmd
}
