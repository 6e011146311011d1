package run

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/backtrack/internal/cli"
	"github.com/operator-framework/backtrack/pkg/config"
)

func NewRunCommand(opts *cli.Options) *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs a search configured by flags, environment or config file",
		Long: `Runs a search configured by flags, BACKTRACK_* environment variables
or the YAML file given with --config. For instance:

domain-kind: permutations
max-depth: 3
limit: 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, opts.ConfigFile)
			if err != nil {
				return err
			}
			return cli.Execute(cmd, opts, cfg)
		},
	}

	cmd.Flags().String("domain", "", "search domain: subsets or permutations")
	cmd.Flags().Int("max-depth", 0, "length of a complete solution")
	cmd.Flags().Int("limit", 0, "stop after this many solutions (0 means no limit)")
	// BindPFlag only fails on a nil flag
	_ = v.BindPFlag(config.KeyDomainKind, cmd.Flags().Lookup("domain"))
	_ = v.BindPFlag(config.KeyMaxDepth, cmd.Flags().Lookup("max-depth"))
	_ = v.BindPFlag(config.KeyLimit, cmd.Flags().Lookup("limit"))

	return cmd
}
