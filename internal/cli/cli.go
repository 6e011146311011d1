// Package cli holds the flags and wiring shared by the backtrack
// sub-commands.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/operator-framework/backtrack/pkg/backtrack/search"
	"github.com/operator-framework/backtrack/pkg/config"
	"github.com/operator-framework/backtrack/pkg/policy"
	"github.com/operator-framework/backtrack/pkg/runner"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigFile      string
	Debug           bool
	CheckInvariants bool
	ExplicitStack   bool
	Output          string
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "path to a YAML file holding domain-kind, max-depth and limit")
	fs.BoolVar(&o.Debug, "debug", false, "log every search position to stderr")
	fs.BoolVar(&o.CheckInvariants, "check-invariants", false, "verify that every unmake move restores the policy state")
	fs.BoolVar(&o.ExplicitStack, "explicit-stack", false, "search with an explicit frame stack instead of recursion")
	fs.StringVarP(&o.Output, "output", "o", OutputText, "solution output format: text, json or yaml")
}

// Reporter returns the solution reporter for the selected output
// format.
func (o *Options) Reporter(w io.Writer) (policy.Reporter, error) {
	switch o.Output {
	case OutputText, "":
		return policy.Print(w), nil
	case OutputJSON:
		return policy.JSONLines(w), nil
	case OutputYAML:
		return policy.YAML(w), nil
	}
	return nil, &config.ConfigurationError{Field: "output", Reason: fmt.Sprintf("unrecognized format %q, must be one of text, json, yaml", o.Output)}
}

// EngineOptions translates the flags into search engine options.
func (o *Options) EngineOptions(logger zerolog.Logger) []search.Option {
	var options []search.Option
	if o.Debug {
		options = append(options, search.WithTracer(search.LoggingTracer{Logger: logger}))
	}
	if o.CheckInvariants {
		options = append(options, search.WithInvariantChecks())
	}
	if o.ExplicitStack {
		options = append(options, search.WithExplicitStack())
	}
	return options
}

// NewLogger returns a console logger writing to w.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Execute runs the search described by cfg, writing solutions to the
// command's output and log messages to its error stream.
func Execute(cmd *cobra.Command, o *Options, cfg config.Config) error {
	logger := NewLogger(cmd.ErrOrStderr(), o.Debug)

	reporter, err := o.Reporter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	result, err := runner.Run(cfg,
		runner.WithReporter(reporter),
		runner.WithLogger(logger),
		runner.WithEngineOptions(o.EngineOptions(logger)...),
	)
	if err != nil {
		return err
	}
	if result.Stopped {
		logger.Info().Int("emitted", result.Emitted).Msg("search stopped early")
	}
	return nil
}
