package runner

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/search"
	"github.com/operator-framework/backtrack/pkg/config"
	"github.com/operator-framework/backtrack/pkg/policy"
)

// Policy is a search domain constructed from a Config.
type Policy interface {
	backtrack.Policy[int]
	// Emitted returns the number of solutions reported so far.
	Emitted() int
}

// Result summarizes a completed run.
type Result struct {
	// Emitted is the number of solutions handed to the reporter.
	Emitted int
	// Stopped is true when the run ended through early termination.
	Stopped bool
}

type runOptions struct {
	reporter      policy.Reporter
	engineOptions []search.Option
	logger        *zerolog.Logger
}

type Option func(o *runOptions)

// WithReporter sets the callback receiving every emitted solution.
func WithReporter(reporter policy.Reporter) Option {
	return func(o *runOptions) {
		o.reporter = reporter
	}
}

// WithEngineOptions passes options to the search engine.
func WithEngineOptions(options ...search.Option) Option {
	return func(o *runOptions) {
		o.engineOptions = append(o.engineOptions, options...)
	}
}

// WithLogger sets the logger used for run level messages. The global
// zerolog logger is used otherwise.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *runOptions) {
		o.logger = &logger
	}
}

// NewPolicy validates cfg and constructs the policy of its domain.
func NewPolicy(cfg config.Config, options ...policy.Option) (Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options = append(options, policy.WithLimit(cfg.Limit))
	var (
		p   Policy
		err error
	)
	switch cfg.DomainKind {
	case config.Subsets:
		p, err = policy.NewSubsets(*cfg.MaxDepth, options...)
	case config.Permutations:
		p, err = policy.NewPermutations(*cfg.MaxDepth, options...)
	default:
		// unreachable after Validate
		return nil, &config.ConfigurationError{Field: config.KeyDomainKind, Reason: fmt.Sprintf("unrecognized value %q", cfg.DomainKind)}
	}
	if err != nil {
		return nil, &config.ConfigurationError{Field: config.KeyMaxDepth, Reason: err.Error()}
	}
	return p, nil
}

// Run constructs the policy described by cfg and searches its whole
// space from the empty partial solution. Configuration errors are
// returned before any search work begins; policy and reporter errors
// abort the run and are returned unmodified.
func Run(cfg config.Config, options ...Option) (*Result, error) {
	opts := runOptions{reporter: policy.Discard}
	for _, option := range options {
		option(&opts)
	}
	logger := log.Logger
	if opts.logger != nil {
		logger = *opts.logger
	}

	p, err := NewPolicy(cfg, policy.WithReporter(opts.reporter))
	if err != nil {
		return nil, err
	}
	engine, err := search.New(opts.engineOptions...)
	if err != nil {
		return nil, fmt.Errorf("error configuring search engine: %w", err)
	}

	logger.Debug().
		Str("domain", string(cfg.DomainKind)).
		Int("max-depth", *cfg.MaxDepth).
		Int("limit", cfg.Limit).
		Msg("starting search")

	stop := &backtrack.Termination{}
	if err := search.Run[int](engine, p, stop); err != nil {
		logger.Debug().Err(err).Int("emitted", p.Emitted()).Msg("search aborted")
		return nil, err
	}

	result := &Result{Emitted: p.Emitted(), Stopped: stop.Stopped()}
	logger.Debug().
		Int("emitted", result.Emitted).
		Bool("stopped", result.Stopped).
		Msg("search finished")
	return result, nil
}
