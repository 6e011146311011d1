package search

import (
	"fmt"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// Engine holds the configuration shared by search runs. An Engine
// carries no per-run state and may be reused for any number of runs.
type Engine struct {
	tracer          backtrack.Tracer
	checkInvariants bool
	maxDepth        int
	explicitStack   bool
}

type Option func(e *Engine) error

// WithTracer sets the Tracer notified at every traversal event.
func WithTracer(t backtrack.Tracer) Option {
	return func(e *Engine) error {
		e.tracer = t
		return nil
	}
}

// WithInvariantChecks makes the engine verify, for policies
// implementing backtrack.Snapshotter, that every UnmakeMove restores
// the state observed before its paired MakeMove.
func WithInvariantChecks() Option {
	return func(e *Engine) error {
		e.checkInvariants = true
		return nil
	}
}

// WithMaxDepth fails the run with backtrack.ErrDepthExceeded as soon
// as a partial solution longer than depth would be formed.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) error {
		if depth < 0 {
			return fmt.Errorf("invalid max depth %d: must not be negative", depth)
		}
		e.maxDepth = depth
		return nil
	}
}

// WithExplicitStack runs the traversal on a heap allocated frame stack
// instead of the goroutine call stack. The sequence of policy calls is
// the same.
func WithExplicitStack() Option {
	return func(e *Engine) error {
		e.explicitStack = true
		return nil
	}
}

func New(options ...Option) (*Engine, error) {
	e := Engine{maxDepth: -1}
	for _, option := range append(options, defaults...) {
		if err := option(&e); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

var defaults = []Option{
	func(e *Engine) error {
		if e.tracer == nil {
			e.tracer = DefaultTracer{}
		}
		return nil
	},
}

func defaultEngine() *Engine {
	// defaults never fail
	e, _ := New()
	return e
}
