package search

import (
	"github.com/rs/zerolog"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ backtrack.SearchPosition) {
}

// LoggingTracer writes every search position to Logger at debug level.
type LoggingTracer struct {
	Logger zerolog.Logger
}

func (t LoggingTracer) Trace(p backtrack.SearchPosition) {
	t.Logger.Debug().
		Str("event", p.Event().String()).
		Int("depth", p.Depth()).
		Str("partial", p.Partial()).
		Msg("search position")
}
