package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operator-framework/backtrack/pkg/backtrack"
	"github.com/operator-framework/backtrack/pkg/backtrack/search"
)

func TestExplicitStackMatchesRecursion(t *testing.T) {
	type tc struct {
		Name      string
		MaxDepth  int
		Width     int
		StopAfter int
		FailOn    string
	}

	for _, tt := range []tc{
		{Name: "single level", MaxDepth: 1, Width: 3},
		{Name: "full tree", MaxDepth: 3, Width: 3},
		{Name: "no candidates", MaxDepth: 2, Width: 0},
		{Name: "root is a solution", MaxDepth: 0, Width: 2},
		{Name: "stop after first solution", MaxDepth: 3, Width: 2, StopAfter: 1},
		{Name: "stop midway", MaxDepth: 3, Width: 3, StopAfter: 11},
		{Name: "stop on last solution", MaxDepth: 2, Width: 2, StopAfter: 4},
		{Name: "failing unmake", MaxDepth: 2, Width: 2, FailOn: "unmake"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			run := func(options ...search.Option) (*recorder, []string, error) {
				var trace events
				engine, err := search.New(append(options, search.WithTracer(&trace))...)
				require.NoError(t, err)
				r := &recorder{maxDepth: tt.MaxDepth, width: tt.Width, stopAfter: tt.StopAfter, failOn: tt.FailOn}
				err = search.Run[int](engine, r, &backtrack.Termination{})
				return r, trace, err
			}

			recursive, recursiveTrace, recursiveErr := run()
			stacked, stackedTrace, stackedErr := run(search.WithExplicitStack())

			assert.Equal(t, recursiveErr, stackedErr)
			assert.Equal(t, recursive.calls, stacked.calls)
			assert.Equal(t, recursive.solutions, stacked.solutions)
			assert.Equal(t, recursiveTrace, stackedTrace)
			if tt.FailOn == "" {
				assert.Equal(t, 0, stacked.depth)
			}
		})
	}
}
