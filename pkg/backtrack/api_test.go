package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

func TestTermination(t *testing.T) {
	var stop *backtrack.Termination
	assert.False(t, stop.Stopped())

	stop = &backtrack.Termination{}
	assert.False(t, stop.Stopped())
	stop.Stop()
	assert.True(t, stop.Stopped())
	stop.Stop()
	assert.True(t, stop.Stopped())
}

func TestContractViolationError(t *testing.T) {
	for _, tt := range []struct {
		Name      string
		Violation backtrack.ContractViolation
		Expected  string
	}{
		{
			Name:      "without diff",
			Violation: backtrack.ContractViolation{Depth: 2, Move: "[0 1]"},
			Expected:  "unmake move did not restore policy state at depth 2 ([0 1])",
		},
		{
			Name:      "with diff",
			Violation: backtrack.ContractViolation{Depth: 1, Move: "[3]", Diff: "-a\n+b"},
			Expected:  "unmake move did not restore policy state at depth 1 ([3]):\n-a\n+b",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.EqualError(t, &tt.Violation, tt.Expected)
		})
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "descend", backtrack.Descend.String())
	assert.Equal(t, "solution", backtrack.Solution.String())
	assert.Equal(t, "backtrack", backtrack.Backtrack.String())
	assert.Equal(t, "terminate", backtrack.Terminate.String())
	assert.Equal(t, "unknown", backtrack.Event(42).String())
}
