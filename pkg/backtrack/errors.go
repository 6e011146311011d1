package backtrack

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is returned when a search configured with a depth
// guard descends past it.
var ErrDepthExceeded = errors.New("search depth limit exceeded")

// ContractViolation is returned by a search with invariant checks
// enabled when UnmakeMove did not restore the state that preceded the
// paired MakeMove.
type ContractViolation struct {
	// Depth is the length of the extended partial solution involved.
	Depth int
	// Move is a human-readable rendering of the extended partial.
	Move string
	// Diff describes the difference between the state before MakeMove
	// and the state after UnmakeMove.
	Diff string
}

func (e *ContractViolation) Error() string {
	const msg = "unmake move did not restore policy state"
	if e.Diff == "" {
		return fmt.Sprintf("%s at depth %d (%s)", msg, e.Depth, e.Move)
	}
	return fmt.Sprintf("%s at depth %d (%s):\n%s", msg, e.Depth, e.Move, e.Diff)
}
