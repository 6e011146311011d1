package search

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// checkRestored compares the policy state captured before MakeMove with
// the state after the paired UnmakeMove.
func checkRestored[C any](before, after any, extended []C) error {
	if diff := cmp.Diff(before, after); diff != "" {
		return &backtrack.ContractViolation{
			Depth: len(extended),
			Move:  fmt.Sprint(extended),
			Diff:  diff,
		}
	}
	return nil
}
