// Package policy provides the example search domains: subsets and
// permutations of the index range [0, maxDepth).
package policy

import (
	"fmt"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

type Option func(b *base)

// WithReporter sets the callback receiving each emitted solution. The
// default reporter discards solutions.
func WithReporter(report Reporter) Option {
	return func(b *base) {
		b.report = report
	}
}

// WithLimit stops the search once limit solutions have been emitted
// by the policy. The count covers the lifetime of the policy, so a
// limited policy must not be reused for a second run. A limit of zero
// means no limit.
func WithLimit(limit int) Option {
	return func(b *base) {
		b.limit = limit
	}
}

// base holds the configuration shared by both domains.
type base struct {
	maxDepth int
	report   Reporter
	limit    int
	emitted  int
}

func newBase(maxDepth int, options []Option) (base, error) {
	if maxDepth < 0 {
		return base{}, fmt.Errorf("invalid max depth %d: must not be negative", maxDepth)
	}
	b := base{maxDepth: maxDepth, report: Discard}
	for _, option := range options {
		option(&b)
	}
	if b.limit < 0 {
		return base{}, fmt.Errorf("invalid limit %d: must not be negative", b.limit)
	}
	if b.report == nil {
		b.report = Discard
	}
	return b, nil
}

func (b *base) IsSolution(partial []int) bool {
	return len(partial) == b.maxDepth
}

// Emitted returns the number of solutions reported so far.
func (b *base) Emitted() int {
	return b.emitted
}

func (b *base) emit(solution []int, stop *backtrack.Termination) error {
	if err := b.report(solution); err != nil {
		return err
	}
	b.emitted++
	if b.limit > 0 && b.emitted >= b.limit {
		stop.Stop()
	}
	return nil
}
