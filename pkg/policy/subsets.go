package policy

import (
	"github.com/samber/lo"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

const (
	Exclude = 0
	Include = 1
)

var _ backtrack.Policy[int] = &Subsets{}

// Subsets enumerates the subsets of [0, maxDepth). Each choice is an
// Include or Exclude flag for the index equal to the current depth.
// Solutions are emitted as the ascending 1-based indices of the
// included elements.
//
// A Subsets value serves a single search run: the solution count behind
// WithLimit is never reset.
type Subsets struct {
	base
}

func NewSubsets(maxDepth int, options ...Option) (*Subsets, error) {
	b, err := newBase(maxDepth, options)
	if err != nil {
		return nil, err
	}
	return &Subsets{base: b}, nil
}

func (s *Subsets) ConstructCandidates(_ []int) ([]int, error) {
	return []int{Include, Exclude}, nil
}

func (s *Subsets) MakeMove(_ []int) error {
	return nil
}

func (s *Subsets) UnmakeMove(_ []int) error {
	return nil
}

func (s *Subsets) ProcessSolution(partial []int, stop *backtrack.Termination) error {
	subset := lo.FilterMap(partial, func(flag int, i int) (int, bool) {
		return i + 1, flag == Include
	})
	return s.emit(subset, stop)
}
