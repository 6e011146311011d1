package policy

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

var _ backtrack.Policy[int] = &Permutations{}
var _ backtrack.Snapshotter = &Permutations{}

// Permutations enumerates the permutations of [0, maxDepth). Each
// choice is an index not yet used by the partial solution.
//
// A Permutations value serves a single search run: the solution count
// behind WithLimit is never reset.
type Permutations struct {
	base
	used []bool
}

func NewPermutations(maxDepth int, options ...Option) (*Permutations, error) {
	b, err := newBase(maxDepth, options)
	if err != nil {
		return nil, err
	}
	return &Permutations{
		base: b,
		used: make([]bool, maxDepth),
	}, nil
}

// ConstructCandidates returns the ascending indices that are neither
// part of partial nor marked by a pending move.
func (p *Permutations) ConstructCandidates(partial []int) ([]int, error) {
	return lo.Filter(lo.Without(lo.Range(p.maxDepth), partial...), func(i int, _ int) bool {
		return !p.used[i]
	}), nil
}

func (p *Permutations) MakeMove(extended []int) error {
	index, err := p.last(extended)
	if err != nil {
		return err
	}
	if p.used[index] || slices.Contains(extended[:len(extended)-1], index) {
		return fmt.Errorf("index %d is already part of %v", index, extended[:len(extended)-1])
	}
	p.used[index] = true
	return nil
}

func (p *Permutations) UnmakeMove(extended []int) error {
	index, err := p.last(extended)
	if err != nil {
		return err
	}
	p.used[index] = false
	return nil
}

func (p *Permutations) ProcessSolution(partial []int, stop *backtrack.Termination) error {
	return p.emit(slices.Clone(partial), stop)
}

// Snapshot returns a copy of the set of used indices.
func (p *Permutations) Snapshot() any {
	return slices.Clone(p.used)
}

func (p *Permutations) last(extended []int) (int, error) {
	if len(extended) == 0 {
		return 0, fmt.Errorf("empty move")
	}
	index := extended[len(extended)-1]
	if index < 0 || index >= p.maxDepth {
		return 0, fmt.Errorf("index %d out of range [0, %d)", index, p.maxDepth)
	}
	return index, nil
}
