package search

import (
	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// frame is one level of the explicit stack: the partial solution of
// the level, its candidates and the child currently being explored.
type frame[C comparable] struct {
	partial    []C
	candidates []C
	next       int

	child  []C
	before any
}

// iterate performs the same traversal as search without recursion.
func (r *run[C]) iterate(root []C) error {
	if r.stop.Stopped() {
		return nil
	}
	if r.policy.IsSolution(root) {
		r.trace(backtrack.Solution, root)
		return r.policy.ProcessSolution(root, r.stop)
	}
	candidates, err := r.policy.ConstructCandidates(root)
	if err != nil {
		return err
	}

	stack := []*frame[C]{{partial: root, candidates: candidates}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// the child of top has been fully explored
		if top.child != nil {
			child, before := top.child, top.before
			top.child, top.before = nil, nil
			if err := r.unmakeMove(child, before); err != nil {
				return err
			}
			if r.stop.Stopped() {
				r.trace(backtrack.Terminate, top.partial)
				stack = stack[:len(stack)-1]
				continue
			}
		}

		if top.next >= len(top.candidates) {
			stack = stack[:len(stack)-1]
			continue
		}
		extended := extend(top.partial, top.candidates[top.next])
		top.next++

		before, err := r.makeMove(extended)
		if err != nil {
			return err
		}
		top.child, top.before = extended, before

		if r.stop.Stopped() {
			continue
		}
		if r.policy.IsSolution(extended) {
			r.trace(backtrack.Solution, extended)
			if err := r.policy.ProcessSolution(extended, r.stop); err != nil {
				return err
			}
			continue
		}
		candidates, err := r.policy.ConstructCandidates(extended)
		if err != nil {
			return err
		}
		stack = append(stack, &frame[C]{partial: extended, candidates: candidates})
	}
	return nil
}
