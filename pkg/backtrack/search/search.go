package search

import (
	"fmt"

	"github.com/operator-framework/backtrack/pkg/backtrack"
)

// Run searches the whole space described by policy, starting from the
// empty partial solution. A nil engine uses the default configuration
// and a nil stop is replaced by a fresh Termination.
func Run[C comparable](e *Engine, policy backtrack.Policy[C], stop *backtrack.Termination) error {
	return Search(e, make([]C, 0), policy, stop)
}

// Search explores every extension of partial reachable through
// policy's candidates, handing each solution to the policy, until the
// candidates are exhausted or stop has been requested. Errors returned
// by the policy abort the search and are returned unmodified.
func Search[C comparable](e *Engine, partial []C, policy backtrack.Policy[C], stop *backtrack.Termination) error {
	if e == nil {
		e = defaultEngine()
	}
	if stop == nil {
		stop = &backtrack.Termination{}
	}
	r := &run[C]{
		Engine: e,
		policy: policy,
		stop:   stop,
	}
	if e.checkInvariants {
		r.snapshotter, _ = policy.(backtrack.Snapshotter)
	}
	if e.explicitStack {
		return r.iterate(partial)
	}
	return r.search(partial)
}

// run is the state of a single search.
type run[C comparable] struct {
	*Engine
	policy      backtrack.Policy[C]
	stop        *backtrack.Termination
	snapshotter backtrack.Snapshotter
}

func (r *run[C]) search(partial []C) error {
	if r.stop.Stopped() {
		return nil
	}
	if r.policy.IsSolution(partial) {
		r.trace(backtrack.Solution, partial)
		return r.policy.ProcessSolution(partial, r.stop)
	}

	candidates, err := r.policy.ConstructCandidates(partial)
	if err != nil {
		return err
	}
	for _, cand := range candidates {
		extended := extend(partial, cand)
		before, err := r.makeMove(extended)
		if err != nil {
			return err
		}
		if err := r.search(extended); err != nil {
			return err
		}
		if err := r.unmakeMove(extended, before); err != nil {
			return err
		}
		if r.stop.Stopped() {
			r.trace(backtrack.Terminate, partial)
			return nil
		}
	}
	return nil
}

// makeMove applies the move forming extended. The returned snapshot is
// nil unless invariant checks are active.
func (r *run[C]) makeMove(extended []C) (any, error) {
	if r.maxDepth >= 0 && len(extended) > r.maxDepth {
		return nil, fmt.Errorf("%w: partial solution %v is longer than %d", backtrack.ErrDepthExceeded, extended, r.maxDepth)
	}
	var before any
	if r.snapshotter != nil {
		before = r.snapshotter.Snapshot()
	}
	if err := r.policy.MakeMove(extended); err != nil {
		return nil, err
	}
	r.trace(backtrack.Descend, extended)
	return before, nil
}

func (r *run[C]) unmakeMove(extended []C, before any) error {
	if err := r.policy.UnmakeMove(extended); err != nil {
		return err
	}
	r.trace(backtrack.Backtrack, extended)
	if r.snapshotter != nil {
		return checkRestored(before, r.snapshotter.Snapshot(), extended)
	}
	return nil
}

func (r *run[C]) trace(event backtrack.Event, partial []C) {
	r.tracer.Trace(position[C]{event: event, partial: partial})
}

// extend returns a new slice holding partial followed by cand. It never
// aliases partial.
func extend[C any](partial []C, cand C) []C {
	extended := make([]C, len(partial)+1)
	copy(extended, partial)
	extended[len(partial)] = cand
	return extended
}

type position[C comparable] struct {
	event   backtrack.Event
	partial []C
}

var _ backtrack.SearchPosition = position[int]{}

func (p position[C]) Event() backtrack.Event {
	return p.event
}

func (p position[C]) Depth() int {
	return len(p.partial)
}

func (p position[C]) Partial() string {
	return fmt.Sprint(p.partial)
}
