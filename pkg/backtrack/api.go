package backtrack

// Policy implementations describe one search domain. The search
// engine drives a Policy from an empty partial solution, extending it
// one Choice at a time and undoing extensions once they have been
// explored.
//
// A partial solution is the ordered path of choices from the search
// root to the current node; its length is the current depth.
type Policy[C comparable] interface {
	// IsSolution reports whether partial is a complete, acceptable
	// solution. It must not have side effects.
	IsSolution(partial []C) bool
	// ConstructCandidates returns the ordered choices that may legally
	// extend partial. The order determines enumeration order and must
	// be deterministic. An empty result ends the branch.
	ConstructCandidates(partial []C) ([]C, error)
	// MakeMove is invoked right after a candidate has been appended to
	// form extended, before descending into it.
	MakeMove(extended []C) error
	// UnmakeMove is invoked after the descent into extended returns. It
	// must exactly undo the state changes of the paired MakeMove.
	UnmakeMove(extended []C) error
	// ProcessSolution is invoked once for every partial accepted by
	// IsSolution. It may request an early stop through stop.
	ProcessSolution(partial []C, stop *Termination) error
}

// Snapshotter is implemented by policies that can expose their
// observable state for make/unmake symmetry checks. The returned value
// must be a deep copy.
type Snapshotter interface {
	Snapshot() any
}

// Termination is the early stop signal shared by all frames of a
// single search run. Once stopped it stays stopped; a fresh run
// requires a fresh Termination.
type Termination struct {
	stopped bool
}

// Stop requests that the search end. No further candidate is expanded
// at any active level once Stop has been called.
func (t *Termination) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop has been called.
func (t *Termination) Stopped() bool {
	return t != nil && t.stopped
}
