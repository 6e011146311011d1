package backtrack

// Event identifies the point of the traversal a SearchPosition was
// captured at.
type Event int

const (
	// Descend is traced after MakeMove, before recursing.
	Descend Event = iota
	// Solution is traced before ProcessSolution.
	Solution
	// Backtrack is traced after UnmakeMove.
	Backtrack
	// Terminate is traced when a frame stops iterating its candidates
	// because the run was stopped.
	Terminate
)

func (e Event) String() string {
	switch e {
	case Descend:
		return "descend"
	case Solution:
		return "solution"
	case Backtrack:
		return "backtrack"
	case Terminate:
		return "terminate"
	}
	return "unknown"
}

type SearchPosition interface {
	Event() Event
	Depth() int
	// Partial returns the rendered partial solution at this position.
	Partial() string
}

type Tracer interface {
	Trace(p SearchPosition)
}
