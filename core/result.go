package core

// Result is the outcome of one engine run. It is produced once per
// Search call and never mutated afterwards.
//
// A failed search (the frontier emptied without reaching a goal) is a
// normal, representable outcome: Success is false, Path and Actions are
// empty (non-nil), TotalCost is 0, and Goal is nil. It is not an error.
type Result[S comparable, A any] struct {
	// Success reports whether a goal state was popped.
	Success bool

	// Path is the state sequence from the initial state to the goal,
	// empty on failure.
	Path []S

	// Actions is the transition-label sequence along Path; always one
	// element shorter than Path on success, empty on failure.
	Actions []A

	// TotalCost is g(goal), the accumulated cost of Path; 0 on failure.
	TotalCost float64

	// NodesExpanded counts nodes whose successors were generated.
	NodesExpanded int

	// NodesGenerated counts nodes pushed into the frontier, the root
	// included.
	NodesGenerated int

	// MaxFrontier is the largest frontier size observed during the run.
	MaxFrontier int

	// Goal is the goal node on success (its parent chain is the search
	// tree branch of Path); nil on failure.
	Goal *Node[S, A]
}
