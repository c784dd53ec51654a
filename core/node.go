package core

// Node is a search-tree record wrapping a state with its path history:
// a parent link, the action that reached it, the accumulated path cost
// g(n), and its depth. Nodes form a strictly tree-shaped, append-only
// structure owned by a single engine run; they are never mutated after
// construction.
//
// Invariants, maintained by NewRoot and Child:
//
//	root:     Parent == nil, HasAction == false, Cost == 0, Depth == 0
//	non-root: Cost == Parent.Cost + step cost, Depth == Parent.Depth + 1
type Node[S comparable, A any] struct {
	State     S           // domain state at this node
	Parent    *Node[S, A] // nil for the root
	Action    A           // transition that reached State; zero for the root
	HasAction bool        // false only for the root
	Cost      float64     // accumulated path cost g(n) from the root
	Depth     int         // number of edges from the root
}

// NewRoot wraps the initial state into a root node with zero cost and
// depth and no parent or action.
func NewRoot[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Child builds the node reached from n by taking succ, accumulating
// cost and depth.
func (n *Node[S, A]) Child(succ Successor[S, A]) *Node[S, A] {
	return &Node[S, A]{
		State:     succ.State,
		Parent:    n,
		Action:    succ.Action,
		HasAction: true,
		Cost:      n.Cost + succ.Cost,
		Depth:     n.Depth + 1,
	}
}

// Path reconstructs the state sequence from the root to n and the
// actions taken along it. The walk is iterative (no recursion) so deep
// solutions cannot exhaust the stack; the collected slices are reversed
// in place to yield root→n order.
func (n *Node[S, A]) Path() ([]S, []A) {
	path := make([]S, 0, n.Depth+1)
	actions := make([]A, 0, n.Depth)

	// walk goal → root
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
		if cur.HasAction {
			actions = append(actions, cur.Action)
		}
	}

	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return path, actions
}
