// Package core defines the generic contracts between the search engine
// and its collaborators: Problem, Heuristic, Frontier, and PriorityFunc.
package core

// Successor describes one outgoing transition of a state: the resulting
// state, the action label that produced it, and the step cost.
//
// Cost must be finite. Uniform-cost and A* search assume Cost >= 0; the
// engine does not reject negative costs, but the optimality guarantees
// of those algorithms hold only under that assumption.
type Successor[S comparable, A any] struct {
	State  S       // resulting state after taking Action
	Action A       // transition label, used only for reporting
	Cost   float64 // step cost of the transition
}

// Problem defines a state space. Implementations must be deterministic
// and side-effect-free: the engine may call any method any number of
// times during a single run.
type Problem[S comparable, A any] interface {
	// InitialState returns the starting state of the search.
	InitialState() S

	// IsGoal reports whether state is a goal state. Pure predicate.
	IsGoal(state S) bool

	// Successors generates the outgoing transitions of state.
	// An empty slice means a dead end; the engine imposes no bound on
	// the branching factor.
	Successors(state S) []Successor[S, A]
}

// Heuristic estimates the remaining cost from a state to the nearest
// goal. H must return a non-negative value.
//
// IsAdmissible and IsConsistent are declarative flags supplied by the
// implementer: admissible means H never overestimates the true
// remaining cost; consistent means H satisfies the triangle inequality
// h(n) <= cost(n, n') + h(n') across every edge (which implies
// admissibility). The engine never verifies either property; they exist
// so callers can document and reason about optimality guarantees.
type Heuristic[S comparable] interface {
	H(state S) float64
	IsAdmissible() bool
	IsConsistent() bool
}

// PriorityFunc maps a freshly generated node to a real-valued priority,
// optionally consulting the heuristic. It must be pure: it is evaluated
// exactly once per node, at the moment the node is pushed. Together
// with the frontier choice it fully determines the named algorithm
// (uniform-cost, A*, greedy, ...). See package strategy for the
// canonical functions.
type PriorityFunc[S comparable, A any] func(n *Node[S, A], h Heuristic[S]) float64

// Frontier is the open set of generated-but-not-yet-expanded nodes.
// The implementation chosen by the caller selects the exploration-order
// family: FIFO yields breadth-first, LIFO depth-first, and a
// priority-ordered structure the best-first family.
//
// Every implementation must guarantee that each pushed entry is
// returned exactly once by Pop (no silent loss), and that IsEmpty
// reports true iff no entries remain. The priority-ordered variant
// must break priority ties deterministically, earliest insertion first.
type Frontier[S comparable, A any] interface {
	// Push inserts n with the given priority. FIFO and LIFO variants
	// ignore the priority argument.
	Push(n *Node[S, A], priority float64)

	// Pop removes and returns the entry with minimum priority, ties
	// broken by earliest insertion. Returns an error iff the frontier
	// is empty.
	Pop() (*Node[S, A], error)

	// Len returns the number of entries currently held.
	Len() int

	// IsEmpty reports whether no entries remain.
	IsEmpty() bool
}
