package core

// NullHeuristic returns 0 for every state. It is trivially admissible
// and consistent, and is the engine's default when no heuristic is
// supplied: A* degenerates to uniform-cost search and greedy to a
// constant-zero ordering (FIFO-like under the deterministic tie-break).
type NullHeuristic[S comparable] struct{}

// H always returns zero.
func (NullHeuristic[S]) H(S) float64 { return 0 }

// IsAdmissible reports true: zero never overestimates.
func (NullHeuristic[S]) IsAdmissible() bool { return true }

// IsConsistent reports true: zero trivially satisfies the triangle
// inequality for non-negative edge costs.
func (NullHeuristic[S]) IsConsistent() bool { return true }

// HeuristicFunc adapts a plain estimate function into a Heuristic,
// carrying the caller-declared admissibility and consistency flags.
//
//	h := core.HeuristicFunc[grid.Cell]{
//		Fn:         manhattanToGoal,
//		Admissible: true,
//		Consistent: true,
//	}
type HeuristicFunc[S comparable] struct {
	Fn         func(state S) float64 // the estimate; must be non-negative
	Admissible bool                  // declared: Fn never overestimates
	Consistent bool                  // declared: Fn satisfies the triangle inequality
}

// H evaluates the wrapped function.
func (h HeuristicFunc[S]) H(state S) float64 { return h.Fn(state) }

// IsAdmissible returns the declared admissibility flag.
func (h HeuristicFunc[S]) IsAdmissible() bool { return h.Admissible }

// IsConsistent returns the declared consistency flag.
func (h HeuristicFunc[S]) IsConsistent() bool { return h.Consistent }
