package grid

import (
	"math"

	"github.com/katalvlaran/lvlsearch/core"
)

// Manhattan returns the |dx| + |dy| distance-to-goal heuristic.
// On a Conn4 grid whose minimum passable cell value is ≥ 1 every step
// moves one Manhattan unit at cost ≥ 1, so the estimate never
// overestimates and satisfies the triangle inequality: it is declared
// admissible and consistent.
func Manhattan(goal Cell) core.Heuristic[Cell] {
	return core.HeuristicFunc[Cell]{
		Fn: func(c Cell) float64 {
			return math.Abs(float64(c.X-goal.X)) + math.Abs(float64(c.Y-goal.Y))
		},
		Admissible: true,
		Consistent: true,
	}
}

// Chebyshev returns the max(|dx|, |dy|) distance-to-goal heuristic,
// the Conn8 counterpart of Manhattan: a diagonal step moves one
// Chebyshev unit, so the same admissibility condition applies.
func Chebyshev(goal Cell) core.Heuristic[Cell] {
	return core.HeuristicFunc[Cell]{
		Fn: func(c Cell) float64 {
			return math.Max(math.Abs(float64(c.X-goal.X)), math.Abs(float64(c.Y-goal.Y)))
		},
		Admissible: true,
		Consistent: true,
	}
}
