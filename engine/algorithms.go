package engine

import (
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/frontier"
	"github.com/katalvlaran/lvlsearch/strategy"
)

// The named-algorithm constructors below pair the canonical frontier
// and strategy for each classic algorithm, so a caller who does not
// need a custom combination can run one in a single call. Each accepts
// the same functional Options as Search.

// BFS runs breadth-first search: FIFO frontier, priorities ignored.
// On unit-cost spaces the returned path has the fewest actions of any
// path to the nearest goal.
func BFS[S comparable, A any](problem core.Problem[S, A], opts ...Option[S, A]) (*core.Result[S, A], error) {
	return Search(problem, frontier.NewFIFO[S, A](), strategy.BreadthFirst[S, A], opts...)
}

// DFS runs depth-first search: LIFO frontier, priorities ignored.
// Finds some path when one is reachable (in graph-search mode) with no
// optimality guarantee.
func DFS[S comparable, A any](problem core.Problem[S, A], opts ...Option[S, A]) (*core.Result[S, A], error) {
	return Search(problem, frontier.NewLIFO[S, A](), strategy.DepthFirst[S, A], opts...)
}

// UCS runs uniform-cost search: priority frontier ordered by g(n).
// Optimal for non-negative step costs.
func UCS[S comparable, A any](problem core.Problem[S, A], opts ...Option[S, A]) (*core.Result[S, A], error) {
	return Search(problem, frontier.NewPriority[S, A](), strategy.UniformCost[S, A], opts...)
}

// AStar runs A* search: priority frontier ordered by g(n) + h(state).
// Optimal when h is admissible; with h == nil it degrades to the null
// heuristic and behaves exactly like UCS.
func AStar[S comparable, A any](problem core.Problem[S, A], h core.Heuristic[S], opts ...Option[S, A]) (*core.Result[S, A], error) {
	opts = append([]Option[S, A]{WithHeuristic[S, A](h)}, opts...)

	return Search(problem, frontier.NewPriority[S, A](), strategy.AStar[S, A], opts...)
}

// Greedy runs greedy best-first search: priority frontier ordered by
// h(state) alone. No optimality guarantee.
func Greedy[S comparable, A any](problem core.Problem[S, A], h core.Heuristic[S], opts ...Option[S, A]) (*core.Result[S, A], error) {
	opts = append([]Option[S, A]{WithHeuristic[S, A](h)}, opts...)

	return Search(problem, frontier.NewPriority[S, A](), strategy.Greedy[S, A], opts...)
}
