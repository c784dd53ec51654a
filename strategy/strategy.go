package strategy

import "github.com/katalvlaran/lvlsearch/core"

// UniformCost ranks a node by its accumulated path cost g(n). Optimal
// for state spaces with non-negative step costs; the heuristic is
// ignored.
func UniformCost[S comparable, A any](n *core.Node[S, A], _ core.Heuristic[S]) float64 {
	return n.Cost
}

// AStar ranks a node by f(n) = g(n) + h(state). Optimal when h is
// admissible; optimally efficient when h is also consistent.
func AStar[S comparable, A any](n *core.Node[S, A], h core.Heuristic[S]) float64 {
	return n.Cost + h.H(n.State)
}

// Greedy ranks a node by h(state) alone, ignoring the accumulated
// cost. Fast, but offers no optimality guarantee and may miss
// reachable goals under adversarial heuristics in tree-search mode.
func Greedy[S comparable, A any](n *core.Node[S, A], h core.Heuristic[S]) float64 {
	return h.H(n.State)
}

// BreadthFirst ranks a node by its depth, so shallower nodes pop
// first; the heuristic is ignored.
func BreadthFirst[S comparable, A any](n *core.Node[S, A], _ core.Heuristic[S]) float64 {
	return float64(n.Depth)
}

// DepthFirst ranks a node by negated depth, so deeper nodes pop first;
// the heuristic is ignored.
func DepthFirst[S comparable, A any](n *core.Node[S, A], _ core.Heuristic[S]) float64 {
	return -float64(n.Depth)
}
