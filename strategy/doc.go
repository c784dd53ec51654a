// Package strategy provides the canonical priority functions of
// lvlsearch. A strategy is a pure function from (node, heuristic) to a
// real-valued priority; together with the frontier choice it fully
// determines the named algorithm run by the engine:
//
//	UniformCost  — g(n)            + priority frontier → Uniform-Cost Search
//	AStar        — g(n) + h(state) + priority frontier → A* Search
//	Greedy       — h(state)        + priority frontier → Greedy Best-First
//	BreadthFirst — depth(n)        + priority frontier → BFS ordering
//	DepthFirst   — -depth(n)       + priority frontier → DFS ordering
//
// BreadthFirst and DepthFirst also pair with the FIFO and LIFO
// frontiers, which ignore priorities entirely; the depth-based values
// let a single priority frontier emulate both orderings when that is
// more convenient.
//
// Guarantees depend on the declared heuristic properties: UniformCost
// is optimal for non-negative step costs; AStar is optimal when the
// heuristic is admissible; Greedy trades optimality for speed.
package strategy
