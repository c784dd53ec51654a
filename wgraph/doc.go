// Package wgraph poses an explicit weighted digraph as a search
// domain: build a Digraph edge by edge, then wrap a (start, goal) pair
// into a core.Problem[string, string] and hand it to any lvlsearch
// algorithm. This is the classic benchmark domain for comparing
// uniform-cost, greedy, and A* behavior on the same graph.
//
// Vertices are string IDs; the action of a transition is the target
// vertex ID. Successors are yielded in edge-insertion order, so runs
// are fully deterministic.
//
// Edge weights may be negative: the engine does not reject them, but
// uniform-cost and A* optimality assume non-negative weights. For
// negative edges pair the engine's WithAllowRevisit with WithMaxDepth
// to keep negative cycles from looping forever.
//
// Errors:
//
//   - ErrNilGraph       — a nil *Digraph was supplied.
//   - ErrVertexNotFound — the start or goal vertex is absent.
package wgraph
