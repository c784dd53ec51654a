// Package lvlsearch is a problem-agnostic state-space search toolkit:
// one generic search loop that becomes BFS, DFS, Uniform-Cost, Greedy
// Best-First, or A* depending on the frontier and priority strategy you
// inject.
//
// 🚀 What is lvlsearch?
//
//	A modern, generic, zero-dependency library that brings together:
//		• Core contracts: Problem, Node, Heuristic, Frontier, Result
//		• Frontiers: FIFO queue, LIFO stack, deterministic min-heap
//		• Strategies: uniform-cost, A*, greedy, breadth- & depth-ordered
//		• One engine: graph search, tree search, and cost-revisit modes
//		• Ready-made domains: terrain grids and weighted digraphs
//
// ✨ Why choose lvlsearch?
//
//   - Write one domain – reuse it across every search algorithm
//   - Write one strategy – reuse it across every domain
//   - Pure Go – no cgo, no hidden deps, generics end to end
//   - Extensible – hooks (OnExpand, OnGenerate…) for custom logic
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/     — generic Node, Problem, Heuristic, Frontier & Result types
//	frontier/ — FIFO, LIFO and priority-ordered open-set implementations
//	strategy/ — canonical priority functions (g, g+h, h, depth, -depth)
//	engine/   — the search loop, options, and BFS/DFS/UCS/A*/Greedy presets
//	grid/     — terrain-grid Problem with Manhattan/Chebyshev heuristics
//	wgraph/   — explicit weighted-digraph Problem adapter
//
// Quick ASCII example:
//
//	    start ──1── B ──2── goal
//	       └────────5────────┘
//
//	Uniform-cost search finds the cheaper two-hop route (cost 3).
//
// Dive into the package docs and runnable examples for full usage,
// including admissible heuristics, tie-breaking guarantees, and
// tree-search vs graph-search semantics.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
