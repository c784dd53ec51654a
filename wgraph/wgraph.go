// Package wgraph implements core.Problem over explicit weighted
// digraphs with string vertex IDs.
package wgraph

import (
	"errors"

	"github.com/katalvlaran/lvlsearch/core"
)

// Sentinel errors for problem construction.
var (
	// ErrNilGraph indicates a nil *Digraph was passed to NewProblem.
	ErrNilGraph = errors.New("wgraph: graph is nil")

	// ErrVertexNotFound indicates the start or goal vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("wgraph: vertex not found in graph")
)

// arc is one outgoing edge of a vertex.
type arc struct {
	to     string
	weight float64
}

// Digraph is a minimal weighted directed graph: vertices are string
// IDs, each with an insertion-ordered adjacency list. It is a builder,
// not a concurrent structure: construct it fully before searching.
type Digraph struct {
	adj map[string][]arc
}

// NewDigraph returns an empty digraph.
func NewDigraph() *Digraph {
	return &Digraph{adj: make(map[string][]arc)}
}

// AddVertex ensures id exists, with no outgoing edges yet. Adding an
// existing vertex is a no-op.
func (g *Digraph) AddVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// AddEdge inserts the directed edge from→to with the given weight,
// creating both endpoints as needed. Parallel edges are permitted and
// explored independently.
func (g *Digraph) AddEdge(from, to string, weight float64) {
	g.AddVertex(from)
	g.AddVertex(to)
	g.adj[from] = append(g.adj[from], arc{to: to, weight: weight})
}

// HasVertex reports whether id exists in the graph.
func (g *Digraph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// VertexCount returns the number of vertices, a useful WithMaxDepth
// bound: any simple path has at most VertexCount-1 edges.
func (g *Digraph) VertexCount() int { return len(g.adj) }

// Problem poses a start→goal route query over a Digraph. It implements
// core.Problem[string, string]; the graph is read-only during a search
// and one graph may back any number of problems.
type Problem struct {
	g           *Digraph
	start, goal string
}

// NewProblem wraps g into a search problem from start to goal.
// Returns ErrNilGraph or ErrVertexNotFound for invalid input.
func NewProblem(g *Digraph, start, goal string) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) || !g.HasVertex(goal) {
		return nil, ErrVertexNotFound
	}

	return &Problem{g: g, start: start, goal: goal}, nil
}

// InitialState returns the start vertex ID.
func (p *Problem) InitialState() string { return p.start }

// IsGoal reports whether state is the goal vertex.
func (p *Problem) IsGoal(state string) bool { return state == p.goal }

// Successors yields the outgoing edges of state in insertion order.
// The action label of a transition is the target vertex ID.
func (p *Problem) Successors(state string) []core.Successor[string, string] {
	arcs := p.g.adj[state]
	out := make([]core.Successor[string, string], 0, len(arcs))
	for _, a := range arcs {
		out = append(out, core.Successor[string, string]{
			State:  a.to,
			Action: a.to,
			Cost:   a.weight,
		})
	}

	return out
}
