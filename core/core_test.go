// Package core_test contains unit tests for the shared lvlsearch
// contracts: node bookkeeping invariants, iterative path
// reconstruction, and the heuristic helpers.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/core"
)

func TestNewRoot_Invariants(t *testing.T) {
	root := core.NewRoot[string, string]("start")

	assert.Equal(t, "start", root.State)
	assert.Nil(t, root.Parent)
	assert.False(t, root.HasAction, "root must carry no action")
	assert.Zero(t, root.Cost)
	assert.Zero(t, root.Depth)
}

func TestChild_AccumulatesCostAndDepth(t *testing.T) {
	root := core.NewRoot[string, string]("A")
	b := root.Child(core.Successor[string, string]{State: "B", Action: "go-B", Cost: 1.5})
	c := b.Child(core.Successor[string, string]{State: "C", Action: "go-C", Cost: 2.0})

	// Non-root invariant: g == parent.g + edge cost, depth == parent.depth + 1.
	assert.Equal(t, root, b.Parent)
	assert.InDelta(t, 1.5, b.Cost, 1e-12)
	assert.Equal(t, 1, b.Depth)
	assert.True(t, b.HasAction)

	assert.Equal(t, b, c.Parent)
	assert.InDelta(t, 3.5, c.Cost, 1e-12)
	assert.Equal(t, 2, c.Depth)
}

func TestChild_ZeroCostEdge(t *testing.T) {
	root := core.NewRoot[int, string](0)
	child := root.Child(core.Successor[int, string]{State: 0, Action: "loop", Cost: 0})

	// Self-loops and zero-cost edges are permitted by construction.
	assert.Equal(t, 0, child.State)
	assert.Zero(t, child.Cost)
	assert.Equal(t, 1, child.Depth)
}

func TestPath_RootOnly(t *testing.T) {
	root := core.NewRoot[string, string]("only")
	path, actions := root.Path()

	assert.Equal(t, []string{"only"}, path)
	assert.Empty(t, actions)
}

func TestPath_ReconstructsRootToGoalOrder(t *testing.T) {
	root := core.NewRoot[string, string]("A")
	b := root.Child(core.Successor[string, string]{State: "B", Action: "ab", Cost: 1})
	c := b.Child(core.Successor[string, string]{State: "C", Action: "bc", Cost: 1})
	d := c.Child(core.Successor[string, string]{State: "D", Action: "cd", Cost: 1})

	path, actions := d.Path()
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	assert.Equal(t, []string{"ab", "bc", "cd"}, actions)
}

func TestPath_DeepChainIterative(t *testing.T) {
	// A chain far deeper than any recursion budget would tolerate.
	const depth = 200_000
	n := core.NewRoot[int, string](0)
	for i := 1; i <= depth; i++ {
		n = n.Child(core.Successor[int, string]{State: i, Action: "step", Cost: 1})
	}

	path, actions := n.Path()
	require.Len(t, path, depth+1)
	require.Len(t, actions, depth)
	assert.Equal(t, 0, path[0])
	assert.Equal(t, depth, path[depth])
	assert.InDelta(t, float64(depth), n.Cost, 1e-6)
}

func TestNullHeuristic(t *testing.T) {
	var h core.NullHeuristic[string]

	assert.Zero(t, h.H("anything"))
	assert.True(t, h.IsAdmissible())
	assert.True(t, h.IsConsistent())
}

func TestHeuristicFunc_WrapsFunctionAndFlags(t *testing.T) {
	h := core.HeuristicFunc[int]{
		Fn:         func(v int) float64 { return float64(10 - v) },
		Admissible: true,
		Consistent: false,
	}

	assert.InDelta(t, 7.0, h.H(3), 1e-12)
	assert.True(t, h.IsAdmissible())
	assert.False(t, h.IsConsistent())
}
