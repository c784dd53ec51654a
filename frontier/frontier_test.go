// Package frontier_test contains unit tests for the three open-set
// implementations: ordering discipline, deterministic tie-breaking,
// exactly-once delivery, and empty-frontier errors.
package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/frontier"
)

// node builds a root node for state s; frontier tests never need
// parent chains.
func node(s string) *core.Node[string, string] {
	return core.NewRoot[string, string](s)
}

// drain pops every remaining entry and returns the state order.
func drain(t *testing.T, f core.Frontier[string, string]) []string {
	t.Helper()
	var order []string
	for !f.IsEmpty() {
		n, err := f.Pop()
		require.NoError(t, err)
		order = append(order, n.State)
	}

	return order
}

func TestFIFO_PopsInInsertionOrder(t *testing.T) {
	f := frontier.NewFIFO[string, string]()
	f.Push(node("a"), 9) // priorities are ignored by FIFO
	f.Push(node("b"), 1)
	f.Push(node("c"), 5)

	assert.Equal(t, []string{"a", "b", "c"}, drain(t, f))
}

func TestLIFO_PopsInReverseInsertionOrder(t *testing.T) {
	f := frontier.NewLIFO[string, string]()
	f.Push(node("a"), 9) // priorities are ignored by LIFO
	f.Push(node("b"), 1)
	f.Push(node("c"), 5)

	assert.Equal(t, []string{"c", "b", "a"}, drain(t, f))
}

func TestPriority_PopsByAscendingPriority(t *testing.T) {
	f := frontier.NewPriority[string, string]()
	f.Push(node("mid"), 5)
	f.Push(node("high"), 9)
	f.Push(node("low"), 1)

	assert.Equal(t, []string{"low", "mid", "high"}, drain(t, f))
}

func TestPriority_TieBreakFirstInsertedWins(t *testing.T) {
	f := frontier.NewPriority[string, string]()
	f.Push(node("first"), 3)
	f.Push(node("second"), 3)
	f.Push(node("third"), 3)
	f.Push(node("cheap"), 1)

	// Equal priorities must pop in insertion order, independent of the
	// heap's internal arrangement.
	assert.Equal(t, []string{"cheap", "first", "second", "third"}, drain(t, f))
}

func TestPriority_InterleavedPushPopKeepsOrdering(t *testing.T) {
	f := frontier.NewPriority[string, string]()
	f.Push(node("b"), 2)
	f.Push(node("d"), 4)

	n, err := f.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", n.State)

	f.Push(node("a"), 1)
	f.Push(node("c"), 3)

	assert.Equal(t, []string{"a", "c", "d"}, drain(t, f))
}

func TestFrontiers_ExactlyOnceDelivery(t *testing.T) {
	// Duplicate states are distinct entries: every push must surface in
	// exactly one pop, with no silent loss or deduplication.
	builders := map[string]func() core.Frontier[string, string]{
		"fifo":     func() core.Frontier[string, string] { return frontier.NewFIFO[string, string]() },
		"lifo":     func() core.Frontier[string, string] { return frontier.NewLIFO[string, string]() },
		"priority": func() core.Frontier[string, string] { return frontier.NewPriority[string, string]() },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			f := build()
			for i := 0; i < 3; i++ {
				f.Push(node("dup"), 7)
			}
			f.Push(node("other"), 7)
			require.Equal(t, 4, f.Len())

			seen := map[string]int{}
			for _, s := range drain(t, f) {
				seen[s]++
			}
			assert.Equal(t, map[string]int{"dup": 3, "other": 1}, seen)
			assert.True(t, f.IsEmpty())
			assert.Zero(t, f.Len())
		})
	}
}

func TestFrontiers_PopEmptyReturnsSentinel(t *testing.T) {
	frontiers := map[string]core.Frontier[string, string]{
		"fifo":     frontier.NewFIFO[string, string](),
		"lifo":     frontier.NewLIFO[string, string](),
		"priority": frontier.NewPriority[string, string](),
	}

	for name, f := range frontiers {
		t.Run(name, func(t *testing.T) {
			require.True(t, f.IsEmpty())
			n, err := f.Pop()
			assert.Nil(t, n)
			assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
		})
	}
}

func TestFrontiers_LenTracksPushPop(t *testing.T) {
	f := frontier.NewPriority[string, string]()
	assert.Zero(t, f.Len())

	f.Push(node("a"), 1)
	f.Push(node("b"), 2)
	assert.Equal(t, 2, f.Len())
	assert.False(t, f.IsEmpty())

	_, err := f.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Len())
}
