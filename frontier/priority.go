package frontier

import (
	"container/heap"

	"github.com/katalvlaran/lvlsearch/core"
)

// Priority is a min-ordered open set keyed by (priority, insertion
// sequence): Pop returns the entry with the smallest priority, ties
// broken by earliest insertion. With the uniform-cost, A*, or greedy
// strategy it yields the corresponding best-first algorithm.
//
// Push and Pop are O(log n) in the number of entries. Unlike a
// decrease-key queue, Priority never replaces or drops entries: every
// pushed node is popped exactly once, and deduplication of repeated
// states is the engine's explored-set concern.
//
// The zero value is not ready to use; construct with NewPriority.
type Priority[S comparable, A any] struct {
	h   entryHeap[S, A]
	seq uint64 // monotone insertion counter for deterministic ties
}

// NewPriority returns an empty priority-ordered frontier.
func NewPriority[S comparable, A any]() *Priority[S, A] {
	p := &Priority[S, A]{h: make(entryHeap[S, A], 0)}
	heap.Init(&p.h)

	return p
}

// Push inserts n with the given priority, stamping it with the next
// insertion sequence number.
func (p *Priority[S, A]) Push(n *core.Node[S, A], priority float64) {
	heap.Push(&p.h, &entry[S, A]{node: n, priority: priority, seq: p.seq})
	p.seq++
}

// Pop removes and returns the node with minimum (priority, sequence).
func (p *Priority[S, A]) Pop() (*core.Node[S, A], error) {
	if p.h.Len() == 0 {
		return nil, ErrEmptyFrontier
	}
	e := heap.Pop(&p.h).(*entry[S, A])

	return e.node, nil
}

// Len returns the number of held entries.
func (p *Priority[S, A]) Len() int { return p.h.Len() }

// IsEmpty reports whether no entries remain.
func (p *Priority[S, A]) IsEmpty() bool { return p.h.Len() == 0 }

// entry pairs a node with its priority and insertion sequence number.
type entry[S comparable, A any] struct {
	node     *core.Node[S, A]
	priority float64
	seq      uint64
}

// entryHeap is a min-heap of *entry ordered by (priority, seq) ascending.
type entryHeap[S comparable, A any] []*entry[S, A]

// Len returns the number of items in the heap.
func (h entryHeap[S, A]) Len() int { return len(h) }

// Less orders by priority first, insertion sequence second, so equal
// priorities pop in first-inserted-wins order.
func (h entryHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; x must be of type *entry.
func (h *entryHeap[S, A]) Push(x any) { *h = append(*h, x.(*entry[S, A])) }

// Pop removes and returns the last element; container/heap has already
// moved the minimum there.
func (h *entryHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}
