package frontier

import "github.com/katalvlaran/lvlsearch/core"

// FIFO is a first-in-first-out open set: Pop always returns the
// earliest-pushed node, ignoring priorities. Combined with any strategy
// it yields breadth-first exploration order.
//
// The zero value is not ready to use; construct with NewFIFO.
type FIFO[S comparable, A any] struct {
	queue []*core.Node[S, A]
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO[S comparable, A any]() *FIFO[S, A] {
	return &FIFO[S, A]{queue: make([]*core.Node[S, A], 0)}
}

// Push appends n to the back of the queue. The priority argument is
// ignored: in a FIFO frontier all entries rank equally.
func (f *FIFO[S, A]) Push(n *core.Node[S, A], _ float64) {
	f.queue = append(f.queue, n)
}

// Pop removes and returns the node at the front of the queue.
func (f *FIFO[S, A]) Pop() (*core.Node[S, A], error) {
	if len(f.queue) == 0 {
		return nil, ErrEmptyFrontier
	}
	n := f.queue[0]
	f.queue[0] = nil // release the reference for the collector
	f.queue = f.queue[1:]

	return n, nil
}

// Len returns the number of queued nodes.
func (f *FIFO[S, A]) Len() int { return len(f.queue) }

// IsEmpty reports whether the queue holds no nodes.
func (f *FIFO[S, A]) IsEmpty() bool { return len(f.queue) == 0 }
