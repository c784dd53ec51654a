package frontier

import "github.com/katalvlaran/lvlsearch/core"

// LIFO is a last-in-first-out open set: Pop always returns the most
// recently pushed node, ignoring priorities. Combined with any strategy
// it yields depth-first exploration order.
//
// The zero value is not ready to use; construct with NewLIFO.
type LIFO[S comparable, A any] struct {
	stack []*core.Node[S, A]
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO[S comparable, A any]() *LIFO[S, A] {
	return &LIFO[S, A]{stack: make([]*core.Node[S, A], 0)}
}

// Push places n on top of the stack. The priority argument is ignored:
// in a LIFO frontier all entries rank equally.
func (l *LIFO[S, A]) Push(n *core.Node[S, A], _ float64) {
	l.stack = append(l.stack, n)
}

// Pop removes and returns the node on top of the stack.
func (l *LIFO[S, A]) Pop() (*core.Node[S, A], error) {
	if len(l.stack) == 0 {
		return nil, ErrEmptyFrontier
	}
	top := len(l.stack) - 1
	n := l.stack[top]
	l.stack[top] = nil // release the reference for the collector
	l.stack = l.stack[:top]

	return n, nil
}

// Len returns the number of stacked nodes.
func (l *LIFO[S, A]) Len() int { return len(l.stack) }

// IsEmpty reports whether the stack holds no nodes.
func (l *LIFO[S, A]) IsEmpty() bool { return len(l.stack) == 0 }
