// Package engine defines tunable options and error definitions for the
// generic search loop.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// Sentinel errors for engine execution.
var (
	// ErrNilProblem is returned when no problem is supplied.
	ErrNilProblem = errors.New("engine: problem is nil")

	// ErrNilFrontier is returned when no frontier is supplied.
	ErrNilFrontier = errors.New("engine: frontier is nil")

	// ErrNilPriority is returned when no priority function is supplied.
	ErrNilPriority = errors.New("engine: priority function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")

	// ErrExpansionLimit is returned when the WithMaxExpansions budget is
	// exhausted before the frontier empties or a goal is popped.
	ErrExpansionLimit = errors.New("engine: expansion limit reached")
)

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. a negative depth limit), it is recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option[S comparable, A any] func(*Options[S, A])

// Options holds parameters and callbacks customizing one Search run.
type Options[S comparable, A any] struct {
	// Heuristic supplies h(state) to the priority strategy.
	// Defaults to core.NullHeuristic (h == 0 everywhere).
	Heuristic core.Heuristic[S]

	// GraphSearch, when true (the default), deduplicates states via an
	// explored set: each distinct state is expanded at most once, using
	// whichever node reaches it first in pop order. When false the
	// search is a tree search and may revisit states indefinitely; the
	// caller is responsible for bounding cyclic spaces (WithMaxDepth,
	// WithMaxExpansions, or a context deadline).
	GraphSearch bool

	// AllowRevisit switches graph-search deduplication from the
	// explored set to best-cost tracking: a popped node is expanded iff
	// it carries the cheapest cost seen so far for its state, and a
	// child is generated iff it improves on that cost. Required for
	// optimality when step costs can be negative. Ignored in
	// tree-search mode. May not terminate on negative cycles; pair
	// with WithMaxDepth.
	AllowRevisit bool

	// Ctx allows cancellation and deadlines, checked once per loop
	// iteration. Defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, stops generating children beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxExpansions, if > 0, aborts the run with ErrExpansionLimit once
	// this many nodes have been expanded. 0 disables the limit.
	MaxExpansions int

	// OnExpand is called for each node immediately before its
	// successors are generated. Returning an error aborts the search
	// and propagates that error.
	OnExpand func(n *core.Node[S, A]) error

	// OnGenerate is called for each node right after it is pushed into
	// the frontier, the root included.
	OnGenerate func(n *core.Node[S, A])

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - core.NullHeuristic
//   - graph search enabled, revisiting disabled
//   - context.Background()
//   - no depth or expansion limits
//   - no-op hooks.
func DefaultOptions[S comparable, A any]() Options[S, A] {
	return Options[S, A]{
		Heuristic:    core.NullHeuristic[S]{},
		GraphSearch:  true,
		AllowRevisit: false,
		Ctx:          context.Background(),
		MaxDepth:     0,
		OnExpand:     func(*core.Node[S, A]) error { return nil },
		OnGenerate:   func(*core.Node[S, A]) {},
		err:          nil,
	}
}

// WithHeuristic supplies domain knowledge to informed strategies.
func WithHeuristic[S comparable, A any](h core.Heuristic[S]) Option[S, A] {
	return func(o *Options[S, A]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithTreeSearch disables state deduplication: the run becomes a tree
// search that may revisit states indefinitely on cyclic spaces.
func WithTreeSearch[S comparable, A any]() Option[S, A] {
	return func(o *Options[S, A]) {
		o.GraphSearch = false
	}
}

// WithAllowRevisit enables best-cost re-expansion of already-seen
// states; see Options.AllowRevisit.
func WithAllowRevisit[S comparable, A any]() Option[S, A] {
	return func(o *Options[S, A]) {
		o.AllowRevisit = true
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable, A any](ctx context.Context) Option[S, A] {
	return func(o *Options[S, A]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops generating children beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[S comparable, A any](d int) Option[S, A] {
	return func(o *Options[S, A]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxExpansions aborts the run with ErrExpansionLimit once n nodes
// have been expanded.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable, A any](n int) Option[S, A] {
	return func(o *Options[S, A]) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// WithOnExpand registers a callback to run before each expansion;
// returning an error from this callback stops the search.
func WithOnExpand[S comparable, A any](fn func(n *core.Node[S, A]) error) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback to run after each push.
func WithOnGenerate[S comparable, A any](fn func(n *core.Node[S, A])) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}
