// Package engine implements the problem-agnostic search loop shared by
// BFS, DFS, uniform-cost, greedy best-first, and A* search.
package engine

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// Search runs the generic loop over problem, using f as the open set
// and priority to rank generated nodes, applying any number of
// functional Options.
//
// f must be a fresh, empty frontier: it is consumed by the run and must
// not be reused across calls. The problem and heuristic are read-only
// collaborators and may outlive any number of runs.
//
// Returns ErrNilProblem, ErrNilFrontier, or ErrNilPriority for missing
// collaborators, ErrOptionViolation for bad options, ErrExpansionLimit
// when the expansion budget runs out, the context's error on
// cancellation, or any error returned by an OnExpand hook. An exhausted
// frontier is not an error: the Result reports Success == false.
func Search[S comparable, A any](
	problem core.Problem[S, A],
	f core.Frontier[S, A],
	priority core.PriorityFunc[S, A],
	opts ...Option[S, A],
) (*core.Result[S, A], error) {
	// Validate collaborators before touching options.
	if problem == nil {
		return nil, ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	if priority == nil {
		return nil, ErrNilPriority
	}

	// Build options and catch any invalid ones immediately.
	o := DefaultOptions[S, A]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner[S, A]{
		problem:  problem,
		frontier: f,
		priority: priority,
		opts:     o,
	}
	if o.GraphSearch {
		if o.AllowRevisit {
			r.bestCost = make(map[S]float64)
		} else {
			r.explored = make(map[S]struct{})
		}
	}

	return r.run()
}

// runner holds the mutable state of a single Search execution. The
// frontier, explored set, and node tree are exclusively owned by one
// run and become unreachable when it returns.
type runner[S comparable, A any] struct {
	problem  core.Problem[S, A]
	frontier core.Frontier[S, A]
	priority core.PriorityFunc[S, A]
	opts     Options[S, A]

	explored map[S]struct{} // states already expanded (classic graph search)
	bestCost map[S]float64  // cheapest cost seen per state (revisit mode)

	expanded    int // nodes whose successors were generated
	generated   int // nodes pushed into the frontier
	maxFrontier int // peak frontier size observed
}

// run seeds the frontier with the root node and drives the main loop
// until a goal is popped, the frontier empties, or an abort condition
// fires.
func (r *runner[S, A]) run() (*core.Result[S, A], error) {
	root := core.NewRoot[S, A](r.problem.InitialState())
	r.push(root)

	for !r.frontier.IsEmpty() {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}
		// externally imposed step limit, checked at the loop top
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes expanded", ErrExpansionLimit, r.expanded)
		}
		if l := r.frontier.Len(); l > r.maxFrontier {
			r.maxFrontier = l
		}

		n, err := r.frontier.Pop()
		if err != nil {
			return nil, err
		}

		// goal test on pop, so the popped priority order decides which
		// path to a goal wins
		if r.problem.IsGoal(n.State) {
			return r.success(n), nil
		}

		if r.opts.GraphSearch && r.skip(n) {
			continue
		}

		r.expanded++
		if err = r.opts.OnExpand(n); err != nil {
			return nil, fmt.Errorf("engine: OnExpand error at depth %d: %w", n.Depth, err)
		}
		r.expand(n)
	}

	// Exhausted frontier: a normal outcome, not an error.
	return r.failure(), nil
}

// skip decides whether a popped node must be discarded without
// expansion, and records the node's state as expanded otherwise.
func (r *runner[S, A]) skip(n *core.Node[S, A]) bool {
	if r.opts.AllowRevisit {
		// Expand only if n carries the cheapest cost seen for its state;
		// stale costlier entries compete in the frontier and lose here.
		if best, ok := r.bestCost[n.State]; ok && n.Cost >= best {
			return true
		}
		r.bestCost[n.State] = n.Cost

		return false
	}

	if _, ok := r.explored[n.State]; ok {
		return true
	}
	r.explored[n.State] = struct{}{}

	return false
}

// expand generates n's successors and pushes each surviving child.
func (r *runner[S, A]) expand(n *core.Node[S, A]) {
	childDepth := n.Depth + 1
	if r.opts.MaxDepth > 0 && childDepth > r.opts.MaxDepth {
		return
	}

	for _, succ := range r.problem.Successors(n.State) {
		if r.opts.GraphSearch {
			if r.opts.AllowRevisit {
				// Generate only strict improvements over the best known
				// cost; equal-or-worse paths cannot beat the incumbent.
				if best, ok := r.bestCost[succ.State]; ok && n.Cost+succ.Cost >= best {
					continue
				}
			} else if _, ok := r.explored[succ.State]; ok {
				// pure pruning of already-expanded states, not an error
				continue
			}
		}
		r.push(n.Child(succ))
	}
}

// push inserts n into the frontier at its strategy priority and fires
// the OnGenerate hook.
func (r *runner[S, A]) push(n *core.Node[S, A]) {
	r.frontier.Push(n, r.priority(n, r.opts.Heuristic))
	r.generated++
	r.opts.OnGenerate(n)
}

// success builds the Result for a popped goal node, reconstructing the
// path by walking the parent chain.
func (r *runner[S, A]) success(goal *core.Node[S, A]) *core.Result[S, A] {
	path, actions := goal.Path()

	return &core.Result[S, A]{
		Success:        true,
		Path:           path,
		Actions:        actions,
		TotalCost:      goal.Cost,
		NodesExpanded:  r.expanded,
		NodesGenerated: r.generated,
		MaxFrontier:    r.maxFrontier,
		Goal:           goal,
	}
}

// failure builds the Result for an exhausted frontier.
func (r *runner[S, A]) failure() *core.Result[S, A] {
	return &core.Result[S, A]{
		Success:        false,
		Path:           []S{},
		Actions:        []A{},
		TotalCost:      0,
		NodesExpanded:  r.expanded,
		NodesGenerated: r.generated,
		MaxFrontier:    r.maxFrontier,
		Goal:           nil,
	}
}
