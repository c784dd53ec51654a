// Package engine implements the generic state-space search loop of
// lvlsearch. One loop body becomes breadth-first, depth-first,
// uniform-cost, greedy best-first, or A* search depending on the
// injected frontier and priority strategy; the domain itself is
// supplied as a core.Problem.
//
// The loop (Search):
//
//  1. Wrap the problem's initial state into a root node and push it.
//  2. While the frontier is non-empty: pop the minimum entry, return a
//     success Result if it is a goal, skip it if its state was already
//     expanded (graph-search mode), otherwise expand it and push each
//     child with the strategy's priority.
//  3. An emptied frontier is a normal failure Result, not an error.
//
// Complexity:
//
//   - Time:  O(N · (B + log N)) with a priority frontier, O(N · B) with
//     FIFO/LIFO, where N = nodes pushed and B = branching factor.
//   - Space: O(N) for the frontier and node tree, plus O(distinct
//     states expanded) for the explored set in graph-search mode.
//     Both grow monotonically during one run and are released when it
//     returns.
//
// Options:
//
//   - WithHeuristic(h)      domain knowledge for informed strategies;
//     defaults to core.NullHeuristic.
//   - WithTreeSearch()      disable the explored set: repeated states
//     are re-expanded, and cyclic spaces can loop forever unless bounded.
//   - WithAllowRevisit()    replace the explored set with best-cost
//     tracking, re-expanding a state whenever a strictly cheaper path
//     to it pops; needed when first-pop-is-cheapest does not hold
//     (e.g. negative step costs).
//   - WithContext(ctx)      cancellation, checked once per iteration.
//   - WithMaxDepth(d)       do not generate children deeper than d.
//   - WithMaxExpansions(n)  abort with ErrExpansionLimit after n
//     expansions.
//   - WithOnExpand(fn)      hook before a node's successors are
//     generated; a returned error aborts the search.
//   - WithOnGenerate(fn)    hook after a node is pushed.
//
// Errors:
//
//   - ErrNilProblem, ErrNilFrontier, ErrNilPriority — missing collaborator.
//   - ErrOptionViolation — an invalid Option was supplied.
//   - ErrExpansionLimit  — the WithMaxExpansions budget was exhausted.
//   - context.Canceled / context.DeadlineExceeded — the context ended.
//   - any error returned by an OnExpand hook.
//
// A search that simply finds no goal returns a nil error and a Result
// with Success == false.
package engine
