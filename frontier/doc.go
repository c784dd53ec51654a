// Package frontier provides the three open-set implementations of
// lvlsearch: a FIFO queue, a LIFO stack, and a priority-ordered
// min-heap. The caller's choice of frontier selects the exploration
// order family of the engine:
//
//	NewFIFO     — earliest-pushed node first; breadth-first exploration
//	NewLIFO     — most-recently-pushed node first; depth-first exploration
//	NewPriority — minimum (priority, insertion sequence) first; the
//	              best-first family (UCS, A*, Greedy) depending on the
//	              strategy supplied to the engine
//
// All three guarantee that every pushed entry is returned exactly once
// by Pop, with no silent loss, and that IsEmpty is true iff no entries
// remain. The priority variant breaks priority ties deterministically,
// earliest insertion first, so results are reproducible regardless of
// the heap's internal ordering of equal keys.
//
// Complexity:
//
//   - FIFO/LIFO: O(1) amortized Push and Pop.
//   - Priority:  O(log n) Push and Pop in the number of entries.
//
// Errors:
//
//   - ErrEmptyFrontier — Pop was called on an empty frontier.
package frontier
