// Package grid treats a 2D grid of integer terrain costs as a search
// domain. It implements core.Problem over Cell states so that every
// lvlsearch algorithm — BFS, DFS, UCS, Greedy, A* — can route across
// the same grid, and provides the matching admissible heuristics.
//
// Cells with value < PassableThreshold are impassable obstacles; cells
// with value ≥ PassableThreshold are traversable, and entering a cell
// costs that cell's value. With all values equal to 1 the grid is
// unit-cost and BFS is optimal; with varied terrain use UCS or A*.
//
// Connectivity is four-directional (Conn4: N, E, S, W) or
// eight-directional (Conn8: adds the diagonals); actions are the
// compass direction labels of each step.
//
// Heuristics:
//
//   - Manhattan(goal) — |dx| + |dy|; admissible and consistent on Conn4
//     grids whose minimum passable cell value is ≥ 1.
//   - Chebyshev(goal) — max(|dx|, |dy|); the Conn8 counterpart, same
//     condition.
//
// Errors:
//
//   - ErrEmptyGrid       — the grid has no rows or no columns.
//   - ErrNonRectangular  — rows of differing lengths.
//   - ErrOutOfBounds     — start or goal lies outside the grid.
//   - ErrBlockedEndpoint — start or goal is an impassable cell.
package grid
