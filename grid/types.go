// Package grid defines core types, options, and sentinel errors for
// the terrain-grid search domain.
package grid

import "errors"

// Sentinel errors for grid problem construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell outside grid bounds")

	// ErrBlockedEndpoint indicates an impassable start or goal cell.
	ErrBlockedEndpoint = errors.New("grid: start and goal cells must be passable")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a single grid position. Cells are plain value states:
// two cells are the same state iff their coordinates are equal.
type Cell struct {
	X, Y int
}

// Option configures problem construction via functional arguments.
type Option func(*Options)

// Options contains tunable parameters for the grid domain.
type Options struct {
	// PassableThreshold is the minimum cell value considered
	// traversable; smaller values are obstacles.
	PassableThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with default settings:
// PassableThreshold=1 (values ≥ 1 are traversable), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		PassableThreshold: 1,
		Conn:              Conn4,
	}
}

// WithPassableThreshold sets the minimum traversable cell value.
func WithPassableThreshold(t int) Option {
	return func(o *Options) {
		o.PassableThreshold = t
	}
}

// WithConnectivity selects Conn4 or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}
