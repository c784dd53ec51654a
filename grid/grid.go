// Package grid implements core.Problem over rectangular terrain grids.
package grid

import "github.com/katalvlaran/lvlsearch/core"

// offset pairs a coordinate delta with its compass action label.
type offset struct {
	dx, dy int
	label  string
}

// Neighbor offsets in clockwise order starting north; the Conn4 set is
// the orthogonal subset in the same order.
var (
	conn4Offsets = []offset{
		{0, -1, "N"}, {1, 0, "E"}, {0, 1, "S"}, {-1, 0, "W"},
	}
	conn8Offsets = []offset{
		{0, -1, "N"}, {1, -1, "NE"}, {1, 0, "E"}, {1, 1, "SE"},
		{0, 1, "S"}, {-1, 1, "SW"}, {-1, 0, "W"}, {-1, -1, "NW"},
	}
)

// Problem is an immutable terrain grid posed as a search problem from a
// start cell to a goal cell. It implements core.Problem[Cell, string].
type Problem struct {
	width, height int
	values        [][]int
	start, goal   Cell
	threshold     int
	offsets       []offset
}

// NewProblem constructs a grid problem from a non-empty, rectangular 2D
// slice of terrain costs. The input is deep-copied to ensure
// immutability. Returns ErrEmptyGrid, ErrNonRectangular,
// ErrOutOfBounds, or ErrBlockedEndpoint for invalid input.
// Complexity: O(W×H) time and memory.
func NewProblem(values [][]int, start, goal Cell, opts ...Option) (*Problem, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Deep copy to prevent external mutation.
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	p := &Problem{
		width:     w,
		height:    h,
		values:    cells,
		start:     start,
		goal:      goal,
		threshold: o.PassableThreshold,
		offsets:   conn4Offsets,
	}
	if o.Conn == Conn8 {
		p.offsets = conn8Offsets
	}

	for _, c := range []Cell{start, goal} {
		if !p.InBounds(c) {
			return nil, ErrOutOfBounds
		}
		if !p.passable(c) {
			return nil, ErrBlockedEndpoint
		}
	}

	return p, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (p *Problem) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < p.width && c.Y >= 0 && c.Y < p.height
}

// passable reports whether c may be entered.
func (p *Problem) passable(c Cell) bool {
	return p.values[c.Y][c.X] >= p.threshold
}

// InitialState returns the start cell.
func (p *Problem) InitialState() Cell { return p.start }

// IsGoal reports whether c is the goal cell.
func (p *Problem) IsGoal(c Cell) bool { return c == p.goal }

// Successors yields the in-bounds, passable neighbors of c according
// to the configured connectivity. Entering a neighbor costs that
// neighbor's terrain value; actions are compass direction labels.
func (p *Problem) Successors(c Cell) []core.Successor[Cell, string] {
	out := make([]core.Successor[Cell, string], 0, len(p.offsets))
	for _, o := range p.offsets {
		next := Cell{X: c.X + o.dx, Y: c.Y + o.dy}
		if !p.InBounds(next) || !p.passable(next) {
			continue
		}
		out = append(out, core.Successor[Cell, string]{
			State:  next,
			Action: o.label,
			Cost:   float64(p.values[next.Y][next.X]),
		})
	}

	return out
}
