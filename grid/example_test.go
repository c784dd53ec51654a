// Package grid_test provides runnable examples for the terrain-grid
// domain.
package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsearch/engine"
	"github.com/katalvlaran/lvlsearch/grid"
)

// ExampleNewProblem routes around a wall with A* and the Manhattan
// heuristic.
//
// Scenario:
//
//	1 1 1      start = (0,0), top-left
//	0 0 1      0-cells are impassable
//	1 1 1      goal  = (0,2), bottom-left
//
// The only route hugs the right edge: E E S S W W, six unit cells.
func ExampleNewProblem() {
	goal := grid.Cell{X: 0, Y: 2}
	problem, err := grid.NewProblem(
		[][]int{
			{1, 1, 1},
			{0, 0, 1},
			{1, 1, 1},
		},
		grid.Cell{X: 0, Y: 0},
		goal,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := engine.AStar[grid.Cell, string](problem, grid.Manhattan(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("route:", strings.Join(res.Actions, " "))
	fmt.Printf("cost: %.1f\n", res.TotalCost)
	// Output:
	// route: E E S S W W
	// cost: 6.0
}

// ExampleWithConnectivity shows eight-directional movement: with
// diagonals enabled the corner-to-corner route of a 3×3 clearing takes
// two steps instead of four.
func ExampleWithConnectivity() {
	goal := grid.Cell{X: 2, Y: 2}
	problem, err := grid.NewProblem(
		[][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		},
		grid.Cell{X: 0, Y: 0},
		goal,
		grid.WithConnectivity(grid.Conn8),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := engine.AStar[grid.Cell, string](problem, grid.Chebyshev(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("route:", strings.Join(res.Actions, " "))
	// Output:
	// route: SE SE
}
