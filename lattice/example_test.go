// File: lattice/example_test.go
package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/mazecarve/lattice"
)

////////////////////////////////////////////////////////////////////////////////
// Example: NewGrid / Neighbors / WallBetween
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_WallBetween shows how two rooms two lattice units apart share
// the wall cell at their midpoint.
//
//	(1,1) ─ (2,1) ─ (3,1)
//	 room    wall    room
func ExampleGrid_WallBetween() {
	g, _ := lattice.NewGrid(5, 5, 1)

	a, b := g.Index(1, 1), g.Index(3, 1)
	col, row := g.Coordinate(g.WallBetween(a, b))
	fmt.Printf("wall at (%d,%d)\n", col, row)

	fmt.Print("neighbours:")
	for _, n := range g.Neighbors(a) {
		c, r := g.Coordinate(n)
		fmt.Printf(" (%d,%d)", c, r)
	}
	fmt.Println()

	// Output:
	// wall at (2,1)
	// neighbours: (1,3) (3,1)
}
