package lattice

import (
	"errors"
	"fmt"
)

// MinSize is the smallest lattice side that still holds a non-border cell.
const MinSize = 3

// ErrConfig indicates grid (or start cell) parameters that cannot describe a maze.
// Construction errors wrap it; test with errors.Is.
var ErrConfig = errors.New("config error")

// configErrorf wraps ErrConfig with method context:
// "lattice: <method>: <message>: config error".
func configErrorf(method, format string, args ...any) error {
	return fmt.Errorf("lattice: %s: %s: %w", method, fmt.Sprintf(format, args...), ErrConfig)
}

// Direction offsets at lattice distance 2, in the order neighbours are stored.
var neighborOffsets = [4][2]int{
	{0, -2}, // N
	{0, 2},  // S
	{2, 0},  // E
	{-2, 0}, // W
}

// Cell is one lattice position.
type Cell struct {
	Col, Row int  // lattice coordinates
	Open     bool // false = wall, true = carved passage
	Visited  bool // reached by the carver

	neighbors []int // indices at distance 2, in bounds only
}

// Grid owns every Cell of a Width×Height lattice. Dimensions never change
// after NewGrid; cells are addressed row-major.
type Grid struct {
	Width, Height int
	// Unit is the side of one cell in host drawing units (pixels, columns...).
	Unit int

	cells []Cell
}
