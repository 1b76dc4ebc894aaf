package lattice

import "fmt"

// NewGrid builds a width×height lattice whose cells are unit host units wide.
// All cells start as unvisited walls. Neighbours at lattice distance 2 are
// precomputed; positions outside [0,width)×[0,height) are skipped.
// Returns an ErrConfig-wrapped error if width or height is below MinSize
// or unit < 1.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height, unit int) (*Grid, error) {
	if width < MinSize {
		return nil, configErrorf("NewGrid", "width %d < %d", width, MinSize)
	}
	if height < MinSize {
		return nil, configErrorf("NewGrid", "height %d < %d", height, MinSize)
	}
	if unit < 1 {
		return nil, configErrorf("NewGrid", "unit %d < 1", unit)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Unit:   unit,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		col, row := g.Coordinate(i)
		c := &g.cells[i]
		c.Col, c.Row = col, row
		c.neighbors = make([]int, 0, len(neighborOffsets))
		for _, d := range neighborOffsets {
			nc, nr := col+d[0], row+d[1]
			if g.InBounds(nc, nr) {
				c.neighbors = append(c.neighbors, g.Index(nc, nr))
			}
		}
	}

	return g, nil
}

// Len returns the number of lattice cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (col,row) lies within the lattice.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Index maps (col,row) to its row-major linear index.
// The caller must ensure InBounds(col,row).
func (g *Grid) Index(col, row int) int {
	return row*g.Width + col
}

// Coordinate is the inverse of Index.
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % g.Width, idx / g.Width
}

// Cell returns a copy of the cell at idx.
func (g *Grid) Cell(idx int) Cell {
	c := g.cells[idx]
	c.neighbors = g.Neighbors(idx)
	return c
}

// Neighbors returns the indices of the cells at lattice distance 2 from idx.
// The returned slice is a copy.
func (g *Grid) Neighbors(idx int) []int {
	src := g.cells[idx].neighbors
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// ForEachNeighbor calls fn for every neighbour of idx without allocating.
func (g *Grid) ForEachNeighbor(idx int, fn func(n int)) {
	for _, n := range g.cells[idx].neighbors {
		fn(n)
	}
}

// WallBetween returns the index of the wall cell lying midway between the
// neighbours a and b. It panics if a and b are not axis-aligned and exactly
// two lattice units apart: a wrong answer would silently corrupt the maze.
func (g *Grid) WallBetween(a, b int) int {
	ac, ar := g.Coordinate(a)
	bc, br := g.Coordinate(b)
	dc, dr := bc-ac, br-ar
	switch {
	case dr == 0 && (dc == 2 || dc == -2):
		return g.Index(ac+dc/2, ar)
	case dc == 0 && (dr == 2 || dr == -2):
		return g.Index(ac, ar+dr/2)
	}
	panic(fmt.Sprintf("lattice: WallBetween: (%d,%d) and (%d,%d) are not neighbours", ac, ar, bc, br))
}

// IsOpen reports whether the cell at idx has been carved.
func (g *Grid) IsOpen(idx int) bool { return g.cells[idx].Open }

// IsVisited reports whether the carver has reached the cell at idx.
func (g *Grid) IsVisited(idx int) bool { return g.cells[idx].Visited }

// Position returns the lattice (col,row) of idx.
func (g *Grid) Position(idx int) (col, row int) {
	c := &g.cells[idx]
	return c.Col, c.Row
}

// Bounds returns the drawable region of idx in host units.
func (g *Grid) Bounds(idx int) (x, y, w, h int) {
	col, row := g.Position(idx)
	return col * g.Unit, row * g.Unit, g.Unit, g.Unit
}

// Open marks idx as a carved passage. Flags never revert except via Clear.
func (g *Grid) Open(idx int) { g.cells[idx].Open = true }

// Visit marks idx as reached by the carver.
func (g *Grid) Visit(idx int) { g.cells[idx].Visited = true }

// Clear restores every cell to an unvisited wall, reusing storage.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Open = false
		g.cells[i].Visited = false
	}
}

// OpenCount returns how many cells are currently open.
func (g *Grid) OpenCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Open {
			n++
		}
	}
	return n
}
