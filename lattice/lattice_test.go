package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazecarve/lattice"
)

//----------------------------------------------------------------------------//
// NewGrid Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects lattices without an interior cell.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		unit          int
	}{
		{"NarrowWidth", 2, 5, 1},
		{"ShortHeight", 5, 2, 1},
		{"Empty", 0, 0, 1},
		{"Negative", -3, 4, 1},
		{"ZeroUnit", 5, 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := lattice.NewGrid(tc.width, tc.height, tc.unit)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, lattice.ErrConfig)
			assert.Contains(t, err.Error(), "lattice: NewGrid")
		})
	}
}

// TestNewGrid_InitialState checks that every cell starts as an unvisited wall.
func TestNewGrid_InitialState(t *testing.T) {
	g, err := lattice.NewGrid(4, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 0, g.OpenCount())
	for i := 0; i < g.Len(); i++ {
		assert.False(t, g.IsOpen(i))
		assert.False(t, g.IsVisited(i))
	}
}

// TestIndexBijection checks Index and Coordinate are inverses over a 7×4 lattice.
func TestIndexBijection(t *testing.T) {
	g, err := lattice.NewGrid(7, 4, 1)
	require.NoError(t, err)

	seen := make(map[int]bool, g.Len())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			idx := g.Index(col, row)
			require.False(t, seen[idx], "index %d reused", idx)
			seen[idx] = true
			c, r := g.Coordinate(idx)
			assert.Equal(t, [2]int{col, row}, [2]int{c, r})
			pc, pr := g.Position(idx)
			assert.Equal(t, [2]int{col, row}, [2]int{pc, pr})
		}
	}
	assert.Len(t, seen, g.Len())
}

// TestInBounds checks InBounds on a 3×5 lattice.
func TestInBounds(t *testing.T) {
	g, err := lattice.NewGrid(3, 5, 1)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 4}, {1, 3}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 5}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%v)", xy)
	}
}

//----------------------------------------------------------------------------//
// Neighbour Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Corners verifies edge skipping and N,S,E,W ordering on 5×5.
func TestNeighbors_Corners(t *testing.T) {
	g, err := lattice.NewGrid(5, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{g.Index(0, 2), g.Index(2, 0)}, g.Neighbors(g.Index(0, 0)))
	assert.Equal(t, []int{g.Index(2, 0), g.Index(2, 4), g.Index(4, 2), g.Index(0, 2)},
		g.Neighbors(g.Index(2, 2)))
	assert.Equal(t, []int{g.Index(1, 1), g.Index(3, 3)}, g.Neighbors(g.Index(1, 3))[:2])
	// (1,1) in a 3×3 lattice has no cell two units away.
	g3, err := lattice.NewGrid(3, 3, 1)
	require.NoError(t, err)
	assert.Empty(t, g3.Neighbors(g3.Index(1, 1)))
}

// TestNeighbors_Symmetric checks that neighbour links are symmetric and two units apart.
func TestNeighbors_Symmetric(t *testing.T) {
	g, err := lattice.NewGrid(9, 6, 1)
	require.NoError(t, err)

	for a := 0; a < g.Len(); a++ {
		for _, b := range g.Neighbors(a) {
			assert.Contains(t, g.Neighbors(b), a, "%d lists %d but not vice versa", a, b)
			ac, ar := g.Coordinate(a)
			bc, br := g.Coordinate(b)
			dist := abs(ac-bc) + abs(ar-br)
			assert.Equal(t, 2, dist)
		}
	}
}

// TestNeighbors_ReturnsCopy ensures callers cannot corrupt the arena.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := lattice.NewGrid(5, 5, 1)
	require.NoError(t, err)

	ns := g.Neighbors(0)
	ns[0] = 99
	assert.NotEqual(t, 99, g.Neighbors(0)[0])
}

//----------------------------------------------------------------------------//
// WallBetween Tests
//----------------------------------------------------------------------------//

// TestWallBetween returns the arithmetic midpoint in both directions.
func TestWallBetween(t *testing.T) {
	g, err := lattice.NewGrid(5, 5, 1)
	require.NoError(t, err)

	cases := []struct {
		a, b [2]int
		want [2]int
	}{
		{[2]int{1, 1}, [2]int{3, 1}, [2]int{2, 1}},
		{[2]int{3, 1}, [2]int{1, 1}, [2]int{2, 1}},
		{[2]int{0, 0}, [2]int{0, 2}, [2]int{0, 1}},
		{[2]int{4, 4}, [2]int{4, 2}, [2]int{4, 3}},
	}
	for _, tc := range cases {
		a := g.Index(tc.a[0], tc.a[1])
		b := g.Index(tc.b[0], tc.b[1])
		assert.Equal(t, g.Index(tc.want[0], tc.want[1]), g.WallBetween(a, b), "%v-%v", tc.a, tc.b)
	}
}

// TestWallBetween_PanicsOnNonNeighbours verifies invariant violations are loud.
func TestWallBetween_PanicsOnNonNeighbours(t *testing.T) {
	g, err := lattice.NewGrid(5, 5, 1)
	require.NoError(t, err)

	assert.Panics(t, func() { g.WallBetween(g.Index(0, 0), g.Index(2, 2)) }, "diagonal")
	assert.Panics(t, func() { g.WallBetween(g.Index(0, 0), g.Index(1, 0)) }, "adjacent")
	assert.Panics(t, func() { g.WallBetween(g.Index(0, 0), g.Index(4, 0)) }, "too far")
	assert.Panics(t, func() { g.WallBetween(3, 3) }, "same cell")
}

//----------------------------------------------------------------------------//
// Flags, Bounds and Reachable Tests
//----------------------------------------------------------------------------//

// TestFlagsAndClear checks Open/Visit mutate single cells and Clear resets all.
func TestFlagsAndClear(t *testing.T) {
	g, err := lattice.NewGrid(3, 3, 1)
	require.NoError(t, err)

	g.Open(4)
	g.Visit(4)
	g.Visit(0)
	assert.True(t, g.IsOpen(4))
	assert.True(t, g.IsVisited(0))
	assert.False(t, g.IsOpen(0))
	assert.Equal(t, 1, g.OpenCount())

	c := g.Cell(4)
	assert.True(t, c.Open)
	assert.Equal(t, 1, c.Col)
	assert.Equal(t, 1, c.Row)

	g.Clear()
	assert.Equal(t, 0, g.OpenCount())
	assert.False(t, g.IsVisited(0))
	assert.False(t, g.IsVisited(4))
}

// TestBounds scales lattice positions by Unit.
func TestBounds(t *testing.T) {
	g, err := lattice.NewGrid(4, 4, 30)
	require.NoError(t, err)

	x, y, w, h := g.Bounds(g.Index(3, 2))
	assert.Equal(t, []int{90, 60, 30, 30}, []int{x, y, w, h})
}

// TestReachable walks only open cells at distance 1.
//
// Lattice (O = open):
//
//	O O O
//	. . O
//	O . O
func TestReachable(t *testing.T) {
	g, err := lattice.NewGrid(3, 3, 1)
	require.NoError(t, err)
	for _, xy := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {0, 2}} {
		g.Open(g.Index(xy[0], xy[1]))
	}

	got := g.Reachable(g.Index(0, 0))
	assert.Len(t, got, 5)
	assert.NotContains(t, got, g.Index(0, 2))
	assert.Equal(t, g.Index(0, 0), got[0])

	assert.Nil(t, g.Reachable(g.Index(1, 1)), "closed start")
	assert.Nil(t, g.Reachable(-1), "out of range")
}

// TestSameParity classifies rooms relative to a reference cell.
func TestSameParity(t *testing.T) {
	g, err := lattice.NewGrid(5, 5, 1)
	require.NoError(t, err)

	ref := g.Index(1, 1)
	assert.True(t, g.SameParity(g.Index(3, 3), ref))
	assert.True(t, g.SameParity(g.Index(1, 3), ref))
	assert.False(t, g.SameParity(g.Index(2, 1), ref))
	assert.False(t, g.SameParity(g.Index(0, 0), ref))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
