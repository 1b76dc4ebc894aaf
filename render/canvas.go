package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazecarve/carver"
	"github.com/katalvlaran/mazecarve/lattice"
)

// Shade is the display state of one cell.
type Shade int

const (
	Wall Shade = iota
	Carved
	Finalized
)

// ANSI background colours per shade, matching the classic palette.
var palette = [...]string{
	Wall:      "\033[40m", // black
	Carved:    "\033[47m", // white
	Finalized: "\033[44m", // blue
}

// glyphs are used by String for colourless output.
var glyphs = [...]byte{
	Wall:      '#',
	Carved:    ' ',
	Finalized: '.',
}

const (
	ansiReset = "\033[0m"
	ansiClear = "\033[2J"
	ansiHome  = "\033[H"
)

// Canvas mirrors a lattice.Grid as shades. Not safe for concurrent use.
type Canvas struct {
	grid   *lattice.Grid
	shades []Shade
	dirty  mapset.Set[int]
}

// NewCanvas returns a Canvas synced to g's current flags.
func NewCanvas(g *lattice.Grid) *Canvas {
	c := &Canvas{
		grid:   g,
		shades: make([]Shade, g.Len()),
		dirty:  mapset.New[int](),
	}
	c.Sync()
	return c
}

// Apply updates the shade touched by e. Its signature fits carver.WithOnEvent.
func (c *Canvas) Apply(e carver.Event) {
	switch e.Kind {
	case carver.WallCarved, carver.CellCarved:
		c.set(e.Index, Carved)
	case carver.CellFinalized, carver.WallFinalized:
		c.set(e.Index, Finalized)
	}
}

// Sync derives shades from grid flags: open cells become Carved unless
// already Finalized, closed cells become Wall.
func (c *Canvas) Sync() {
	for i := range c.shades {
		switch {
		case !c.grid.IsOpen(i):
			c.set(i, Wall)
		case c.shades[i] == Wall:
			c.set(i, Carved)
		}
	}
}

// Reset paints every cell as Wall and then re-syncs from the grid, for use
// right after carver.Reset.
func (c *Canvas) Reset() {
	for i := range c.shades {
		c.set(i, Wall)
	}
	c.Sync()
}

func (c *Canvas) set(idx int, s Shade) {
	if c.shades[idx] == s {
		return
	}
	c.shades[idx] = s
	c.dirty.Put(idx)
}

// Shade returns the shade of idx.
func (c *Canvas) Shade(idx int) Shade { return c.shades[idx] }

// Dirty returns the number of cells changed since the last write.
func (c *Canvas) Dirty() int { return c.dirty.Size() }

// WriteFrame clears the screen and paints every cell, then clears the dirty set.
// Rows end in "\r\n" so output stays aligned in raw terminal mode.
func (c *Canvas) WriteFrame(w io.Writer) error {
	var b strings.Builder
	b.WriteString(ansiClear)
	b.WriteString(ansiHome)
	cell := strings.Repeat(" ", c.grid.Unit)
	for row := 0; row < c.grid.Height; row++ {
		last := Shade(-1)
		for col := 0; col < c.grid.Width; col++ {
			s := c.shades[c.grid.Index(col, row)]
			if s != last {
				b.WriteString(palette[s])
				last = s
			}
			b.WriteString(cell)
		}
		b.WriteString(ansiReset)
		b.WriteString("\r\n")
	}
	c.dirty = mapset.New[int]()

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDirty repaints only the cells changed since the last write, in index
// order, then clears the dirty set.
func (c *Canvas) WriteDirty(w io.Writer) error {
	if c.dirty.Size() == 0 {
		return nil
	}
	idxs := make([]int, 0, c.dirty.Size())
	c.dirty.Each(func(idx int) {
		idxs = append(idxs, idx)
	})
	sort.Ints(idxs)

	var b strings.Builder
	cell := strings.Repeat(" ", c.grid.Unit)
	for _, idx := range idxs {
		col, row := c.grid.Position(idx)
		fmt.Fprintf(&b, "\033[%d;%dH%s%s", row+1, col*c.grid.Unit+1, palette[c.shades[idx]], cell)
	}
	b.WriteString(ansiReset)
	c.dirty = mapset.New[int]()

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteStatus prints line on the row just below the lattice, erasing
// whatever was there.
func (c *Canvas) WriteStatus(w io.Writer, line string) error {
	_, err := fmt.Fprintf(w, "\033[%d;1H\033[2K%s", c.grid.Height+1, line)
	return err
}

// String renders the canvas as plain text, one glyph per cell.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.grid.Width + 1) * c.grid.Height)
	for row := 0; row < c.grid.Height; row++ {
		for col := 0; col < c.grid.Width; col++ {
			b.WriteByte(glyphs[c.shades[c.grid.Index(col, row)]])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
