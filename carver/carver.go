package carver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazecarve/lattice"
)

// Carver is the recursive-backtracker state machine over a lattice.Grid.
//
// Invariants while Active:
//   - every index on stack is visited and appears once;
//   - len(trail) == len(stack)-1, trail[i] is the wall between stack[i] and stack[i+1];
//   - current == stack[len(stack)-1].
//
// The stack is empty exactly when the Carver is Done.
type Carver struct {
	grid    *lattice.Grid
	rng     *rand.Rand
	onEvent func(Event)

	start   int
	current int
	stack   []int
	trail   []int

	candidates []int // scratch buffer reused by Step
}

// New binds a Carver to g and performs the initial Reset.
// Returns ErrGridNil for a nil grid, or an error wrapping lattice.ErrConfig
// if the configured start room lies outside g.
func New(g *lattice.Grid, opts ...Option) (*Carver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := newCarverConfig(opts...)
	if !g.InBounds(cfg.startCol, cfg.startRow) {
		return nil, fmt.Errorf("carver: New: start (%d,%d) outside %dx%d lattice: %w",
			cfg.startCol, cfg.startRow, g.Width, g.Height, lattice.ErrConfig)
	}

	c := &Carver{
		grid:       g,
		rng:        cfg.rng,
		onEvent:    cfg.onEvent,
		start:      g.Index(cfg.startCol, cfg.startRow),
		current:    -1,
		candidates: make([]int, 0, 4),
	}
	c.Reset()

	return c, nil
}

// Start marks idx visited and open, empties the stack and trail (reusing
// their storage) and pushes idx as the only frontier room.
// Start does not clear other cells; Reset does.
func (c *Carver) Start(idx int) {
	c.grid.Visit(idx)
	c.grid.Open(idx)
	c.stack = append(c.stack[:0], idx)
	c.trail = c.trail[:0]
	c.current = idx
}

// Reset restores every cell to an unvisited wall and restarts from the
// configured start room. Safe at any point, including mid-carve.
// The random stream is not rewound; use Reseed for a reproducible rerun.
func (c *Carver) Reset() {
	c.grid.Clear()
	c.Start(c.start)
}

// Reseed installs a fresh stream seeded with seed (0 ⇒ default seed) and
// resets. Two Reseed(s) runs carve identical mazes.
func (c *Carver) Reseed(seed int64) {
	c.rng = rngFromSeed(seed)
	c.Reset()
}

// Step performs one transition and returns the events it produced, in order:
//
//   - carve:     WallCarved(wall), CellCarved(next)
//   - backtrack: CellFinalized(popped), then WallFinalized(wall) if the trail was non-empty
//   - last pop:  nothing; the Carver becomes Done
//   - Done:      nothing, no state change
//
// Events are also delivered to the WithOnEvent hook, if any.
func (c *Carver) Step() []Event {
	if len(c.stack) == 0 {
		return nil
	}

	c.candidates = c.candidates[:0]
	c.grid.ForEachNeighbor(c.current, func(n int) {
		if !c.grid.IsVisited(n) {
			c.candidates = append(c.candidates, n)
		}
	})

	var events []Event
	if len(c.candidates) > 0 {
		events = c.carve(pickUniform(c.rng, c.candidates))
	} else {
		events = c.backtrack()
	}

	if c.onEvent != nil {
		for _, e := range events {
			c.onEvent(e)
		}
	}
	return events
}

// carve knocks down the wall between current and next and advances into next.
func (c *Carver) carve(next int) []Event {
	wall := c.grid.WallBetween(c.current, next)
	c.grid.Open(wall)
	c.grid.Open(next)
	c.grid.Visit(next)

	c.stack = append(c.stack, next)
	c.trail = append(c.trail, wall)
	c.current = next

	return []Event{
		{Kind: WallCarved, Index: wall},
		{Kind: CellCarved, Index: next},
	}
}

// backtrack pops the dead-end room at the top of the stack.
func (c *Carver) backtrack() []Event {
	top := len(c.stack) - 1
	popped := c.stack[top]
	c.stack = c.stack[:top]

	if len(c.stack) == 0 {
		c.current = -1
		return nil
	}
	c.current = c.stack[len(c.stack)-1]

	events := make([]Event, 0, 2)
	events = append(events, Event{Kind: CellFinalized, Index: popped})
	if n := len(c.trail); n > 0 {
		wall := c.trail[n-1]
		c.trail = c.trail[:n-1]
		events = append(events, Event{Kind: WallFinalized, Index: wall})
	}
	return events
}

// Run calls Step until the Carver is Done or ctx is cancelled, and returns
// the number of Step calls made. Cancellation is checked before every step.
func (c *Carver) Run(ctx context.Context) (int, error) {
	steps := 0
	for !c.IsDone() {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}
		c.Step()
		steps++
	}
	return steps, nil
}

// IsDone reports whether the frontier stack is empty.
func (c *Carver) IsDone() bool { return len(c.stack) == 0 }

// State reports Active or Done.
func (c *Carver) State() State {
	if c.IsDone() {
		return Done
	}
	return Active
}

// Current returns the current room and true while Active; (-1, false) once Done.
func (c *Carver) Current() (int, bool) {
	if c.IsDone() {
		return -1, false
	}
	return c.current, true
}

// StartIndex returns the configured start room.
func (c *Carver) StartIndex() int { return c.start }

// Grid returns the lattice being carved.
func (c *Carver) Grid() *lattice.Grid { return c.grid }

// StackLen returns the frontier stack depth.
func (c *Carver) StackLen() int { return len(c.stack) }

// TrailLen returns the number of walls on the current path.
func (c *Carver) TrailLen() int { return len(c.trail) }

// Stack returns a copy of the frontier stack, bottom first.
func (c *Carver) Stack() []int {
	out := make([]int, len(c.stack))
	copy(out, c.stack)
	return out
}

// Trail returns a copy of the wall trail, oldest first.
func (c *Carver) Trail() []int {
	out := make([]int, len(c.trail))
	copy(out, c.trail)
	return out
}
