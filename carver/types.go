package carver

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrGridNil is returned when New receives a nil *lattice.Grid.
var ErrGridNil = errors.New("carver: grid is nil")

// State is the carver's coarse lifecycle state.
type State int

const (
	// Active: the frontier stack is non-empty and Step can make progress.
	Active State = iota
	// Done: the stack is empty; Step is a no-op until Reset.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EventKind names what a Step did to a cell.
type EventKind int

const (
	// WallCarved: the wall between current and next was opened.
	WallCarved EventKind = iota
	// CellCarved: next was opened, visited and pushed.
	CellCarved
	// CellFinalized: a dead-end room was popped off the frontier stack.
	CellFinalized
	// WallFinalized: the wall leading into the popped room left the trail.
	WallFinalized
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case WallCarved:
		return "WallCarved"
	case CellCarved:
		return "CellCarved"
	case CellFinalized:
		return "CellFinalized"
	case WallFinalized:
		return "WallFinalized"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event reports one cell touched by Step. Index is a lattice linear index.
type Event struct {
	Kind  EventKind
	Index int
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Option customizes a Carver before its first Reset.
// Option constructors panic on meaningless inputs; New itself returns errors.
type Option func(*carverConfig)

// carverConfig collects resolved options.
type carverConfig struct {
	rng      *rand.Rand
	startCol int
	startRow int
	onEvent  func(Event)
}

// defaultStart is the source program's first room: one in from the corner.
const defaultStart = 1

func newCarverConfig(opts ...Option) carverConfig {
	cfg := carverConfig{startCol: defaultStart, startRow: defaultStart}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed installs a deterministic stream. Seed 0 selects defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(c *carverConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand installs a caller-owned RNG. Panics on nil.
// The Carver consumes it from a single goroutine; do not share it.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("carver: WithRand(nil)")
	}
	return func(c *carverConfig) {
		c.rng = r
	}
}

// WithStart selects the start room by lattice coordinates.
// Panics on negative coordinates; an out-of-range start is reported by New.
func WithStart(col, row int) Option {
	if col < 0 || row < 0 {
		panic(fmt.Sprintf("carver: WithStart(%d,%d): negative coordinate", col, row))
	}
	return func(c *carverConfig) {
		c.startCol, c.startRow = col, row
	}
}

// WithOnEvent installs fn as a synchronous hook invoked for every event, in
// emission order, after Step has finished mutating state. Panics on nil.
func WithOnEvent(fn func(Event)) Option {
	if fn == nil {
		panic("carver: WithOnEvent(nil)")
	}
	return func(c *carverConfig) {
		c.onEvent = fn
	}
}
