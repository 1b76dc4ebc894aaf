// Package render turns carver events (or polled lattice flags) into
// terminal frames.
//
// A Canvas keeps one Shade per lattice cell:
//
//	Wall      — not carved                (black)
//	Carved    — carved, still on the path (white)
//	Finalized — backtracked past          (blue)
//
// Apply consumes carver.Events; Sync rebuilds shades from the grid flags
// alone (Finalized is only observable through events). The start cell is
// opened by carver.New and carver.Reset without an event, so hosts Sync
// (or Reset the Canvas) right after either call. Cells changed since
// the last frame are tracked in a dirty set so WriteDirty can repaint just
// those cells with cursor addressing. One lattice cell is Grid.Unit terminal
// columns wide and one row tall.
package render
