// Package carver generates perfect mazes with the randomized depth-first
// "recursive backtracker", one observable transition at a time.
//
// A Carver owns a frontier stack (the path from the start room to the
// current room) and a wall trail (the walls knocked down along that path)
// over a *lattice.Grid. Each call to Step either carves into a random
// unvisited neighbour or backtracks one room, and reports what changed as
// Events. Driving Step until IsDone yields a spanning tree over every room
// reachable from the start.
//
// Key features:
//   - Step() []Event: single synchronous transition; no-op once Done.
//   - Reset(): restore the lattice and restart from the same start room.
//   - Reseed(seed): Reset with a fresh deterministic random stream.
//   - Run(ctx): step to completion, honouring cancellation.
//   - WithOnEvent(fn): push-style delivery of the same events Step returns.
//
// Options:
//
//   - WithSeed(seed)        deterministic stream; 0 means the default seed.
//   - WithRand(r)           caller-owned *rand.Rand.
//   - WithStart(col, row)   start room; default (1,1).
//   - WithOnEvent(fn)       synchronous event hook.
//
// Errors:
//
//   - ErrGridNil            if New receives a nil grid.
//   - lattice.ErrConfig     if the start room is outside the grid.
//
// Complexity:
//
//   - Step:   O(1) (at most four neighbours are inspected).
//   - Reset:  O(W×H).
//   - Run:    O(W×H) steps; every room is pushed and popped once.
//
// Concurrency: a Carver and its Grid assume a single driver goroutine.
// Concurrent Step/Reset calls are a caller bug; no locking is provided.
package carver
