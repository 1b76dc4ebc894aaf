// Package lattice models the rectangular cell lattice a maze is carved into.
//
// What:
//
//   - Grid is a fixed-capacity arena of Width×Height lattice cells.
//   - Every lattice position is a Cell; maze rooms sit on one parity class
//     (same parity as the start cell) and the positions between two rooms
//     are the walls that may be knocked down.
//   - Each cell stores up to four neighbours at lattice distance 2
//     (N, S, E, W), as linear indices into the arena.
//   - Open/Visited flags are the only mutable state.
//
// Why:
//
//   - Integer neighbour links keep the arena relocatable and free of
//     dangling references.
//   - A flat row-major store makes index↔(col,row) a cheap bijection.
//
// Complexity:
//
//   - NewGrid:     O(W×H) time and memory.
//   - WallBetween: O(1).
//   - Reachable:   O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrConfig: dimensions below 3×3 or a non-positive unit size.
//
// Grid is not safe for concurrent use; a single driver owns it.
package lattice
