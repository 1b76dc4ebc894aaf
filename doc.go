// Package mazecarve is an in-memory perfect-maze generator built around the
// randomized depth-first "recursive backtracker", exposed one step at a time
// so hosts can animate every carve and every backtrack.
//
// What is in the box?
//
//	• lattice/ — fixed-size cell arena, index bijection, distance-2 neighbours, walls
//	• carver/  — frontier stack + wall trail state machine, events, seeding
//	• render/  — event-driven shading and ANSI terminal frames
//	• config/  — MAZE_* environment / .env settings for the host
//	• cmd/mazecarve — terminal host: pacing, Space to reset, Esc to quit
//
// Quick ASCII example (5×5 lattice, rooms on even coordinates):
//
//	R─R R
//	│   │
//	R R─R
//	│   │
//	R─R─R
//
// represents 9 rooms joined by 8 knocked-down walls: a spanning tree.
//
//	go run github.com/katalvlaran/mazecarve/cmd/mazecarve
package mazecarve
