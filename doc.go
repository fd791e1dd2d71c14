// Package gridpath is your in-memory toolkit for interactive grid
// pathfinding — an editable board of obstacles plus a step-wise A* engine
// built for visualization.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• grid:  a rectangular board with obstacle editing, one Start and
//		         one Target cell, and deterministic neighbor ordering
//		• astar: A* shortest-path search exposed as a restartable,
//		         observable sequence of discrete steps
//		• bfs:   an exhaustive breadth-first baseline for reachability
//		         checks and optimality verification
//
// ✨ Why choose gridpath?
//
//   - Pull-based stepping – the consumer owns all pacing; drain the step
//     sequence for instant answers, or render every event for animation
//   - Reproducible – fixed neighbor order and insertion-order tie-breaking
//     make every run byte-for-byte deterministic
//   - Explicit runs – no global search state; independent runs coexist
//   - Pure Go – no cgo, no rendering or event-loop dependencies
//
// Quick ASCII example:
//
//	S . # .        S * # .
//	. . # .   →    . * # .
//	. . . T        . * * T
//
//	an editable board, and the shortest path the engine finds on it.
//
// Dive into the package docs of grid and astar for the full contract, or
// run cmd/gridpath for a terminal animation of the search.
package gridpath
