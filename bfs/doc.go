// Package bfs provides breadth-first shortest-path search over a gridpath
// grid, returning move counts, parent links, and visit order.
//
// What:
//
//   - Search explores cells in increasing move distance from a start cell.
//   - Result records the visit order, per-cell distance, and parent links;
//     PathTo reconstructs the path to any reached cell.
//
// Why:
//
//   - Exhaustive baseline: on a unit-cost Conn4 grid, BFS distance is the
//     exact optimum, which makes it the reference oracle for verifying the
//     A* engine's optimality and completeness.
//   - Reachability queries that need no heuristic machinery.
//
// Complexity:
//
//   - Time:  O(W×H×d), d = neighbor count (4 or 8).
//   - Space: O(W×H).
//
// Errors:
//
//   - ErrNilGrid: a nil grid was supplied.
//   - ErrObstructedStart: the start cell is an Obstacle.
//   - grid.ErrOutOfBounds: the start cell lies outside the grid.
//   - ErrUnreached: PathTo was asked for a cell BFS never reached.
package bfs
