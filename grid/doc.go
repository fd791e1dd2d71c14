// Package grid models a fixed-size rectangular board of cells for
// shortest-path search, with obstacle editing and distinguished start
// and target roles.
//
// What:
//
//   - Grid wraps a rows×cols matrix of CellState values.
//   - Exactly one cell holds Start and exactly one holds Target at all times.
//   - Neighbors enumerates in-bounds, non-Obstacle adjacent cells in a fixed,
//     deterministic order, so search step sequences are reproducible.
//   - Reset restores the pristine layout without changing dimensions.
//
// Why:
//
//   - Interactive pathfinding: toggle obstacles, relocate start/target
//     between searches, then hand the board to an engine (see gridpath/astar).
//   - Deterministic adjacency makes visited-order assertions possible in tests.
//
// Complexity:
//
//   - New / Reset / Clone: O(rows×cols) time and memory.
//   - SetCellState / StateAt / InBounds / Neighbors: O(1).
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): orthogonal-only (default) or
//     orthogonal-plus-diagonal adjacency.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive, or fewer than two cells.
//   - ErrOutOfBounds: cell coordinates exceed grid extents.
//   - ErrInvalidState: role-placement conflict (Start onto Target or vice
//     versa, or vacating a role without a replacement).
//   - ErrNonRectangular: layout rows of differing lengths (FromRunes).
//   - ErrBadLayout: malformed rune layout (unknown rune, missing or duplicate
//     role cell).
package grid
