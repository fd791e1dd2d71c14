// Cost model for grid moves. Under Conn4 every move costs one unit and the
// heuristic is Manhattan distance. Under Conn8 orthogonal moves cost 10 and
// diagonal moves 14 (≈ 10·√2), with the matching octile heuristic, so the
// heuristic stays admissible and consistent in both modes.
package astar

import "github.com/katalvlaran/gridpath/grid"

// Move costs. UnitCost applies under Conn4; OrthCost and DiagCost apply
// under Conn8.
const (
	UnitCost = 1
	OrthCost = 10
	DiagCost = 14
)

// Heuristic estimates the remaining cost between two cells under the given
// connectivity. It never overestimates the true cost, is never negative,
// and is zero iff a == b.
//
//   - Conn4: Manhattan distance |Δrow| + |Δcol|.
//   - Conn8: octile distance min(Δ)·DiagCost + (max(Δ)−min(Δ))·OrthCost.
//
// Complexity: O(1).
func Heuristic(a, b grid.Cell, conn grid.Connectivity) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if conn == grid.Conn8 {
		diag := min(dr, dc)

		return diag*DiagCost + (max(dr, dc)-diag)*OrthCost
	}

	return dr + dc
}

// EdgeCost returns the cost of one move between adjacent cells a and b:
// UnitCost under Conn4; OrthCost or DiagCost under Conn8 depending on
// whether the move is orthogonal or diagonal.
// Complexity: O(1).
func EdgeCost(a, b grid.Cell, conn grid.Connectivity) int {
	if conn != grid.Conn8 {
		return UnitCost
	}
	if a.Row == b.Row || a.Col == b.Col {
		return OrthCost
	}

	return DiagCost
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
