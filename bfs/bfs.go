// Package bfs implements breadth-first search over a gridpath grid. It is
// the unweighted reference solver: on a Conn4 grid its distances are the
// exact minimum move counts, so it doubles as the oracle for validating
// heuristic engines.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")
	// ErrObstructedStart is returned when the start cell is an Obstacle.
	ErrObstructedStart = errors.New("bfs: start cell is an obstacle")
	// ErrUnreached is returned by PathTo for cells the traversal never reached.
	ErrUnreached = errors.New("bfs: cell not reached")
)

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Dist: map from cell to its distance (in moves) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []grid.Cell
	Dist   map[grid.Cell]int
	Parent map[grid.Cell]grid.Cell
}

// Reached reports whether BFS visited c.
func (r *Result) Reached(c grid.Cell) bool {
	_, ok := r.Dist[c]

	return ok
}

// PathTo reconstructs the path from the start cell to dest, inclusive.
// Returns ErrUnreached if dest was not reached.
// Complexity: O(path length).
func (r *Result) PathTo(dest grid.Cell) ([]grid.Cell, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrUnreached, dest.Row, dest.Col)
	}
	// Build the reversed path, then flip it.
	path := []grid.Cell{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// walker encapsulates mutable BFS state for a single traversal.
type walker struct {
	board *grid.Grid
	queue []grid.Cell
	res   *Result
}

// Search runs breadth-first search on g from the given start cell,
// visiting every reachable non-Obstacle cell in the grid's fixed neighbor
// order. Returns ErrNilGrid, grid.ErrOutOfBounds, or ErrObstructedStart
// for invalid input.
func Search(g *grid.Grid, start grid.Cell) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	st, err := g.StateAt(start)
	if err != nil {
		return nil, err
	}
	if st == grid.Obstacle {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrObstructedStart, start.Row, start.Col)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		board: g,
		queue: make([]grid.Cell, 0, n),
		res: &Result{
			Order:  make([]grid.Cell, 0, n),
			Dist:   make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}
	w.res.Dist[start] = 0
	w.queue = append(w.queue, start)
	w.loop()

	return w.res, nil
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, cur)

		// cur was enqueued from inside the grid, so it is in bounds.
		neighbors, _ := w.board.Neighbors(cur)
		for _, nb := range neighbors {
			if _, seen := w.res.Dist[nb]; seen {
				continue
			}
			w.res.Dist[nb] = w.res.Dist[cur] + 1
			w.res.Parent[nb] = cur
			w.queue = append(w.queue, nb)
		}
	}
}
