// Package astar implements the step-wise A* engine. A Run owns all per-run
// state: the frontier (min-heap on fCost with insertion-order tie-break),
// the closed set, the gCost map, and the predecessor map. Nothing is shared
// between runs and no package-level state exists; independent runs may
// coexist freely.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run is a single in-progress (or finished) A* search. Create one with
// Start; advance it with Next. A Run snapshots the grid at creation, so
// edits to the original board never affect the run.
type Run struct {
	board  *grid.Grid // private snapshot, never exposed
	start  grid.Cell
	target grid.Cell
	conn   grid.Connectivity
	opts   Options

	state      EngineState
	open       nodeHeap
	openByCell map[grid.Cell]*node
	closed     map[grid.Cell]bool
	gCost      map[grid.Cell]int
	cameFrom   map[grid.Cell]grid.Cell

	seq       int // monotonic insertion counter for tie-breaking
	step      int // steps taken so far
	expanded  int // cells popped from the frontier
	delivered bool
}

// Start begins a new search run against the given grid and endpoints.
//
// Validation, in order:
//  1. g must be non-nil (ErrNilGrid).
//  2. start and target must lie within the grid (grid.ErrOutOfBounds).
//  3. Neither endpoint may be an Obstacle (ErrInvalidConfiguration).
//
// The returned Run holds the initial frontier containing only the start
// cell (gCost=0, fCost=Heuristic(start,target)) and is in StateReady until
// the first Next call.
func Start(g *grid.Grid, start, target grid.Cell, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	stStart, err := g.StateAt(start)
	if err != nil {
		return nil, fmt.Errorf("start cell: %w", err)
	}
	stTarget, err := g.StateAt(target)
	if err != nil {
		return nil, fmt.Errorf("target cell: %w", err)
	}
	if stStart == grid.Obstacle {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrInvalidConfiguration, start.Row, start.Col)
	}
	if stTarget == grid.Obstacle {
		return nil, fmt.Errorf("%w: target (%d,%d)", ErrInvalidConfiguration, target.Row, target.Col)
	}

	r := &Run{
		board:      g.Clone(),
		start:      start,
		target:     target,
		conn:       g.Connectivity(),
		opts:       cfg,
		state:      StateReady,
		open:       make(nodeHeap, 0, g.Rows()*g.Cols()/4),
		openByCell: make(map[grid.Cell]*node),
		closed:     make(map[grid.Cell]bool),
		gCost:      map[grid.Cell]int{start: 0},
		cameFrom:   make(map[grid.Cell]grid.Cell),
	}
	heap.Init(&r.open)
	r.seq++
	first := &node{cell: start, g: 0, f: Heuristic(start, target, r.conn), seq: r.seq}
	heap.Push(&r.open, first)
	r.openByCell[start] = first

	return r, nil
}

// State reports the current engine state.
func (r *Run) State() EngineState { return r.state }

// Expanded reports how many cells have been popped from the frontier.
func (r *Run) Expanded() int { return r.expanded }

// Cost returns the best known cost from start to the target cell.
// Meaningful only once the run has succeeded.
func (r *Run) Cost() int { return r.gCost[r.target] }

// Next advances the search by exactly one frontier-pop-and-expand cycle.
//
// It returns the StepEvent describing the step and true, or a zero event
// and false once the terminal event has already been delivered. The
// sequence is lazy, finite, and strictly ordered; two runs against an
// identical board yield identical sequences.
//
// One step:
//  1. Empty frontier → StateFailed; the event pops nothing.
//  2. Pop the minimum-fCost cell, ties broken by insertion order.
//  3. Popped cell equals target → StateSucceeded.
//  4. Otherwise close the cell and relax each non-closed neighbor in the
//     grid's fixed order, recording improved gCost/fCost/predecessor and
//     admitting or updating the neighbor in the frontier.
func (r *Run) Next() (StepEvent, bool) {
	if r.delivered {
		return StepEvent{}, false
	}
	if r.state == StateReady {
		r.state = StateRunning
	}
	r.step++

	if r.open.Len() == 0 {
		r.state = StateFailed

		return r.emit(StepEvent{State: StateFailed, Step: r.step}), true
	}

	item := heap.Pop(&r.open).(*node)
	delete(r.openByCell, item.cell)
	cur := item.cell
	r.closed[cur] = true
	r.expanded++

	if cur == r.target {
		r.state = StateSucceeded

		return r.emit(StepEvent{Visited: cur, State: StateSucceeded, Step: r.step}), true
	}

	// cur came off the frontier, so it is in bounds by construction.
	neighbors, _ := r.board.Neighbors(cur)
	var updates []grid.Cell
	for _, nb := range neighbors {
		if r.closed[nb] {
			continue
		}
		tentative := item.g + EdgeCost(cur, nb, r.conn)
		if prev, seen := r.gCost[nb]; seen && tentative >= prev {
			continue
		}
		r.gCost[nb] = tentative
		r.cameFrom[nb] = cur
		f := tentative + Heuristic(nb, r.target, r.conn)
		if it, inOpen := r.openByCell[nb]; inOpen {
			// Decrease-key in place; the original insertion order is kept,
			// so tie-breaking stays stable across updates.
			it.g, it.f = tentative, f
			heap.Fix(&r.open, it.index)
		} else {
			r.seq++
			it = &node{cell: nb, g: tentative, f: f, seq: r.seq}
			heap.Push(&r.open, it)
			r.openByCell[nb] = it
		}
		updates = append(updates, nb)
	}

	return r.emit(StepEvent{Visited: cur, FrontierUpdates: updates, State: StateRunning, Step: r.step}), true
}

// Path reconstructs the start-to-target path from the run's predecessor
// map. It is available only once the run has succeeded; any earlier or
// failed state yields ErrNoPath. A broken predecessor chain yields
// ErrReconstruction, which signals a defect in the engine itself.
// Complexity: O(path length).
func (r *Run) Path() ([]grid.Cell, error) {
	if r.state != StateSucceeded {
		return nil, fmt.Errorf("%w: run state is %s", ErrNoPath, r.state)
	}
	path := []grid.Cell{r.target}
	cur := r.target
	for cur != r.start {
		prev, ok := r.cameFrom[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for (%d,%d)", ErrReconstruction, cur.Row, cur.Col)
		}
		cur = prev
		path = append(path, cur)
	}
	// Reverse into start-to-target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// emit marks terminal events delivered, invokes the observer, and returns
// the event unchanged.
func (r *Run) emit(ev StepEvent) StepEvent {
	if ev.State.Terminal() {
		r.delivered = true
	}
	if r.opts.OnStep != nil {
		r.opts.OnStep(ev)
	}

	return ev
}

// node represents a frontier entry: a cell with its current gCost, fCost,
// insertion sequence number, and heap index for in-place decrease-key.
type node struct {
	cell  grid.Cell
	g     int
	f     int
	seq   int
	index int
}

// nodeHeap is a min-heap of *node ordered by fCost ascending, with ties
// broken by insertion sequence (earliest inserted wins). The explicit
// tie-break makes pop order independent of container/heap internals.
type nodeHeap []*node

// Len returns the number of items in the heap.
func (h nodeHeap) Len() int { return len(h) }

// Less orders by fCost, then by insertion sequence.
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements and maintains their heap indices.
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
