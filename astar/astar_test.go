// Package astar_test contains unit tests for the step-wise A* engine.
// These tests validate validation errors, the step/event contract,
// determinism, tie-breaking, optimality against a BFS oracle, and the
// diagonal (Conn8) cost model.
package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// mustGrid builds a grid from an ASCII layout or fails the test.
func mustGrid(t *testing.T, layout []string, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.FromRunes(layout, opts...)
	require.NoError(t, err)

	return g
}

// drain advances a run to completion, returning every emitted event.
func drain(r *astar.Run) []astar.StepEvent {
	var events []astar.StepEvent
	for {
		ev, ok := r.Next()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

// ------------------------------------------------------------------------
// 1. Validation: errors before any stepping begins.
// ------------------------------------------------------------------------

func TestStart_NilGrid(t *testing.T) {
	_, err := astar.Start(nil, grid.Cell{}, grid.Cell{})
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestStart_OutOfBoundsEndpoints(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	_, err = astar.Start(g, grid.Cell{Row: 9, Col: 0}, g.Target())
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = astar.Start(g, g.Start(), grid.Cell{Row: 0, Col: -1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestStart_ObstructedEndpoints covers the obstructed start/target policy:
// the run fails before stepping begins.
func TestStart_ObstructedEndpoints(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	blocked := grid.Cell{Row: 0, Col: 0}
	require.NoError(t, g.SetCellState(blocked, grid.Obstacle))

	_, err = astar.Start(g, blocked, g.Target())
	assert.ErrorIs(t, err, astar.ErrInvalidConfiguration)

	_, err = astar.Start(g, g.Start(), blocked)
	assert.ErrorIs(t, err, astar.ErrInvalidConfiguration)
}

// ------------------------------------------------------------------------
// 2. Step/event contract: states, terminal handling, observers.
// ------------------------------------------------------------------------

func TestRun_StateTransitions(t *testing.T) {
	g := mustGrid(t, []string{
		"S..",
		"...",
		"..T",
	})
	run, err := astar.Start(g, g.Start(), g.Target())
	require.NoError(t, err)
	assert.Equal(t, astar.StateReady, run.State())

	ev, ok := run.Next()
	require.True(t, ok)
	assert.Equal(t, astar.StateRunning, ev.State)
	assert.Equal(t, g.Start(), ev.Visited)
	assert.Equal(t, 1, ev.Step)

	events := drain(run)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, astar.StateSucceeded, last.State)
	assert.Equal(t, g.Target(), last.Visited)
	assert.True(t, run.State().Terminal())

	// The sequence is exhausted; terminal states are absorbing.
	_, ok = run.Next()
	assert.False(t, ok)
	_, ok = run.Next()
	assert.False(t, ok)
	assert.Equal(t, astar.StateSucceeded, run.State())
}

func TestRun_FirstStepFrontierUpdates(t *testing.T) {
	g := mustGrid(t, []string{
		"...",
		".S.",
		"..T",
	})
	run, err := astar.Start(g, g.Start(), g.Target())
	require.NoError(t, err)

	ev, ok := run.Next()
	require.True(t, ok)
	// Neighbors of (1,1) admitted in fixed order: up, down, left, right.
	want := []grid.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}
	assert.Equal(t, want, ev.FrontierUpdates)
}

func TestRun_ObserverSeesEveryEvent(t *testing.T) {
	g := mustGrid(t, []string{
		"S..",
		"#.#",
		"..T",
	})
	var observed []astar.StepEvent
	run, err := astar.Start(g, g.Start(), g.Target(),
		astar.WithOnStep(func(ev astar.StepEvent) { observed = append(observed, ev) }))
	require.NoError(t, err)

	events := drain(run)
	assert.Equal(t, events, observed)
	assert.Equal(t, astar.StateSucceeded, events[len(events)-1].State)
}

func TestRun_PathBeforeSuccess(t *testing.T) {
	g := mustGrid(t, []string{
		"S..",
		"...",
		"..T",
	})
	run, err := astar.Start(g, g.Start(), g.Target())
	require.NoError(t, err)

	_, err = run.Path()
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestRun_GridEditsDoNotAffectRun verifies the snapshot semantics: the run
// owns a private copy of the board for its whole lifetime.
func TestRun_GridEditsDoNotAffectRun(t *testing.T) {
	g := mustGrid(t, []string{
		"S..",
		"...",
		"..T",
	})
	run, err := astar.Start(g, g.Start(), g.Target())
	require.NoError(t, err)

	// Wall the target off on the live grid after the run has started.
	require.NoError(t, g.SetCellState(grid.Cell{Row: 1, Col: 2}, grid.Obstacle))
	require.NoError(t, g.SetCellState(grid.Cell{Row: 2, Col: 1}, grid.Obstacle))

	events := drain(run)
	assert.Equal(t, astar.StateSucceeded, events[len(events)-1].State)
}

// ------------------------------------------------------------------------
// 3. Concrete scenarios.
// ------------------------------------------------------------------------

// Scenario: 5×5 board, no obstacles, corner to corner. The shortest path
// holds 9 cells and costs 8 moves.
func TestSolve_OpenField5x5(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	res, err := astar.Solve(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Path, 9)
	assert.Equal(t, 8, res.Cost)
	assertValidPath(t, g, res.Path)
}

// Scenario: a full obstacle column separates start from target.
func TestSolve_BlockedColumn(t *testing.T) {
	g := mustGrid(t, []string{
		"S#T",
		".#.",
		".#.",
	})
	res, err := astar.Solve(g, g.Start(), g.Target())
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	// Every reachable cell (the left column) was expanded before giving up.
	assert.Equal(t, 3, res.Expanded)
}

// Scenario: start equals target — Succeeded on the very first step with a
// single-cell path.
func TestRun_StartEqualsTarget(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	c := grid.Cell{Row: 1, Col: 1}

	run, err := astar.Start(g, c, c)
	require.NoError(t, err)

	ev, ok := run.Next()
	require.True(t, ok)
	assert.Equal(t, astar.StateSucceeded, ev.State)
	assert.Equal(t, 1, ev.Step)

	path, err := run.Path()
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{c}, path)
	assert.Equal(t, 0, run.Cost())
}

// Scenario: equal-fCost frontier candidates. On a 2×2 board from (0,0) to
// (1,1) both neighbors of the start tie at fCost 2; the engine must pop the
// earliest-inserted one first. The full visitation order is asserted.
func TestRun_TieBreakInsertionOrder(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	run, err := astar.Start(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1})
	require.NoError(t, err)

	var visited []grid.Cell
	for _, ev := range drain(run) {
		visited = append(visited, ev.Visited)
	}
	want := []grid.Cell{
		{Row: 0, Col: 0}, // start
		{Row: 1, Col: 0}, // inserted before (0,1), same fCost
		{Row: 0, Col: 1},
		{Row: 1, Col: 1}, // target
	}
	assert.Equal(t, want, visited)

	path, err := run.Path()
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, path)
}

// ------------------------------------------------------------------------
// 4. Properties: determinism, optimality, completeness, admissibility.
// ------------------------------------------------------------------------

// TestRun_Deterministic replays the same board twice and demands identical
// event sequences.
func TestRun_Deterministic(t *testing.T) {
	layout := []string{
		"S...#.....",
		".##.#.###.",
		".#........",
		".#.#####.#",
		"...#...#..",
		".###.#.#.#",
		".....#...T",
	}
	sequence := func() []astar.StepEvent {
		g := mustGrid(t, layout)
		run, err := astar.Start(g, g.Start(), g.Target())
		require.NoError(t, err)

		return drain(run)
	}

	first := sequence()
	second := sequence()
	require.Equal(t, first, second)
	assert.Equal(t, astar.StateSucceeded, first[len(first)-1].State)
}

// TestSolve_MatchesBFSOracle cross-checks A* against breadth-first search
// on randomized boards: equal optimal cost when a path exists, agreeing
// ErrNoPath when none does.
func TestSolve_MatchesBFSOracle(t *testing.T) {
	const rows, cols = 12, 12
	for _, seed := range []int64{1, 7, 42, 1337} {
		rng := rand.New(rand.NewSource(seed))
		g, err := grid.New(rows, cols)
		require.NoError(t, err)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := grid.Cell{Row: r, Col: c}
				if cell == g.Start() || cell == g.Target() {
					continue
				}
				if rng.Float64() < 0.35 {
					require.NoError(t, g.SetCellState(cell, grid.Obstacle))
				}
			}
		}

		oracle, err := bfs.Search(g, g.Start())
		require.NoError(t, err)

		res, err := astar.Solve(g, g.Start(), g.Target())
		if !oracle.Reached(g.Target()) {
			assert.ErrorIs(t, err, astar.ErrNoPath, "seed %d", seed)

			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, oracle.Dist[g.Target()], res.Cost, "seed %d", seed)
		assert.Len(t, res.Path, res.Cost+1, "seed %d", seed)
		assertValidPath(t, g, res.Path)
	}
}

// assertValidPath checks that a path starts and ends where it should, moves
// only between adjacent cells, and never enters an Obstacle.
func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	for i, c := range path {
		st, err := g.StateAt(c)
		require.NoError(t, err)
		assert.NotEqual(t, grid.Obstacle, st, "path enters obstacle at %v", c)
		if i == 0 {
			continue
		}
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		maxStep := 1
		if g.Connectivity() == grid.Conn4 {
			assert.Equal(t, 1, dr+dc, "non-orthogonal move %v → %v", path[i-1], path[i])
		} else {
			assert.LessOrEqual(t, dr, maxStep)
			assert.LessOrEqual(t, dc, maxStep)
			assert.NotEqual(t, 0, dr+dc, "stationary move at %v", path[i])
		}
	}
}

// ------------------------------------------------------------------------
// 5. Cost model: heuristic and edge costs, Conn8 supplement.
// ------------------------------------------------------------------------

func TestHeuristic_Boundary(t *testing.T) {
	c := grid.Cell{Row: 3, Col: 7}
	assert.Zero(t, astar.Heuristic(c, c, grid.Conn4))
	assert.Zero(t, astar.Heuristic(c, c, grid.Conn8))
}

func TestHeuristic_Values(t *testing.T) {
	a := grid.Cell{Row: 0, Col: 0}
	b := grid.Cell{Row: 3, Col: 5}
	// Manhattan: 3 + 5.
	assert.Equal(t, 8, astar.Heuristic(a, b, grid.Conn4))
	// Octile: 3 diagonals at 14, 2 straight moves at 10.
	assert.Equal(t, 3*astar.DiagCost+2*astar.OrthCost, astar.Heuristic(a, b, grid.Conn8))
	// Symmetry.
	assert.Equal(t, astar.Heuristic(a, b, grid.Conn4), astar.Heuristic(b, a, grid.Conn4))
	assert.Equal(t, astar.Heuristic(a, b, grid.Conn8), astar.Heuristic(b, a, grid.Conn8))
}

func TestEdgeCost(t *testing.T) {
	a := grid.Cell{Row: 1, Col: 1}
	right := grid.Cell{Row: 1, Col: 2}
	diag := grid.Cell{Row: 2, Col: 2}

	assert.Equal(t, astar.UnitCost, astar.EdgeCost(a, right, grid.Conn4))
	assert.Equal(t, astar.OrthCost, astar.EdgeCost(a, right, grid.Conn8))
	assert.Equal(t, astar.DiagCost, astar.EdgeCost(a, diag, grid.Conn8))
}

// TestSolve_Conn8Diagonal verifies that a diagonal shortcut beats the
// two-move orthogonal detour under the 10/14 cost model.
func TestSolve_Conn8Diagonal(t *testing.T) {
	g := mustGrid(t, []string{
		"S.",
		".T",
	}, grid.WithConnectivity(grid.Conn8))

	res, err := astar.Solve(g, g.Start(), g.Target())
	require.NoError(t, err)
	assert.Equal(t, astar.DiagCost, res.Cost)
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, res.Path)
	assertValidPath(t, g, res.Path)
}
