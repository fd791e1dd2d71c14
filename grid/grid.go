// Package grid implements the mutable board model used by the gridpath
// search engines. A Grid owns all cell-state data; callers mutate it between
// searches (obstacle toggling, role relocation) and hand it to an engine,
// which snapshots it for the duration of a run.
package grid

import "fmt"

// conn4Offsets lists orthogonal neighbor offsets in the fixed expansion
// order: up, down, left, right. Reordering them changes every reproducible
// step sequence downstream.
var conn4Offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// conn8Offsets appends the diagonal offsets after the orthogonal ones:
// up-left, up-right, down-left, down-right.
var conn8Offsets = [][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Grid is a fixed-size rectangular collection of cell states with exactly
// one Start and one Target cell at any time. Dimensions never change after
// construction; Reset restores the pristine layout in place.
type Grid struct {
	rows, cols int
	conn       Connectivity
	states     [][]CellState
	start      Cell
	target     Cell
	offsets    [][2]int
}

// New constructs a Grid of the given dimensions with all cells Free except
// the default Start and Target. Returns ErrInvalidDimensions if rows ≤ 0,
// cols ≤ 0, or the grid holds fewer than two cells (distinct Start and
// Target would be impossible).
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Grid{
		rows:    rows,
		cols:    cols,
		conn:    cfg.Conn,
		states:  make([][]CellState, rows),
		offsets: offsetsFor(cfg.Conn),
	}
	for r := 0; r < rows; r++ {
		g.states[r] = make([]CellState, cols)
	}
	g.start, g.target = defaultEndpoints(rows, cols)
	g.states[g.start.Row][g.start.Col] = Start
	g.states[g.target.Row][g.target.Col] = Target

	return g, nil
}

// FromRunes constructs a Grid from an ASCII layout, one string per row:
// '.' Free, '#' Obstacle, 'S' Start, 'T' Target. The layout must be
// rectangular and contain exactly one 'S' and one 'T'.
// Complexity: O(rows×cols).
func FromRunes(layout []string, opts ...Option) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}
	rows, cols := len(layout), len(layout[0])
	for r, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(line), cols)
		}
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	g.conn = cfg.Conn
	g.offsets = offsetsFor(cfg.Conn)

	// Clear the default roles; the layout dictates both.
	g.states[g.start.Row][g.start.Col] = Free
	g.states[g.target.Row][g.target.Col] = Free

	starts, targets := 0, 0
	for r, line := range layout {
		for c, ch := range line {
			switch ch {
			case '.':
				g.states[r][c] = Free
			case '#':
				g.states[r][c] = Obstacle
			case 'S':
				g.states[r][c] = Start
				g.start = Cell{Row: r, Col: c}
				starts++
			case 'T':
				g.states[r][c] = Target
				g.target = Cell{Row: r, Col: c}
				targets++
			default:
				return nil, fmt.Errorf("%w: unknown rune %q at (%d,%d)", ErrBadLayout, ch, r, c)
			}
		}
	}
	if starts != 1 || targets != 1 {
		return nil, fmt.Errorf("%w: want exactly one 'S' and one 'T', got %d and %d", ErrBadLayout, starts, targets)
	}

	return g, nil
}

// defaultEndpoints places the default Start and Target on the middle row,
// inset one sixth of the width from each side. Single-column grids fall back
// to the vertical axis. The two cells are distinct for every legal dimension.
func defaultEndpoints(rows, cols int) (start, target Cell) {
	if cols >= 2 {
		mid, inset := rows/2, cols/6

		return Cell{Row: mid, Col: inset}, Cell{Row: mid, Col: cols - 1 - inset}
	}
	// cols == 1 implies rows ≥ 2 after the dimension check.
	inset := rows / 6

	return Cell{Row: inset, Col: 0}, Cell{Row: rows - 1 - inset, Col: 0}
}

// offsetsFor returns the neighbor offset table for the given connectivity.
func offsetsFor(c Connectivity) [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity reports the adjacency model the grid was built with.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Start returns the cell currently holding the Start role.
func (g *Grid) Start() Cell { return g.start }

// Target returns the cell currently holding the Target role.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid extents.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// StateAt returns the state of the given cell, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) StateAt(c Cell) (CellState, error) {
	if !g.InBounds(c) {
		return Free, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, c.Row, c.Col, g.rows, g.cols)
	}

	return g.states[c.Row][c.Col], nil
}

// SetCellState assigns a state to a cell, enforcing the one-Start/one-Target
// invariant:
//
//   - Setting Start or Target atomically vacates the previous role holder
//     (it becomes Free).
//   - Placing Start onto the current Target cell, or Target onto the current
//     Start cell, is rejected with ErrInvalidState and leaves the grid
//     unchanged.
//   - Setting Free or Obstacle on the current Start or Target cell is
//     rejected with ErrInvalidState: relocate the role first.
//
// Returns ErrOutOfBounds if c exceeds the grid extents.
// Complexity: O(1).
func (g *Grid) SetCellState(c Cell, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, c.Row, c.Col, g.rows, g.cols)
	}
	switch s {
	case Start:
		if c == g.target {
			return fmt.Errorf("%w: cannot place Start on Target cell (%d,%d)", ErrInvalidState, c.Row, c.Col)
		}
		if c == g.start {
			return nil
		}
		g.states[g.start.Row][g.start.Col] = Free
		g.states[c.Row][c.Col] = Start
		g.start = c
	case Target:
		if c == g.start {
			return fmt.Errorf("%w: cannot place Target on Start cell (%d,%d)", ErrInvalidState, c.Row, c.Col)
		}
		if c == g.target {
			return nil
		}
		g.states[g.target.Row][g.target.Col] = Free
		g.states[c.Row][c.Col] = Target
		g.target = c
	case Free, Obstacle:
		if c == g.start || c == g.target {
			return fmt.Errorf("%w: cell (%d,%d) holds a role; relocate it first", ErrInvalidState, c.Row, c.Col)
		}
		g.states[c.Row][c.Col] = s
	default:
		return fmt.Errorf("%w: unknown state %d", ErrInvalidState, s)
	}

	return nil
}

// ToggleObstacle flips a cell between Free and Obstacle. Role cells cannot
// be toggled (ErrInvalidState). Returns ErrOutOfBounds for cells outside the
// grid. Complexity: O(1).
func (g *Grid) ToggleObstacle(c Cell) error {
	st, err := g.StateAt(c)
	if err != nil {
		return err
	}
	if st == Obstacle {
		return g.SetCellState(c, Free)
	}

	return g.SetCellState(c, Obstacle)
}

// Neighbors returns the in-bounds, non-Obstacle cells adjacent to c, in the
// fixed deterministic expansion order (up, down, left, right, then diagonals
// under Conn8). Returns ErrOutOfBounds if c itself lies outside the grid.
// Complexity: O(1) — at most 8 candidates.
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, c.Row, c.Col, g.rows, g.cols)
	}
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) {
			continue
		}
		if g.states[n.Row][n.Col] == Obstacle {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// Reset restores every cell to Free except the default Start and Target.
// Dimensions and connectivity are unchanged. Idempotent.
// Complexity: O(rows×cols).
func (g *Grid) Reset() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.states[r][c] = Free
		}
	}
	g.start, g.target = defaultEndpoints(g.rows, g.cols)
	g.states[g.start.Row][g.start.Col] = Start
	g.states[g.target.Row][g.target.Col] = Target
}

// Clone returns a deep copy of the grid. Engines snapshot the board with
// Clone at run start so later edits never affect an in-progress run.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:    g.rows,
		cols:    g.cols,
		conn:    g.conn,
		states:  make([][]CellState, g.rows),
		start:   g.start,
		target:  g.target,
		offsets: g.offsets,
	}
	for r := 0; r < g.rows; r++ {
		cp.states[r] = make([]CellState, g.cols)
		copy(cp.states[r], g.states[r])
	}

	return cp
}

// String renders the grid row by row using the CellState rune vocabulary.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, g.states[r][c].String()...)
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
