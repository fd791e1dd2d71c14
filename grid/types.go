// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or cols not positive, or a grid too
	// small to hold distinct Start and Target cells.
	ErrInvalidDimensions = errors.New("grid: dimensions must allow at least two cells")
	// ErrOutOfBounds indicates cell coordinates outside the grid extents.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrInvalidState indicates a role-placement conflict: Start onto the
	// current Target cell, Target onto the current Start cell, or overwriting
	// a role cell without relocating the role first.
	ErrInvalidState = errors.New("grid: invalid cell state transition")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrBadLayout indicates a malformed rune layout.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// CellState enumerates the possible states of a single grid cell.
type CellState int

const (
	// Free marks a traversable cell with no special role.
	Free CellState = iota
	// Obstacle marks a non-traversable cell.
	Obstacle
	// Start marks the unique search origin cell.
	Start
	// Target marks the unique search destination cell.
	Target
)

// String returns a single-character rendering of the state,
// matching the rune vocabulary accepted by FromRunes.
func (s CellState) String() string {
	switch s {
	case Free:
		return "."
	case Obstacle:
		return "#"
	case Start:
		return "S"
	case Target:
		return "T"
	default:
		return "?"
	}
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: the four orthogonal neighbors
	// followed by the four diagonal ones.
	Conn8
)

// Cell identifies a position in the grid by row and column.
// Cells are values; two cells are equal iff their coordinates match.
type Cell struct {
	Row, Col int
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional adjacency.
	Conn Connectivity
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithConnectivity selects the neighbor adjacency model.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// DefaultOptions returns an Options with default settings: Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
