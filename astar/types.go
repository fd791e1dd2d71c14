// Package astar defines core types, options, and sentinel errors
// for the astar subpackage of github.com/katalvlaran/gridpath.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search construction and path reconstruction.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Start or Solve.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidConfiguration indicates that the start or target cell is an
	// Obstacle at search start. Obstacle cells are never traversable,
	// including as endpoints.
	ErrInvalidConfiguration = errors.New("astar: start or target cell is an obstacle")

	// ErrNoPath indicates that no path exists between start and target, or
	// that Path was requested before the run succeeded.
	ErrNoPath = errors.New("astar: no path between start and target")

	// ErrReconstruction indicates a broken predecessor chain during path
	// reconstruction. This is an internal-consistency violation that cannot
	// occur under the engine's own invariants; treat it as a logic defect,
	// not a recoverable runtime condition.
	ErrReconstruction = errors.New("astar: predecessor chain broken")
)

// EngineState enumerates the lifecycle states of a Run.
// Succeeded and Failed are absorbing: a finished run cannot be resumed,
// only restarted by creating a new Run against the current board.
type EngineState int

const (
	// StateReady holds the initial frontier containing only the start cell.
	StateReady EngineState = iota
	// StateRunning is entered on the first step and persists until terminal.
	StateRunning
	// StateSucceeded means the target was popped from the frontier; the
	// predecessor map now encodes a complete shortest path.
	StateSucceeded
	// StateFailed means the frontier was exhausted; no path exists.
	StateFailed
)

// String returns a human-readable state name.
func (s EngineState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state is absorbing.
func (s EngineState) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// StepEvent describes one frontier-pop-and-expand cycle of a Run.
//
// Visited is the cell just finalized (zero-valued on a Failed event, which
// pops nothing). FrontierUpdates lists the neighbors newly admitted to or
// improved within the frontier, in expansion order. State is the engine
// state after the step; Step is the 1-based step index within the run.
type StepEvent struct {
	Visited         grid.Cell
	FrontierUpdates []grid.Cell
	State           EngineState
	Step            int
}

// Result contains the outcome of a completed search.
type Result struct {
	// Path is the start-to-target cell sequence, inclusive. Nil when Found
	// is false.
	Path []grid.Cell
	// Cost is the total path cost: path length − 1 under Conn4 unit costs,
	// weighted move costs under Conn8.
	Cost int
	// Expanded counts the cells popped from the frontier during the run.
	Expanded int
	// Found reports whether a path was found.
	Found bool
}

// Options configures the behavior of a search Run.
type Options struct {
	// OnStep, if non-nil, is invoked with every StepEvent as it is produced,
	// including the terminal one. It observes; it cannot alter the search.
	OnStep func(StepEvent)
}

// Option represents a functional option for configuring a Run.
type Option func(*Options)

// WithOnStep registers an observer callback for step events.
func WithOnStep(fn func(StepEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// DefaultOptions returns an Options with default settings: no observer.
func DefaultOptions() Options {
	return Options{}
}
