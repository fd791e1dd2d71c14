package astar

import "github.com/katalvlaran/gridpath/grid"

// Solve runs a fresh search to completion and returns the final Result.
// It is the "solve without visual" entry point: the step sequence is
// drained internally without acting on intermediate events (an OnStep
// observer, if supplied, still sees every event).
//
// Returns ErrNoPath (with Result.Expanded populated) when the target is
// unreachable, or any Start validation error.
// Complexity: O(W×H×d log(W×H)) time, O(W×H) memory.
func Solve(g *grid.Grid, start, target grid.Cell, opts ...Option) (Result, error) {
	run, err := Start(g, start, target, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		if _, ok := run.Next(); !ok {
			break
		}
	}
	if run.State() != StateSucceeded {
		return Result{Expanded: run.Expanded()}, ErrNoPath
	}
	path, err := run.Path()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path:     path,
		Cost:     run.Cost(),
		Expanded: run.Expanded(),
		Found:    true,
	}, nil
}
