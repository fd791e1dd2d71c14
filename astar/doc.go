// Package astar implements A* shortest-path search over a gridpath grid,
// exposed as a restartable, observable sequence of discrete steps.
//
// What:
//
//   - Start creates a Run: an explicit, self-contained search state machine
//     (Ready → Running → Succeeded | Failed) over a snapshot of the grid.
//   - Run.Next advances the search by exactly one frontier-pop-and-expand
//     cycle and reports a StepEvent, so a consumer can render every
//     intermediate state ("solve with visual") or drain to the terminal
//     event ("solve without visual").
//   - Solve drains a fresh Run to completion and returns the final Result.
//   - On Succeeded, Run.Path reconstructs the start-to-target path from the
//     run's predecessor map.
//
// Why:
//
//   - Interactive visualizers: the engine is pull-based and suspend-free;
//     the consumer owns all pacing, the engine has no notion of frames or
//     time.
//   - Reproducibility: the frontier is ordered by fCost with ties broken by
//     insertion order (earliest inserted wins), and neighbors expand in the
//     grid's fixed deterministic order, so two runs against an identical
//     board produce identical step sequences.
//
// Complexity:
//
//   - Each step: O(d log n) where d = neighbor count (≤ 8) and n = frontier
//     size. A full run: O(W×H×d log(W×H)) time, O(W×H) memory.
//
// Options:
//
//   - WithOnStep(fn): observer invoked with every StepEvent as it is
//     produced. Purely advisory; engine semantics are unchanged.
//
// Errors:
//
//   - ErrNilGrid: Start received a nil grid.
//   - ErrInvalidConfiguration: start or target cell is an Obstacle.
//   - grid.ErrOutOfBounds: start or target lies outside the grid.
//   - ErrNoPath: the frontier was exhausted without reaching the target, or
//     Path was called before the run succeeded.
//   - ErrReconstruction: broken predecessor chain — an internal invariant
//     violation, never a normal runtime condition.
//
// Concurrency:
//
//   - A Run is single-threaded and owned by its creator; it performs no
//     background work and never blocks. Cancellation is cooperative: stop
//     calling Next and drop the Run.
package astar
