// Package solver defines the shared vocabulary of the solver engine: the
// Step snapshot, its Highlights metadata, the Result envelope every method
// returns, and the Recorder that accumulates steps during a solve.
//
// Overview:
//
//   - A Step is a full, independently owned snapshot of the solver state at
//     one moment: the coefficient matrix and right-hand side for direct
//     methods, or the current approximation and accumulated error history
//     for iterative methods, plus a human-readable description and the set
//     of rows/columns/cells active in that step.
//   - Highlights are purely advisory rendering metadata; no algorithm ever
//     reads them back.
//   - The Recorder is an owned accumulator passed through the solve loop.
//     Every append deep-copies its arguments, so later mutation of the
//     working state (or of an already recorded step) can never corrupt the
//     trace — snapshot-at-append semantics.
//
// Replay contract:
//
//   - Result.Steps is never empty; the final step is consistent with
//     Result.Solution (triangular/identity form for direct methods, the
//     last iterate for iterative ones).
//   - For iterative results the ErrorHistory in the last step has exactly
//     one entry per executed iteration.
//
// Consumers replay Steps in order; replay is read-only and needs no
// coordination with the engine.
package solver
