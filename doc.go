// Package linsolve is a traced linear-system solver engine: a family of
// direct and iterative algorithms that solve Ax = b while recording a
// complete, replayable trace of every intermediate state, plus a
// comparison layer that runs every method on the same input and ranks them.
//
// 🚀 What is linsolve?
//
//	A small, deterministic, pure-Go engine that brings together:
//		• Numeric core: dense row-major matrices, validators, residual kernels
//		• Step recorder: immutable snapshots with highlight metadata
//		• Direct solvers: Gauss elimination, partial pivoting, Gauss-Jordan
//		• Iterative solvers: Jacobi and Gauss-Seidel relaxation
//		• Comparator: per-method metrics, best-method selection, full ranking
//
// ✨ Why choose linsolve?
//
//   - Replayable – every solve returns an ordered list of snapshot steps,
//     ready to animate or inspect without re-running the algorithm
//   - Deterministic – fixed loop orders, strict tie-breaking, no globals
//   - Isolated – recorded steps never alias live solver state; mutate a
//     snapshot freely and nothing else changes
//   - Pure Go – no cgo; numerics lean on gonum for norms and diagnostics
//
// Everything is organized under five subpackages:
//
//	matrix/    — Dense storage, shape validators, MatVec/residual kernels
//	solver/    — Step, Highlights, Result and the Recorder accumulator
//	direct/    — Gauss, GaussPivot, GaussJordan (elimination family)
//	iterative/ — Jacobi, GaussSeidel (relaxation family)
//	compare/   — Compare, Ranking, Condition (scoring & diagnostics)
//
// Quick sketch:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, -1}, {-1, 4}})
//	res, err := direct.Gauss(a, []float64{1, 2})
//	// res.Solution holds x; res.Steps replays the elimination.
//
// Dive into the per-package docs for contracts, error sets and examples.
package linsolve
