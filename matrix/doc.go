// Package matrix provides the numeric core for the solver engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access and
//     deep-copy Clone semantics, the working storage of every solver.
//   - NewDenseFromRows and ToRows converters between the UI-facing
//     [][]float64 shape and Dense.
//   - Canonical shape validators (ValidateSystem and friends) used at every
//     solver boundary, returning sentinel errors matched via errors.Is.
//   - Residual kernels (MatVec, Residual, ResidualNorm) for verifying a
//     candidate solution against the original system.
//
// The numeric policy is intentionally permissive: NaN and ±Inf values are
// never rejected and propagate through arithmetic unchanged. Shape is the
// only thing validated here; singularity is not detected.
//
// See the examples in this package and the solver packages for usage.
package matrix
