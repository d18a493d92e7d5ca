// Package direct implements the elimination family of traced solvers for
// square linear systems Ax = b.
//
// Overview:
//
//   - Gauss       — plain Gaussian elimination to upper-triangular form,
//     then back substitution. No pivot selection: a zero pivot propagates
//     NaN/Inf into the trace and solution (caller-input error by contract).
//   - GaussPivot  — same skeleton with partial pivoting: before eliminating
//     column k the max-|A[i][k]| row is swapped in (strict >, earliest row
//     wins ties, so traces are reproducible). A fully zero column still
//     divides by zero.
//   - GaussJordan — partial pivoting plus two-sided elimination and pivot
//     row normalization, reducing A to the identity; the solution is read
//     directly off the transformed right-hand side.
//
// Every method records a full snapshot step for each pivot selection, row
// swap, row elimination (taken before the mutation it describes), and back
// substitution, so a consumer can replay the computation element by element.
//
// Error handling (sentinel errors, from the matrix package):
//
//   - matrix.ErrNilMatrix          — nil coefficient matrix or right-hand side.
//   - matrix.ErrNonSquare          — coefficient matrix is not square.
//   - matrix.ErrDimensionMismatch  — vector length differs from the order.
//
// Numerically invalid input (singular or near-singular systems) is never
// detected: results may contain NaN/Inf. Validating conditioning ahead of a
// solve is the boundary's job (see compare.Condition).
//
// Complexity: O(n³) time, O(n²) memory per solve, plus O(n²) per recorded
// step for the snapshot copies.
package direct
