// Package iterative implements the relaxation family of traced solvers:
// Jacobi and Gauss-Seidel fixed-point iteration for square systems Ax = b.
//
// Overview:
//
//   - Both methods start from the zero vector and refine it until the
//     Euclidean distance between successive iterates drops below the
//     configured tolerance, or the iteration budget runs out.
//   - Jacobi computes every component of the next iterate strictly from the
//     previous one — no component sees another's update within the same
//     iteration, which makes the sweep embarrassingly parallel.
//   - Gauss-Seidel relaxes in place: component i uses the already-updated
//     values of components j < i, which typically converges in fewer
//     iterations on diagonally dominant systems but serializes the sweep.
//
// Every iteration records a step carrying the new approximation and a copy
// of the full error history so far; the initial guess records a step of its
// own, so traces are never empty even with MaxIterations = 0.
//
// Convergence is a soft outcome, not an error: exhausting the budget
// returns Converged=false together with the best approximation and the
// complete trace. Diagonal dominance is a sufficient (not necessary)
// condition for both methods to converge; a zero diagonal entry divides by
// zero and propagates NaN/Inf, exactly as in the direct family.
//
// Options:
//
//   - Tolerance     — convergence threshold on ‖x_{k+1} − x_k‖₂ (default 0.001).
//   - MaxIterations — iteration budget (default 50; 0 is legal and yields a
//     non-converged result holding only the initial guess).
//
// Errors (sentinel):
//
//   - ErrBadTolerance            — tolerance ≤ 0, NaN or ±Inf.
//   - ErrBadMaxIterations        — negative iteration budget.
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch —
//     shape violations from the boundary validators.
//
// Complexity: O(n²) per iteration, O(n) extra memory per iteration plus the
// recorded snapshots.
package iterative
