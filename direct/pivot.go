// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// GaussPivot solves Ax = b by Gaussian elimination with partial pivoting.
//
// Identical to Gauss except that before eliminating column k the rows
// i = k..n-1 are scanned for the largest |A[i][k]| (strict >, so the
// earliest row wins ties) and, when that row differs from k, rows k and
// pivotRow are swapped in both A and b with a recorded "swap" step ahead
// of the "pivot selected" step.
//
// Pivoting reduces, but does not eliminate, the zero-pivot failure mode: a
// column that is entirely zero at and below k still divides by zero and the
// resulting NaN/Inf propagate unchecked.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) plus the recorded snapshots.
func GaussPivot(a matrix.Matrix, b []float64) (*solver.Result, error) {
	rows, rhs, err := workingSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("GaussPivot: %w", err)
	}

	rec := solver.NewRecorder()
	forwardEliminate(rows, rhs, rec, true)
	x := backSubstitute(rows, rhs, rec)

	return &solver.Result{Steps: rec.Steps(), Solution: x, Kind: solver.KindDirect}, nil
}
