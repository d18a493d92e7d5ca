// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Gauss solves Ax = b by Gaussian elimination without pivoting.
//
// Implementation:
//   - Stage 1: validate shape and take owned working copies of A and b.
//   - Stage 2: forward elimination column by column (pivot step, then one
//     elimination step per row below, each recorded before mutation).
//   - Stage 3: back substitution bottom-up, one recorded step per component.
//
// Behavior highlights:
//   - Deterministic: fixed k→i→j loop order, no pivot reordering.
//   - No zero-pivot guard: a zero or tiny A[k][k] propagates NaN/Inf into
//     the trace and solution; this is a caller-input error, not recovered.
//
// Returns:
//   - *solver.Result with Kind = KindDirect, a non-empty step trace whose
//     final step is the triangular system, and the solution vector.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) plus the recorded snapshots.
func Gauss(a matrix.Matrix, b []float64) (*solver.Result, error) {
	rows, rhs, err := workingSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("Gauss: %w", err)
	}

	rec := solver.NewRecorder()
	forwardEliminate(rows, rhs, rec, false)
	x := backSubstitute(rows, rhs, rec)

	return &solver.Result{Steps: rec.Steps(), Solution: x, Kind: solver.KindDirect}, nil
}
