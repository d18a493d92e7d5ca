// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// GaussJordan solves Ax = b by Gauss-Jordan elimination to reduced row
// echelon form.
//
// Implementation:
//   - Stage 1: validate shape and take owned working copies of A and b.
//   - Stage 2: for each column k — swap in the max-magnitude pivot row
//     (partial pivoting, recorded), record the pivot, normalize the pivot
//     row to 1 (recorded), then eliminate column k from every other row
//     both above and below, one recorded step per row.
//   - Stage 3: record the terminal "RREF complete" step; the matrix is the
//     identity and the solution is the transformed right-hand side.
//
// There is no back-substitution phase: x[i] = b[i] directly.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²) plus the recorded snapshots. Roughly half
//     again as many arithmetic operations as Gauss, traded for the simpler
//     solution extraction.
func GaussJordan(a matrix.Matrix, b []float64) (*solver.Result, error) {
	rows, rhs, err := workingSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("GaussJordan: %w", err)
	}

	n := len(rows)
	rec := solver.NewRecorder()
	var i, j, k int
	var pivot, factor float64
	for k = 0; k < n; k++ {
		// Partial pivoting, as in GaussPivot.
		if p := pivotRow(rows, k); p != k {
			rows[k], rows[p] = rows[p], rows[k]
			rhs[k], rhs[p] = rhs[p], rhs[k]
			rec.Snapshot(rows, rhs,
				fmt.Sprintf("Swapped row %d with row %d (partial pivoting)", k, p),
				solver.Highlights{Rows: []int{k, p}})
		}

		rec.Snapshot(rows, rhs,
			fmt.Sprintf("Pivot selected: A[%d][%d] = %g", k, k, rows[k][k]),
			solver.Highlights{Cells: [][2]int{{k, k}}})

		// Normalize the pivot row so the pivot becomes exactly 1.
		pivot = rows[k][k]
		for j = 0; j < n; j++ {
			rows[k][j] /= pivot
		}
		rhs[k] /= pivot
		rec.Snapshot(rows, rhs,
			fmt.Sprintf("Normalized row %d (pivot scaled to 1)", k),
			solver.Highlights{Rows: []int{k}})

		// Eliminate column k from every other row, above and below.
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			rec.Snapshot(rows, rhs,
				fmt.Sprintf("Eliminating row %d using pivot row %d", i, k),
				solver.Highlights{Rows: []int{i, k}, Cells: [][2]int{{i, k}}})

			factor = rows[i][k]
			for j = 0; j < n; j++ {
				rows[i][j] -= factor * rows[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	rec.Snapshot(rows, rhs, "RREF complete: matrix reduced to identity", solver.Highlights{})

	// The matrix is the identity; read the solution off the right-hand side.
	x := make([]float64, n)
	copy(x, rhs)

	return &solver.Result{Steps: rec.Steps(), Solution: x, Kind: solver.KindDirect}, nil
}
