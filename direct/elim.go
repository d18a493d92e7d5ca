// SPDX-License-Identifier: MIT
// Package direct: shared elimination skeleton. Gauss and GaussPivot differ
// only in the pivot-selection policy threaded through forwardEliminate;
// GaussJordan reuses the working-copy and pivot-scan helpers.

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// workingSystem validates (a, b) and returns mutable row-major working
// copies. The copies are owned by the calling algorithm; the caller's data
// is never touched afterwards.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func workingSystem(a matrix.Matrix, b []float64) ([][]float64, []float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, nil, err
	}

	rows, err := matrix.RowsOf(a)
	if err != nil {
		return nil, nil, err
	}
	rhs := make([]float64, len(b))
	copy(rhs, b)

	return rows, rhs, nil
}

// pivotRow returns argmax over i in [k, n) of |rows[i][k]|. The comparison
// is strict (>), so the earliest row wins ties — required for reproducible
// traces. Complexity: O(n-k).
func pivotRow(rows [][]float64, k int) int {
	best := k
	for i := k + 1; i < len(rows); i++ {
		if math.Abs(rows[i][k]) > math.Abs(rows[best][k]) {
			best = i
		}
	}

	return best
}

// eliminateBelow clears column k below the pivot, recording one step per
// eliminated row before mutating it. No zero-pivot guard: a zero rows[k][k]
// produces NaN/Inf factors that propagate by design.
func eliminateBelow(rows [][]float64, rhs []float64, k int, rec *solver.Recorder) {
	n := len(rows)
	var i, j int
	var factor float64
	for i = k + 1; i < n; i++ {
		rec.Snapshot(rows, rhs,
			fmt.Sprintf("Eliminating row %d using pivot row %d", i, k),
			solver.Highlights{Rows: []int{i, k}, Cells: [][2]int{{i, k}}})

		factor = rows[i][k] / rows[k][k]
		for j = k; j < n; j++ {
			rows[i][j] -= factor * rows[k][j]
		}
		rhs[i] -= factor * rhs[k]
	}
}

// forwardEliminate reduces the system to upper-triangular form, optionally
// swapping in the max-magnitude pivot row first (partial pivoting). One
// "pivot selected" step is recorded per column, one "swap" step per actual
// row exchange.
func forwardEliminate(rows [][]float64, rhs []float64, rec *solver.Recorder, pivoting bool) {
	n := len(rows)
	for k := 0; k < n; k++ {
		if pivoting {
			if p := pivotRow(rows, k); p != k {
				rows[k], rows[p] = rows[p], rows[k]
				rhs[k], rhs[p] = rhs[p], rhs[k]
				rec.Snapshot(rows, rhs,
					fmt.Sprintf("Swapped row %d with row %d (partial pivoting)", k, p),
					solver.Highlights{Rows: []int{k, p}})
			}
		}

		rec.Snapshot(rows, rhs,
			fmt.Sprintf("Pivot selected: A[%d][%d] = %g", k, k, rows[k][k]),
			solver.Highlights{Cells: [][2]int{{k, k}}})

		eliminateBelow(rows, rhs, k, rec)
	}
}

// backSubstitute solves the upper-triangular system bottom-up, recording a
// header step plus one step per resolved component. Complexity: O(n²).
func backSubstitute(rows [][]float64, rhs []float64, rec *solver.Recorder) []float64 {
	n := len(rows)
	rec.Snapshot(rows, rhs, "Starting back substitution", solver.Highlights{})

	x := make([]float64, n)
	var i, j int
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for j = i + 1; j < n; j++ {
			sum += rows[i][j] * x[j]
		}
		x[i] = (rhs[i] - sum) / rows[i][i]

		rec.Snapshot(rows, rhs,
			fmt.Sprintf("Back substitution: x[%d] = %g", i, x[i]),
			solver.Highlights{Rows: []int{i}})
	}

	return x
}
