// SPDX-License-Identifier: MIT

package iterative

import (
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Jacobi solves Ax = b by Jacobi fixed-point iteration.
//
// Each sweep computes, for every i,
//
//	xNew[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// using only the previous iteration's full vector: no component observes
// another component's update from the same sweep. That strict data
// dependency is what makes Jacobi trivially parallelizable, at the price
// of typically needing more iterations than Gauss-Seidel.
//
// opts may be nil for the documented defaults (tolerance 0.001, 50
// iterations). A zero diagonal entry divides by zero and propagates
// NaN/Inf; shape violations return sentinels from the matrix package.
//
// Complexity: O(n²) per iteration.
func Jacobi(a matrix.Matrix, b []float64, opts *Options) (*solver.Result, error) {
	return run("Jacobi", a, b, opts, jacobiSweep)
}

// jacobiSweep computes the next iterate strictly from the previous one.
func jacobiSweep(rows [][]float64, rhs, x []float64) []float64 {
	n := len(rows)
	xNew := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if j != i {
				sum += rows[i][j] * x[j]
			}
		}
		xNew[i] = (rhs[i] - sum) / rows[i][i]
	}

	return xNew
}
