// SPDX-License-Identifier: MIT

package iterative

import (
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// GaussSeidel solves Ax = b by Gauss-Seidel fixed-point iteration.
//
// The contract and loop structure match Jacobi exactly; the only difference
// is the sweep: the next iterate starts as a copy of the current one and
// component i immediately uses the already-updated values of components
// j < i (in-place relaxation). On diagonally dominant systems this
// typically converges in fewer iterations than Jacobi, but the sweep is
// inherently sequential.
//
// opts may be nil for the documented defaults. Error semantics are
// identical to Jacobi.
//
// Complexity: O(n²) per iteration.
func GaussSeidel(a matrix.Matrix, b []float64, opts *Options) (*solver.Result, error) {
	return run("GaussSeidel", a, b, opts, seidelSweep)
}

// seidelSweep relaxes in place: fresh values for j < i, old values for j > i.
func seidelSweep(rows [][]float64, rhs, x []float64) []float64 {
	n := len(rows)
	xNew := make([]float64, n)
	copy(xNew, x)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if j != i {
				sum += rows[i][j] * xNew[j]
			}
		}
		xNew[i] = (rhs[i] - sum) / rows[i][i]
	}

	return xNew
}
