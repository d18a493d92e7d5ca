// SPDX-License-Identifier: MIT
// Package matrix: residual kernels shared by the comparator and the test
// suites. All functions perform strict fail-fast validation, never mutate
// their operands and return plain sentinels wrapped via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opResidual     = "Residual"
	opResidualNorm = "ResidualNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Cols().
//   - Stage 2: *Dense fast-path runs one floats.Dot per row over the flat
//     backing slice; the generic fallback accumulates via At in fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop order; inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validators).
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Pass a concrete *Dense to hit the contiguous floats.Dot path.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i int
		for i = 0; i < d.r; i++ {
			y[i] = floats.Dot(d.data[i*d.c:(i+1)*d.c], x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual computes r = A*x - b, the defect of a candidate solution.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (x and b must both
// have length A.Rows()). Complexity: O(n²).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	// Validate the full system shape once; x reuses the same length contract.
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}

	// r = A*x
	r, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	// r -= b
	floats.Sub(r, b)

	return r, nil
}

// ResidualNorm computes the Euclidean norm ‖A*x - b‖₂, the single scalar
// used by tests and callers to judge a candidate solution.
// Errors: as Residual. Complexity: O(n²).
func ResidualNorm(a Matrix, x, b []float64) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, matrixErrorf(opResidualNorm, err)
	}

	return floats.Norm(r, 2), nil
}
