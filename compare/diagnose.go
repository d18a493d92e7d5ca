// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// Condition reports the 2-norm condition number κ₂(a) of a square matrix.
//
// A large κ₂ flags a system for which the solver comparison is fragile:
// direct methods lose digits and iterative methods converge slowly or not
// at all. The value is diagnostic only — Compare does not gate on it.
//
// Singular matrices report a very large, possibly infinite, value.
//
// Errors:
//   - matrix.ErrNilMatrix — a is nil.
//   - matrix.ErrNonSquare — a is not square.
//
// Complexity: O(n³) (singular value decomposition).
func Condition(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("Condition: %w", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("Condition: %w", err)
	}

	rows, err := matrix.RowsOf(a)
	if err != nil {
		return 0, fmt.Errorf("Condition: %w", err)
	}

	n := len(rows)
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.Cond(mat.NewDense(n, n, flat), 2), nil
}
