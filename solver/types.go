// SPDX-License-Identifier: MIT

// Package solver: shared result types for the direct and iterative methods.
package solver

// Kind distinguishes the two algorithm families.
//
//   - KindDirect    — elimination methods with a fixed, input-independent
//     step structure (Gauss, partial pivoting, Gauss-Jordan).
//   - KindIterative — relaxation methods that converge toward the solution
//     (Jacobi, Gauss-Seidel) and may terminate without converging.
type Kind int

const (
	// KindDirect marks elimination-family results.
	KindDirect Kind = iota

	// KindIterative marks relaxation-family results.
	KindIterative
)

// String returns the canonical lowercase label used by the comparator and
// by UI layers ("direct" / "iterative").
func (k Kind) String() string {
	if k == KindIterative {
		return "iterative"
	}

	return "direct"
}

// Highlights names the rows, columns and cells that are "active" in a step.
// It is purely advisory metadata for rendering; solver logic never reads it.
type Highlights struct {
	// Rows lists active row indices.
	Rows []int
	// Cols lists active column indices.
	Cols []int
	// Cells lists active (row, col) pairs.
	Cells [][2]int
}

// Step is one immutable snapshot in a solve trace.
//
// Direct methods populate Matrix and Vector; iterative methods populate
// XCurrent and ErrorHistory instead. Every field is an independent copy
// taken at the moment of recording: mutating a Step after the fact alters
// nothing else.
type Step struct {
	// Matrix is the coefficient matrix snapshot (direct methods).
	Matrix [][]float64
	// Vector is the right-hand-side snapshot (direct methods).
	Vector []float64
	// Description is a human-readable account of what this step did.
	Description string
	// Highlights marks the active rows/cols/cells for rendering.
	Highlights Highlights
	// XCurrent is the approximate solution at this step (iterative only).
	XCurrent []float64
	// ErrorHistory holds one error value per iteration completed so far
	// (iterative only); its length grows monotonically across steps.
	ErrorHistory []float64
}

// Result is the envelope every solver returns.
type Result struct {
	// Steps is the ordered, non-empty replay trace.
	Steps []Step
	// Solution is the computed x of length n. It may contain NaN/Inf when
	// the input was singular — shape is validated, singularity is not.
	Solution []float64
	// Kind reports which algorithm family produced the result.
	Kind Kind
	// Converged reports whether the tolerance was met (iterative only;
	// always false for direct methods, which do not iterate).
	Converged bool
}
