// SPDX-License-Identifier: MIT
// Package iterative: shared relaxation runner. Jacobi and GaussSeidel differ
// only in the sweep function threaded through run; validation, convergence
// testing, error-history bookkeeping and step recording are identical.

package iterative

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// sweep computes the next iterate from the working system and the previous
// iterate. It must return a freshly allocated vector and leave x untouched.
type sweep func(rows [][]float64, rhs, x []float64) []float64

// run executes the common fixed-point loop:
//
//	x₀ = 0 (recorded as the initial-guess step)
//	repeat: xNew = sweep(x); error = ‖xNew − x‖₂; record; x = xNew
//	stop when error < tolerance (converged) or the budget is exhausted.
//
// The error history grows by exactly one entry per iteration and every
// recorded step carries its own copy, so the trace satisfies the
// monotone-history invariant regardless of when the caller inspects it.
func run(name string, a matrix.Matrix, b []float64, opts *Options, next sweep) (*solver.Result, error) {
	// Resolve options: nil means defaults, anything else is validated.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	// Shape gate, then owned working copies.
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rows, err := matrix.RowsOf(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rhs := make([]float64, len(b))
	copy(rhs, b)

	n := len(rows)
	x := make([]float64, n) // zero initial guess

	rec := solver.NewRecorder()
	rec.Iterate(x, nil, "Initial guess: x = 0")

	history := make([]float64, 0, o.MaxIterations)
	converged := false
	var iter int
	var errNorm float64
	for iter = 1; iter <= o.MaxIterations; iter++ {
		xNew := next(rows, rhs, x)

		// Euclidean distance between successive iterates.
		errNorm = floats.Distance(xNew, x, 2)
		history = append(history, errNorm)

		rec.Iterate(xNew, history, fmt.Sprintf("Iteration %d: Error = %g", iter, errNorm))
		x = xNew

		if errNorm < o.Tolerance {
			converged = true

			break
		}
	}

	return &solver.Result{
		Steps:     rec.Steps(),
		Solution:  x,
		Kind:      solver.KindIterative,
		Converged: converged,
	}, nil
}
