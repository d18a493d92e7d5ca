// SPDX-License-Identifier: MIT

// Package iterative: options and sentinel errors for the relaxation solvers.
package iterative

import (
	"errors"
	"math"
)

// Documented defaults — single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the convergence threshold on the Euclidean
	// distance between successive iterates.
	DefaultTolerance = 0.001

	// DefaultMaxIterations caps the number of relaxation sweeps.
	DefaultMaxIterations = 50
)

// Sentinel errors returned by the relaxation solvers.
var (
	// ErrBadTolerance indicates a tolerance that is not a positive finite
	// number.
	ErrBadTolerance = errors.New("iterative: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates a negative iteration budget. Zero is
	// legal: it returns the initial guess with Converged=false.
	ErrBadMaxIterations = errors.New("iterative: MaxIterations must be non-negative")
)

// Options configures a relaxation solve.
//
// Fields:
//   - Tolerance     — stop once ‖x_{k+1} − x_k‖₂ < Tolerance.
//   - MaxIterations — hard cap on sweeps; reaching it yields Converged=false.
//
// Example:
//
//	opts := iterative.DefaultOptions()
//	opts.Tolerance = 1e-6
//	res, err := iterative.Jacobi(a, b, &opts)
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// validate checks the option invariants, returning a sentinel on violation.
func (o Options) validate() error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return ErrBadTolerance
	}
	if o.MaxIterations < 0 {
		return ErrBadMaxIterations
	}

	return nil
}
