// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types. Errors live in errors.go and
// validators in validators.go per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Implementations must keep At/Set O(1) and must return sentinel errors
// (never panic) on out-of-range indices. Clone must produce a deep copy
// that shares no storage with the receiver — solvers rely on this to take
// defensive snapshots.
type Matrix interface {
	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns the element at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Clone returns a deep, independent copy.
	Clone() Matrix
}
