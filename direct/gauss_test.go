// SPDX-License-Identifier: MIT

package direct_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSystem3 builds the reference diagonally dominant 3×3 system used across
// the solver tests.
func newSystem3(t *testing.T) (*matrix.Dense, []float64) {
	t.Helper()
	a, err := matrix.NewDenseFromRows([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 3},
	})
	require.NoError(t, err)

	return a, []float64{1, 2, 0}
}

// TestGauss_RoundTrip verifies A·x ≈ b for the reference system.
func TestGauss_RoundTrip(t *testing.T) {
	a, b := newSystem3(t)

	res, err := direct.Gauss(a, b)
	require.NoError(t, err)
	require.Equal(t, solver.KindDirect, res.Kind)
	require.Len(t, res.Solution, 3)

	norm, err := matrix.ResidualNorm(a, res.Solution, b)
	require.NoError(t, err)
	assert.Less(t, norm, 1e-9, "direct solution must satisfy A·x ≈ b")
}

// TestGauss_TraceShape pins the deterministic step structure for n=3:
// n pivot steps, n(n-1)/2 elimination steps, one back-substitution header
// and n back-substitution steps.
func TestGauss_TraceShape(t *testing.T) {
	a, b := newSystem3(t)

	res, err := direct.Gauss(a, b)
	require.NoError(t, err)
	assert.Len(t, res.Steps, 3+3+1+3, "step count must follow the fixed formula")

	// The final step must hold the triangular system back substitution ran on.
	last := res.Steps[len(res.Steps)-1]
	require.Len(t, last.Matrix, 3)
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			assert.InDelta(t, 0.0, last.Matrix[i][j], 1e-12,
				"final step must be upper triangular at (%d,%d)", i, j)
		}
	}
}

// TestGauss_SnapshotIsolation mutates an early recorded step and verifies
// later steps and the solution are unaffected.
func TestGauss_SnapshotIsolation(t *testing.T) {
	a, b := newSystem3(t)

	res, err := direct.Gauss(a, b)
	require.NoError(t, err)

	want := make([]float64, len(res.Solution))
	copy(want, res.Solution)
	lastBefore := res.Steps[len(res.Steps)-1].Matrix[2][2]

	res.Steps[0].Matrix[0][0] = math.NaN()
	res.Steps[0].Vector[0] = math.NaN()

	assert.Equal(t, want, res.Solution, "solution must not alias step storage")
	assert.Equal(t, lastBefore, res.Steps[len(res.Steps)-1].Matrix[2][2],
		"steps must not alias each other")
}

// TestGauss_ZeroPivotPropagates confirms the documented garbage-in/
// garbage-out contract: a zero leading pivot yields NaN/Inf, not an error.
func TestGauss_ZeroPivotPropagates(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	res, err := direct.Gauss(a, []float64{1, 2})
	require.NoError(t, err, "singularity is not signaled as an error")

	finite := true
	for _, v := range res.Solution {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	}
	assert.False(t, finite, "zero pivot must propagate NaN/Inf into the solution")
	assert.NotEmpty(t, res.Steps, "the trace is still returned")
}

// TestGauss_ShapeErrors checks the boundary validation sentinels.
func TestGauss_ShapeErrors(t *testing.T) {
	rect, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	_, err = direct.Gauss(rect, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	square, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = direct.Gauss(square, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = direct.Gauss(nil, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGauss_InputNotMutated ensures the caller's matrix and vector survive
// a solve untouched.
func TestGauss_InputNotMutated(t *testing.T) {
	a, b := newSystem3(t)
	before := a.ToRows()
	bBefore := append([]float64(nil), b...)

	_, err := direct.Gauss(a, b)
	require.NoError(t, err)

	assert.Equal(t, before, a.ToRows(), "coefficient matrix must not be mutated")
	assert.Equal(t, bBefore, b, "right-hand side must not be mutated")
}

// TestGauss_OneByOne covers the n=1 edge: a single division.
func TestGauss_OneByOne(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{5}})
	require.NoError(t, err)

	res, err := direct.Gauss(a, []float64{10})
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, res.Solution)
	assert.NotEmpty(t, res.Steps)
}
