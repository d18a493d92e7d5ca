// SPDX-License-Identifier: MIT

package direct_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGaussJordan_MatchesGauss verifies that Gauss-Jordan and Gauss agree
// on the reference system despite their different step structures.
func TestGaussJordan_MatchesGauss(t *testing.T) {
	a, b := newSystem3(t)

	ge, err := direct.Gauss(a, b)
	require.NoError(t, err)
	gj, err := direct.GaussJordan(a, b)
	require.NoError(t, err)

	require.Len(t, gj.Solution, len(ge.Solution))
	for i := range ge.Solution {
		assert.InDelta(t, ge.Solution[i], gj.Solution[i], 1e-9,
			"solutions must agree at component %d", i)
	}
	assert.NotEqual(t, len(ge.Steps), len(gj.Steps),
		"the two methods have different trace shapes")
}

// TestGaussJordan_TerminalIdentity checks the final recorded step: the
// matrix must be the identity and the vector must equal the solution.
func TestGaussJordan_TerminalIdentity(t *testing.T) {
	a, b := newSystem3(t)

	res, err := direct.GaussJordan(a, b)
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)

	last := res.Steps[len(res.Steps)-1]
	assert.Contains(t, last.Description, "RREF")

	n := len(last.Matrix)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, last.Matrix[i][j], 1e-9,
				"terminal matrix must be the identity at (%d,%d)", i, j)
		}
	}
	assert.Equal(t, res.Solution, last.Vector,
		"terminal right-hand side must equal the solution")
}

// TestGaussJordan_NormalizeStepRecorded verifies the per-pivot
// normalization step is present and scales the pivot to exactly 1.
func TestGaussJordan_NormalizeStepRecorded(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	require.NoError(t, err)

	res, err := direct.GaussJordan(a, []float64{2, 8})
	require.NoError(t, err)

	// Steps for k=0: pivot, normalize, eliminate row 1.
	require.Greater(t, len(res.Steps), 2)
	norm := res.Steps[1]
	assert.Contains(t, norm.Description, "Normalized")
	assert.Equal(t, 1.0, norm.Matrix[0][0], "pivot must be scaled to 1")
	assert.Equal(t, []float64{1, 2}, res.Solution)
}

// TestGaussJordan_PivotingRecovery verifies Gauss-Jordan inherits partial
// pivoting and solves the zero-leading-pivot system exactly.
func TestGaussJordan_PivotingRecovery(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	res, err := direct.GaussJordan(a, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, res.Solution)
}
