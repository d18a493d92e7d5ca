// SPDX-License-Identifier: MIT

package iterative_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGaussSeidel_ConvergesOnDominantSystem mirrors the Jacobi smoke test.
func TestGaussSeidel_ConvergesOnDominantSystem(t *testing.T) {
	a, b := newDominant3(t)

	res, err := iterative.GaussSeidel(a, b, nil)
	require.NoError(t, err)

	assert.True(t, res.Converged)

	norm, err := matrix.ResidualNorm(a, res.Solution, b)
	require.NoError(t, err)
	assert.Less(t, norm, 0.01)
}

// TestGaussSeidel_NoSlowerThanJacobi pins the classic property on the
// reference system: in-place relaxation needs no more iterations than
// Jacobi's strict previous-iterate sweep.
func TestGaussSeidel_NoSlowerThanJacobi(t *testing.T) {
	a, b := newDominant3(t)

	jac, err := iterative.Jacobi(a, b, nil)
	require.NoError(t, err)
	sei, err := iterative.GaussSeidel(a, b, nil)
	require.NoError(t, err)

	require.True(t, jac.Converged)
	require.True(t, sei.Converged)

	jacIters := len(jac.Steps[len(jac.Steps)-1].ErrorHistory)
	seiIters := len(sei.Steps[len(sei.Steps)-1].ErrorHistory)
	assert.LessOrEqual(t, seiIters, jacIters,
		"Gauss-Seidel must converge in no more iterations than Jacobi")
}

// TestGaussSeidel_SweepUsesFreshValues distinguishes the two sweeps on a
// system where a single iteration already differs: with in-place updates
// the second component sees the freshly computed first one.
func TestGaussSeidel_SweepUsesFreshValues(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{1, 2},
	})
	require.NoError(t, err)
	b := []float64{2, 3}

	opts := iterative.DefaultOptions()
	opts.MaxIterations = 1

	jac, err := iterative.Jacobi(a, b, &opts)
	require.NoError(t, err)
	sei, err := iterative.GaussSeidel(a, b, &opts)
	require.NoError(t, err)

	// Jacobi's first sweep uses x = 0 everywhere: xNew = [1, 1.5].
	assert.Equal(t, []float64{1, 1.5}, jac.Solution)
	// Gauss-Seidel's second component already sees xNew[0] = 1: (3-1)/2 = 1.
	assert.Equal(t, []float64{1, 1}, sei.Solution)
}

// TestGaussSeidel_ZeroBudget mirrors the Jacobi zero-budget contract.
func TestGaussSeidel_ZeroBudget(t *testing.T) {
	a, b := newDominant3(t)
	opts := iterative.DefaultOptions()
	opts.MaxIterations = 0

	res, err := iterative.GaussSeidel(a, b, &opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Len(t, res.Steps, 1)
}
