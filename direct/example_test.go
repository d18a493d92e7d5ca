// SPDX-License-Identifier: MIT

package direct_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleGauss solves a small well-conditioned system and shows the fixed
// trace shape: n pivot steps, n(n-1)/2 eliminations, one back-substitution
// header plus n back-substitution steps.
func ExampleGauss() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})

	res, err := direct.Gauss(a, []float64{3, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("steps=%d\n", len(res.Steps))
	fmt.Printf("x = [%.1f %.1f]\n", res.Solution[0], res.Solution[1])
	// Output:
	// steps=6
	// x = [0.8 1.4]
}

// ExampleGaussPivot shows partial pivoting rescuing a system whose leading
// pivot is zero — the plain solver would only produce NaN here.
func ExampleGaussPivot() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{1, 0},
	})

	res, err := direct.GaussPivot(a, []float64{1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("first step:", res.Steps[0].Description)
	fmt.Printf("x = %v\n", res.Solution)
	// Output:
	// first step: Swapped row 0 with row 1 (partial pivoting)
	// x = [2 1]
}

// ExampleGaussJordan reduces the matrix all the way to the identity, so the
// solution is read directly off the transformed right-hand side.
func ExampleGaussJordan() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 4},
	})

	res, err := direct.GaussJordan(a, []float64{2, 8})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	last := res.Steps[len(res.Steps)-1]
	fmt.Println("last step:", last.Description)
	fmt.Printf("x = %v\n", res.Solution)
	// Output:
	// last step: RREF complete: matrix reduced to identity
	// x = [1 2]
}
