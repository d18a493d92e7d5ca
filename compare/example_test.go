// SPDX-License-Identifier: MIT

package compare_test

import (
	"fmt"

	"github.com/katalvlaran/linsolve/compare"
	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleCompare runs every solver on a small diagonally dominant system
// and reports the recommended method.
func ExampleCompare() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 3},
	})
	b := []float64{1, 2, 0}

	c, _ := compare.Compare(a, b)

	fmt.Println("best:", c.Best)
	fmt.Println("methods compared:", len(c.Metrics))
	// Output:
	// best: gauss
	// methods compared: 5
}

// ExampleRanking orders the same comparison by display score; the direct
// family leads on a system this small.
func ExampleRanking() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 3},
	})
	b := []float64{1, 2, 0}

	c, _ := compare.Compare(a, b)
	ranked := compare.Ranking(c.Metrics)

	fmt.Println("first:", ranked[0].Key)
	fmt.Println("second:", ranked[1].Key)
	// Output:
	// first: gauss
	// second: pivoting
}

// ExampleCondition measures how sensitive a system is to perturbation.
func ExampleCondition() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{10, 0},
		{0, 1},
	})

	kappa, _ := compare.Condition(a)

	fmt.Printf("condition number: %.0f\n", kappa)
	// Output:
	// condition number: 10
}
