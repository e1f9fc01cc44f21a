package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleInverse demonstrates the adjugate inverse of a 3×3 matrix.
func ExampleInverse() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
	defer a.Release()

	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer inv.Release()

	want, _ := matrix.NewDenseFromRows([][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}})
	fmt.Println(matrix.Equal(inv, want))

	// Output:
	// true
}

// ExampleDeterminant shows the sign flip caused by row interchanges.
func ExampleDeterminant() {
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	det, _ := matrix.Determinant(a)
	fmt.Println(det)

	// Output:
	// -1
}

// ExampleInverse_singular shows how callers detect a non-invertible input.
func ExampleInverse_singular() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {0, 0}})
	_, err := matrix.Inverse(a)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	fmt.Println(err)

	// Output:
	// true
	// Inverse: matrix: singular matrix
}

// ExampleMul multiplies a 3×2 by a 2×3 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 4}, {2, 5}, {3, 6}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, -1, 1}, {2, 3, 4}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)

	// Output:
	// [9, 11, 17]
	// [12, 13, 22]
	// [15, 15, 27]
}
