package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleMultiplyStandard multiplies two 2×2 matrices.
func ExampleMultiplyStandard() {
	a, _ := matrix.NewDenseFrom(2, 2, []float32{1, 2, 3, 4})
	b, _ := matrix.NewDenseFrom(2, 2, []float32{5, 6, 7, 8})
	c, err := matrix.MultiplyStandard(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiplyMultiThreaded splits a 3×2 product across two workers.
func ExampleMultiplyMultiThreaded() {
	a, _ := matrix.NewDenseFrom(3, 2, []float32{1, 0, 0, 1, 1, 1})
	b, _ := matrix.NewDenseFrom(2, 2, []float32{2, 3, 4, 5})
	c, _ := matrix.MultiplyMultiThreaded(a, b, 2)
	fmt.Print(c)

	_, err := matrix.MultiplyMultiThreaded(a, b, 0)
	fmt.Println(errors.Is(err, matrix.ErrInvalidArgument))
	// Output:
	// [2, 3]
	// [4, 5]
	// [6, 8]
	// true
}

// ExampleInvert inverts a 2×2 matrix and shows the singular case.
func ExampleInvert() {
	a, _ := matrix.NewDenseFrom(2, 2, []float32{1, 2, 3, 4})
	inv, _ := matrix.Invert(a)
	fmt.Print(inv)

	s, _ := matrix.NewDenseFrom(2, 2, []float32{1, 2, 2, 4})
	_, err := matrix.Invert(s)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// [-2, 1]
	// [1.5, -0.5]
	// true
}

// ExampleDense_Take moves a buffer without copying.
func ExampleDense_Take() {
	src, _ := matrix.NewDenseFrom(1, 3, []float32{1, 2, 3})
	dst := src.Take()
	fmt.Print(dst)
	fmt.Println(src.IsMoved(), src.Rows(), src.Cols())
	// Output:
	// [1, 2, 3]
	// true 0 0
}
