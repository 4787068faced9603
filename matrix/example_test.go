package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func ExampleDense_Inverse() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	det, _ := a.Determinant()
	inv, _ := a.Inverse()

	fmt.Println("det =", det)
	fmt.Println(inv)
	// Output:
	// det = -2
	// -2, 1
	// 1.5, -0.5
}

func ExampleSubMatrix() {
	a, _ := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	sub, _ := matrix.SubMatrix(a, []int{1}, []int{0},
		matrix.WithTrace(func(row, col int, v float64) {
			fmt.Printf("copy [%d,%d] = %g\n", row, col, v)
		}))
	fmt.Println(sub)
	// Output:
	// copy [0,0] = 2
	// copy [0,1] = 3
	// copy [1,0] = 8
	// copy [1,1] = 9
	// 2, 3
	// 8, 9
}

func ExampleIndexOf() {
	a, _ := matrix.NewFromRows([][]float64{{0, 7}, {7, 0}})
	if c, ok := matrix.IndexOf(a, 7); ok {
		fmt.Println(c.Row, c.Col)
	}
	// Output:
	// 0 1
}
