// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/scimetric/matrix"
)

// ExampleNormalizeRowsL2 computes the cosine similarity of two count rows
// by normalising them and multiplying with the transpose.
func ExampleNormalizeRowsL2() {
	m, _ := matrix.NewFromRows([][]float64{{1, 0}, {1, 1}})
	y, _, _ := matrix.NormalizeRowsL2(m)
	yt, _ := matrix.Transpose(y)
	sim, _ := matrix.Mul(y, yt)

	v, _ := sim.At(0, 1)
	fmt.Printf("cos = %.4f\n", v)
	// Output:
	// cos = 0.7071
}
