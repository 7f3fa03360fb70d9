// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/homog/matrix"
	"github.com/katalvlaran/homog/term"
)

// ExampleMatrix4x4_Transform moves a symbolic point by a translation and
// reads the result back in Cartesian form.
func ExampleMatrix4x4_Transform() {
	alg := term.Default
	x, y, z := term.Sym("x"), term.Sym("y"), term.Sym("z")

	m := matrix.Translation(alg, term.Int(1), term.Int(2), term.Int(3))
	p := m.Transform(matrix.Point(alg, x, y, z))
	fmt.Println(p)
	// Output:
	// ((x + 1), (y + 2), (z + 3), 1)
}

// ExampleMatrix4x4_Determinant builds an inverse from the exposed building
// blocks: minors, checkerboard signs, transpose and determinant.
func ExampleMatrix4x4_Determinant() {
	alg := term.Default
	m := matrix.Scaling(alg, term.Int(2), term.Int(4), term.Int(5))

	det := m.Determinant()
	inv, err := m.Minors().Cofactors().Transpose().DivideBy(det)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("det =", det)
	_ = matrix.Fprint(os.Stdout, "inverse", inv)
	// Output:
	// det = 40
	// inverse:
	// [1/2, 0, 0, 0]
	// [0, 1/4, 0, 0]
	// [0, 0, 1/5, 0]
	// [0, 0, 0, 1]
}

// ExampleMatrix4x4_Without shows the order-preserving 3×3 reduction.
func ExampleMatrix4x4_Without() {
	fmt.Print(matrix.Identity(nil).Without(1, 2))
	// Output:
	// [1, 0, 0]
	// [0, 0, 0]
	// [0, 0, 1]
}
