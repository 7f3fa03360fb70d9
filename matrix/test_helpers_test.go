// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures (integer and symbolic matrices).
//   - Comparison helpers that fail the test with a readable rendering.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homog/matrix"
	"github.com/katalvlaran/homog/term"
)

// alg is the algebra every fixture is built with.
var alg = term.Default

// fixtureA has determinant −2; fixtureB has determinant −29.
var (
	fixtureA = [4][4]int64{
		{2, 0, 1, 3},
		{1, -1, 0, 2},
		{0, 3, 1, -2},
		{4, 1, -1, 0},
	}
	fixtureB = [4][4]int64{
		{1, 2, 0, -1},
		{0, 1, 3, 2},
		{-2, 0, 1, 1},
		{1, -1, 0, 3},
	}
)

// num is shorthand for an integer Term.
func num(v int64) term.Term { return term.Int(v) }

// IntMatrix builds a Matrix4x4 of integer Numbers.
func IntMatrix(t testing.TB, vals [4][4]int64) matrix.Matrix4x4 {
	t.Helper()

	rows := make([][]term.Term, 4)
	for i := range vals {
		rows[i] = make([]term.Term, 4)
		for j, v := range vals[i] {
			rows[i][j] = num(v)
		}
	}
	m, err := matrix.FromRows(alg, rows)
	require.NoError(t, err)

	return m
}

// MarkerMatrix builds a matrix whose entry (i,j) is the Symbol "m<i><j>".
func MarkerMatrix() matrix.Matrix4x4 {
	var e [4][4]term.Term
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			e[i][j] = term.Sym(fmt.Sprintf("m%d%d", i, j))
		}
	}

	return matrix.NewMatrix4x4(alg, e)
}

// SymVector builds (x, y, z, w) from Symbols.
func SymVector() matrix.Vector4 {
	return matrix.Vec4(alg, term.Sym("x"), term.Sym("y"), term.Sym("z"), term.Sym("w"))
}

// RequireMatrixEqual fails with both renderings when want and got differ.
func RequireMatrixEqual(t *testing.T, want, got matrix.Matrix4x4) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// RequireVectorEqual fails with both renderings when want and got differ.
func RequireVectorEqual(t *testing.T, want, got matrix.Vector4) {
	t.Helper()
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

// RequireTermEqual checks structural equality of two Terms.
func RequireTermEqual(t *testing.T, want, got term.Term) {
	t.Helper()
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

// RequireEquivalent checks want − got expands to zero, for symbolic
// results whose grouping may differ from a hand-written expectation.
func RequireEquivalent(t *testing.T, want, got term.Term) {
	t.Helper()
	diff := term.Expand(alg.Sub(want, got))
	require.True(t, alg.IsZero(diff), "want %s, got %s (diff %s)", want, got, diff)
}

// det3 is the rule of Sarrus on a Matrix3x3 of integer Numbers.
func det3(t *testing.T, m matrix.Matrix3x3) int64 {
	t.Helper()

	var v [3][3]int64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n, ok := m.At(i, j).(term.Number)
			require.True(t, ok, "entry (%d,%d) is not a Number", i, j)
			require.True(t, n.IsInt())
			v[i][j] = n.Rat().Num().Int64()
		}
	}

	return v[0][0]*v[1][1]*v[2][2] + v[0][1]*v[1][2]*v[2][0] + v[0][2]*v[1][0]*v[2][1] -
		v[0][2]*v[1][1]*v[2][0] - v[0][0]*v[1][2]*v[2][1] - v[0][1]*v[1][0]*v[2][2]
}
