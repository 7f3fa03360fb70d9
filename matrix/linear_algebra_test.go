// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the determinant, minor and
// cofactor kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homog/matrix"
	"github.com/katalvlaran/homog/term"
)

func TestAllBut(t *testing.T) {
	for index, want := range map[int][3]int{
		0: {1, 2, 3},
		1: {0, 2, 3},
		2: {0, 1, 3},
		3: {0, 1, 2},
	} {
		require.Equal(t, want, matrix.AllBut(index), "AllBut(%d)", index)
	}

	require.PanicsWithError(t, "AllBut: index 4: matrix: index out of range", func() { matrix.AllBut(4) })
	require.Panics(t, func() { matrix.AllBut(-1) })
}

// LinearAlgebraSuite groups determinant-family scenarios on shared fixtures.
type LinearAlgebraSuite struct {
	suite.Suite
	identity matrix.Matrix4x4
	markers  matrix.Matrix4x4
	a        matrix.Matrix4x4
}

func (s *LinearAlgebraSuite) SetupTest() {
	s.identity = matrix.Identity(alg)
	s.markers = MarkerMatrix()
	s.a = IntMatrix(s.T(), fixtureA)
}

func (s *LinearAlgebraSuite) TestDeterminant_Identity() {
	RequireTermEqual(s.T(), alg.One(), s.identity.Determinant())
}

// TestMinors_Identity: one on the diagonal, zero elsewhere.
func (s *LinearAlgebraSuite) TestMinors_Identity() {
	RequireMatrixEqual(s.T(), s.identity, s.identity.Minors())
}

func (s *LinearAlgebraSuite) TestDeterminant_Numeric() {
	RequireTermEqual(s.T(), num(-2), s.a.Determinant())
	RequireTermEqual(s.T(), num(-29), IntMatrix(s.T(), fixtureB).Determinant())
}

// TestDeterminant_Multiplicative checks det(AB) == det(A)·det(B).
func (s *LinearAlgebraSuite) TestDeterminant_Multiplicative() {
	b := IntMatrix(s.T(), fixtureB)
	RequireTermEqual(s.T(), num(58), s.a.MultiplyMatrix(b).Determinant())
}

func (s *LinearAlgebraSuite) TestDeterminant_Diagonal() {
	a, b, c, d := term.Sym("a"), term.Sym("b"), term.Sym("c"), term.Sym("d")
	m := matrix.Scaling(alg, a, b, c).MultiplyMatrix(
		matrix.NewMatrix4x4(alg, [4][4]term.Term{
			{num(1), num(0), num(0), num(0)},
			{num(0), num(1), num(0), num(0)},
			{num(0), num(0), num(1), num(0)},
			{num(0), num(0), num(0), d},
		}))

	RequireTermEqual(s.T(), alg.Mul(alg.Mul(a, b), alg.Mul(c, d)), m.Determinant())
}

// TestDeterminant_TransposeInvariant checks det(mᵀ) == det(m) symbolically.
func (s *LinearAlgebraSuite) TestDeterminant_TransposeInvariant() {
	RequireEquivalent(s.T(), s.markers.Determinant(), s.markers.Transpose().Determinant())
}

// TestMinor_MatchesSarrus compares every Minor with the rule of Sarrus on
// the corresponding Without sub-matrix.
func (s *LinearAlgebraSuite) TestMinor_MatchesSarrus() {
	want := [4][4]int64{
		{-6, -10, -14, -8},
		{-14, -24, -32, -20},
		{5, 9, 11, 7},
		{1, 1, 1, 1},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s.Run(fmt.Sprintf("%d,%d", r, c), func() {
				require.Equal(s.T(), want[r][c], det3(s.T(), s.a.Without(r, c)))
				RequireTermEqual(s.T(), num(want[r][c]), s.a.Minor(r, c))
			})
		}
	}
	RequireMatrixEqual(s.T(), IntMatrix(s.T(), want), s.a.Minors())
}

func (s *LinearAlgebraSuite) TestMinor_SymbolicExpansion() {
	m := s.markers
	sym := func(r, c int) term.Term { return term.Sym(fmt.Sprintf("m%d%d", r, c)) }
	d2 := func(r1, r2, c1, c2 int) term.Term {
		return alg.Sub(alg.Mul(sym(r1, c1), sym(r2, c2)), alg.Mul(sym(r1, c2), sym(r2, c1)))
	}

	// Minor(1, 2): rows {0,2,3}, cols {0,1,3}
	want := alg.Sum(
		alg.Mul(sym(0, 0), d2(2, 3, 1, 3)),
		alg.Neg(alg.Mul(sym(0, 1), d2(2, 3, 0, 3))),
		alg.Mul(sym(0, 3), d2(2, 3, 0, 1)),
	)
	RequireTermEqual(s.T(), want, m.Minor(1, 2))
}

// TestDeterminant2x2_Order: swapping the rows negates the result.
func (s *LinearAlgebraSuite) TestDeterminant2x2_Order() {
	d01 := s.markers.Determinant2x2(0, 1, 0, 1)
	d10 := s.markers.Determinant2x2(1, 0, 0, 1)

	want := alg.Sub(
		alg.Mul(term.Sym("m00"), term.Sym("m11")),
		alg.Mul(term.Sym("m01"), term.Sym("m10")),
	)
	RequireTermEqual(s.T(), want, d01)
	RequireEquivalent(s.T(), alg.Neg(d01), d10)

	RequireTermEqual(s.T(), num(-2), s.a.Determinant2x2(0, 1, 0, 1))
	require.Panics(s.T(), func() { s.a.Determinant2x2(0, 4, 0, 1) })
}

// TestCofactors_Checkerboard negates exactly the (row+col)-odd entries.
func (s *LinearAlgebraSuite) TestCofactors_Checkerboard() {
	got := s.markers.Cofactors()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := s.markers.At(r, c)
			if (r+c)%2 == 1 {
				want = alg.Neg(want)
			}
			RequireTermEqual(s.T(), want, got.At(r, c))
		}
	}
}

// TestCofactors_OwnEntries shows Cofactors does not take minors.
func (s *LinearAlgebraSuite) TestCofactors_OwnEntries() {
	RequireMatrixEqual(s.T(), s.identity, s.identity.Cofactors())
	RequireTermEqual(s.T(), num(0), s.a.Cofactors().At(0, 1))
	RequireTermEqual(s.T(), num(-3), s.a.Cofactors().At(0, 3))
}

// TestAdjugate checks A · adj(A) == det(A)·I with adj = (Minors → Cofactors)ᵀ,
// which pins down every sign convention at once.
func (s *LinearAlgebraSuite) TestAdjugate() {
	adj := s.a.Minors().Cofactors().Transpose()
	det := s.a.Determinant()

	RequireMatrixEqual(s.T(), s.identity.ScaleBy(det), s.a.MultiplyMatrix(adj))

	inv, err := adj.DivideBy(det)
	require.NoError(s.T(), err)
	RequireMatrixEqual(s.T(), s.identity, s.a.MultiplyMatrix(inv))
	RequireMatrixEqual(s.T(), s.identity, inv.MultiplyMatrix(s.a))
}

// TestWithout_Identity removes row 1 and column 2 of I₄.
func (s *LinearAlgebraSuite) TestWithout_Identity() {
	got := s.identity.Without(1, 2)
	want := matrix.NewMatrix3x3([3][3]term.Term{
		{num(1), num(0), num(0)},
		{num(0), num(0), num(0)},
		{num(0), num(0), num(1)},
	})

	require.True(s.T(), want.Equal(got), "got:\n%s", got)
}

func (s *LinearAlgebraSuite) TestWithout_PreservesOrder() {
	got := s.markers.Without(0, 3)
	require.Equal(s.T(), "[m10, m11, m12]\n[m20, m21, m22]\n[m30, m31, m32]\n", got.String())
	require.Panics(s.T(), func() { s.markers.Without(4, 0) })
	require.Panics(s.T(), func() { got.At(3, 0) })
}

func TestLinearAlgebraSuite(t *testing.T) {
	suite.Run(t, new(LinearAlgebraSuite))
}
