// SPDX-License-Identifier: MIT
// Package matrix: determinant, minor and cofactor kernels, plus the
// order-preserving index exclusion they are built on.
//
// Sign conventions:
//   - AllBut returns the three remaining indices in ASCENDING order. Minor's
//     alternating +,−,+ expansion is only correct for that order; any other
//     order flips signs silently.
//   - Determinant expands along row 0 with signs +,−,+,− by column.
//   - Cofactors applies the (−1)^(row+col) checkerboard to the matrix's own
//     entries. It does not take minors first; compose Minors().Cofactors()
//     for the classical cofactor matrix.

package matrix

import "github.com/katalvlaran/homog/term"

// AllBut returns the indices of 0..3 other than index, ascending.
// It panics on an index outside 0..3.
//
//	AllBut(0) == [1 2 3]
//	AllBut(2) == [0 1 3]
func AllBut(index int) [3]int {
	mustIndex(opAllBut, index, dim)

	var out [3]int
	n := 0
	for i := 0; i < dim; i++ {
		if i == index {
			continue
		}
		out[n] = i
		n++
	}

	return out
}

// Determinant2x2 returns m[r1][c1]·m[r2][c2] − m[r1][c2]·m[r2][c1].
// Rows and columns are used in the order passed, not normalized.
func (m Matrix4x4) Determinant2x2(row1, row2, col1, col2 int) term.Term {
	for _, i := range [...]int{row1, row2, col1, col2} {
		mustIndex(opDeterminant2, i, dim)
	}

	return m.det2(row1, row2, col1, col2)
}

func (m Matrix4x4) det2(r1, r2, c1, c2 int) term.Term {
	alg := m.Algebra()

	return alg.Sub(
		alg.Mul(m.entry(r1, c1), m.entry(r2, c2)),
		alg.Mul(m.entry(r1, c2), m.entry(r2, c1)),
	)
}

// Minor returns the determinant of the 3×3 sub-matrix left after deleting
// row and col, expanded along its first remaining row:
//
//	m[r0][c0]·d(r1,r2,c1,c2) − m[r0][c1]·d(r1,r2,c0,c2) + m[r0][c2]·d(r1,r2,c0,c1)
//
// where r = AllBut(row), c = AllBut(col) and d is Determinant2x2.
// Complexity: 3 det2 + 3 Mul + 1 Sum + 1 Neg calls.
func (m Matrix4x4) Minor(row, col int) term.Term {
	mustIndex(opMinor, row, dim)
	mustIndex(opMinor, col, dim)

	alg := m.Algebra()
	r, c := AllBut(row), AllBut(col)

	return alg.Sum(
		alg.Mul(m.entry(r[0], c[0]), m.det2(r[1], r[2], c[1], c[2])),
		alg.Neg(alg.Mul(m.entry(r[0], c[1]), m.det2(r[1], r[2], c[0], c[2]))),
		alg.Mul(m.entry(r[0], c[2]), m.det2(r[1], r[2], c[0], c[1])),
	)
}

// Determinant is the Laplace expansion along row 0:
// Σ_col m[0][col]·(−1)^col·Minor(0, col).
func (m Matrix4x4) Determinant() term.Term {
	alg := m.Algebra()

	var signed [dim]term.Term
	for col := 0; col < dim; col++ {
		minor := m.Minor(0, col)
		if col%2 == 1 {
			minor = alg.Neg(minor)
		}
		signed[col] = alg.Mul(m.entry(0, col), minor)
	}

	return alg.Sum(signed[:]...)
}

// Minors returns the matrix whose [row][col] entry is Minor(row, col).
func (m Matrix4x4) Minors() Matrix4x4 {
	out := Matrix4x4{alg: m.alg}
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out.e[r][c] = m.Minor(r, c)
		}
	}

	return out
}

// Cofactors negates every entry whose row+col is odd and keeps the rest.
// It works on the receiver's own entries (see the file comment).
func (m Matrix4x4) Cofactors() Matrix4x4 {
	alg := m.Algebra()
	out := Matrix4x4{alg: m.alg}
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if (r+c)%2 == 0 {
				out.e[r][c] = m.entry(r, c)
				continue
			}
			out.e[r][c] = alg.Neg(m.entry(r, c))
		}
	}

	return out
}

// Without deletes skipRow and skipCol, keeping the relative order of what is
// left. It panics on an index outside 0..3.
func (m Matrix4x4) Without(skipRow, skipCol int) Matrix3x3 {
	mustIndex(opWithout, skipRow, dim)
	mustIndex(opWithout, skipCol, dim)

	rows, cols := AllBut(skipRow), AllBut(skipCol)
	var out Matrix3x3
	for i, r := range rows {
		for j, c := range cols {
			out.e[i][j] = m.entry(r, c)
		}
	}

	return out
}
