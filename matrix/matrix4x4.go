// SPDX-License-Identifier: MIT

// Package matrix: the immutable 4×4 Term matrix and its composition kernels.
//
// Shape is a property of the type ([4][4]term.Term); only the slice-based
// FromRows path needs a runtime check. All methods are pure: they read the
// receiver and return a fresh value. Loop order is fixed (row → col → k) so the
// sequence of algebra calls, and hence the shape of symbolic results, is
// deterministic.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/homog/term"
)

// Matrix4x4 is an immutable 4×4 grid of Terms, addressed [row][col].
type Matrix4x4 struct {
	alg term.Algebra
	e   [dim][dim]term.Term
}

// NewMatrix4x4 wraps a 4×4 array. The array is copied by value, so later
// writes by the caller to their own array do not affect the matrix.
// A nil alg selects term.Default.
func NewMatrix4x4(alg term.Algebra, elements [dim][dim]term.Term) Matrix4x4 {
	return Matrix4x4{alg: algebraOr(alg), e: elements}
}

// FromRows builds a matrix from a row-major slice of slices.
//
// Errors:
//   - ErrBadShape (wrapped with "FromRows") unless rows is exactly 4×4.
//
// Complexity: O(16).
func FromRows(alg term.Algebra, rows [][]term.Term) (Matrix4x4, error) {
	if err := ValidateRows(rows); err != nil {
		return Matrix4x4{}, matrixErrorf(opFromRows, err)
	}

	m := Matrix4x4{alg: algebraOr(alg)}
	for i := 0; i < dim; i++ {
		copy(m.e[i][:], rows[i])
	}

	return m, nil
}

// MustFromRows is FromRows that panics on a malformed row set.
// Use it where the shape is a compile-time fact of the caller.
func MustFromRows(alg term.Algebra, rows [][]term.Term) Matrix4x4 {
	m, err := FromRows(alg, rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Algebra returns the algebra the matrix computes with.
func (m Matrix4x4) Algebra() term.Algebra { return algebraOr(m.alg) }

// At returns the entry at (row, col). It panics on an index outside 0..3.
func (m Matrix4x4) At(row, col int) term.Term {
	mustIndex(opAt, row, dim)
	mustIndex(opAt, col, dim)

	return m.entry(row, col)
}

// Row returns row i by value.
func (m Matrix4x4) Row(i int) [dim]term.Term {
	mustIndex(opRow, i, dim)

	var out [dim]term.Term
	for j := 0; j < dim; j++ {
		out[j] = m.entry(i, j)
	}

	return out
}

// Col returns column j by value.
func (m Matrix4x4) Col(j int) [dim]term.Term {
	mustIndex(opCol, j, dim)

	var out [dim]term.Term
	for i := 0; i < dim; i++ {
		out[i] = m.entry(i, j)
	}

	return out
}

// Elements returns a copy of the 16 entries.
func (m Matrix4x4) Elements() [dim][dim]term.Term {
	var out [dim][dim]term.Term
	for i := 0; i < dim; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// Equal reports entry-wise structural equality.
func (m Matrix4x4) Equal(other Matrix4x4) bool {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if !m.entry(i, j).Equal(other.entry(i, j)) {
				return false
			}
		}
	}

	return true
}

// Transform returns m·v, treating v as a column vector:
// result[i] = Σ_k m[i][k]·v[k] with k running over x, y, z, w.
// Complexity: 16 Mul + 4 Sum calls.
func (m Matrix4x4) Transform(v Vector4) Vector4 {
	alg := m.Algebra()
	out := Vector4{alg: alg}

	var products [dim]term.Term
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			products[k] = alg.Mul(m.entry(i, k), v.comp(k))
		}
		out.comps[i] = alg.Sum(products[:]...)
	}

	return out
}

// ScaleBy multiplies all 16 entries by factor.
// If factor is the algebra's One the receiver is returned as is, with no
// algebra calls at all.
func (m Matrix4x4) ScaleBy(factor term.Term) Matrix4x4 {
	alg := m.Algebra()
	if alg.IsOne(factor) {
		return m
	}

	out := Matrix4x4{alg: alg}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out.e[i][j] = alg.Mul(m.entry(i, j), factor)
		}
	}

	return out
}

// DivideBy divides all 16 entries by factor, short-circuiting on One like
// ScaleBy. A division fault from the algebra is returned wrapped with
// "DivideBy" and the partially built result is discarded.
func (m Matrix4x4) DivideBy(factor term.Term) (Matrix4x4, error) {
	alg := m.Algebra()
	if alg.IsOne(factor) {
		return m, nil
	}

	out := Matrix4x4{alg: alg}
	var err error
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if out.e[i][j], err = alg.Div(m.entry(i, j), factor); err != nil {
				return Matrix4x4{}, matrixErrorf(opDivideBy, fmt.Errorf("entry (%d,%d): %w", i, j, err))
			}
		}
	}

	return out, nil
}

// MultiplyMatrix returns the product m·other.
// Entry [r][c] is CrossMultiply(other, r, c).
// Complexity: 64 Mul + 16 Sum calls.
func (m Matrix4x4) MultiplyMatrix(other Matrix4x4) Matrix4x4 {
	out := Matrix4x4{alg: m.Algebra()}
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out.e[r][c] = m.crossMultiply(other, r, c)
		}
	}

	return out
}

// CrossMultiply is the row-by-column primitive: the dot product of row `row`
// of m with column `col` of other, as a single Sum of four products.
// It panics on an index outside 0..3.
func (m Matrix4x4) CrossMultiply(other Matrix4x4, row, col int) term.Term {
	mustIndex(opCross, row, dim)
	mustIndex(opCross, col, dim)

	return m.crossMultiply(other, row, col)
}

func (m Matrix4x4) crossMultiply(other Matrix4x4, row, col int) term.Term {
	alg := m.Algebra()

	return alg.Sum(
		alg.Mul(m.entry(row, 0), other.entry(0, col)),
		alg.Mul(m.entry(row, 1), other.entry(1, col)),
		alg.Mul(m.entry(row, 2), other.entry(2, col)),
		alg.Mul(m.entry(row, 3), other.entry(3, col)),
	)
}

// Transpose returns mᵀ: result[r][c] = m[c][r].
func (m Matrix4x4) Transpose() Matrix4x4 {
	out := Matrix4x4{alg: m.alg}
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			out.e[r][c] = m.entry(c, r)
		}
	}

	return out
}

// entry reads m[i][j]. The unset slots of a zero-value Matrix4x4 read as
// the algebra's Zero, so the zero value behaves like Zero(nil).
func (m Matrix4x4) entry(i, j int) term.Term {
	if t := m.e[i][j]; t != nil {
		return t
	}

	return m.Algebra().Zero()
}
