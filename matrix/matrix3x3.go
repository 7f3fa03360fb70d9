// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/homog/term"
)

// Matrix3x3 is the reduced form produced by Matrix4x4.Without.
// It carries no algebra and defines no arithmetic.
type Matrix3x3 struct {
	e [3][3]term.Term
}

// NewMatrix3x3 wraps a 3×3 array by value.
func NewMatrix3x3(elements [3][3]term.Term) Matrix3x3 {
	return Matrix3x3{e: elements}
}

// At returns the entry at (row, col). It panics on an index outside 0..2.
func (m Matrix3x3) At(row, col int) term.Term {
	mustIndex(opAt, row, 3)
	mustIndex(opAt, col, 3)

	return m.entry(row, col)
}

// Elements returns a copy of the 9 entries.
func (m Matrix3x3) Elements() [3][3]term.Term {
	var out [3][3]term.Term
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.entry(i, j)
		}
	}

	return out
}

// Equal reports entry-wise structural equality.
func (m Matrix3x3) Equal(other Matrix3x3) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !m.entry(i, j).Equal(other.entry(i, j)) {
				return false
			}
		}
	}

	return true
}

// String renders three bracketed rows, one per line.
func (m Matrix3x3) String() string {
	e := m.Elements()
	rows := make([][]term.Term, 3)
	for i := range e {
		rows[i] = e[i][:]
	}

	return formatRows(rows)
}

// entry reads m[i][j]; a zero-value Matrix3x3 reads as term.Default's Zero.
func (m Matrix3x3) entry(i, j int) term.Term {
	if t := m.e[i][j]; t != nil {
		return t
	}

	return term.Default.Zero()
}

var _ fmt.Stringer = Matrix3x3{}
