// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/homog/matrix"
)

var sinkMatrix matrix.Matrix4x4

func BenchmarkDeterminant_Numeric(b *testing.B) {
	m := IntMatrix(b, fixtureA)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Determinant()
	}
}

func BenchmarkDeterminant_Symbolic(b *testing.B) {
	m := MarkerMatrix()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Determinant()
	}
}

func BenchmarkMultiplyMatrix(b *testing.B) {
	m := MarkerMatrix()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMatrix = m.MultiplyMatrix(m)
	}
}
