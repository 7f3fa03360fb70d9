// SPDX-License-Identifier: MIT
// Package matrix: builders for the matrices callers usually start from.
//
// Purpose:
//   - Identity / Zero as neutral elements for composition.
//   - Translation / Scaling / Perspective as the common affine and projective
//     transforms of homogeneous geometry.
//
// All builders take the algebra explicitly (nil selects term.Default) and
// only place Terms; no arithmetic is performed.

package matrix

import "github.com/katalvlaran/homog/term"

// Identity returns I₄: One on the diagonal, Zero elsewhere.
func Identity(alg term.Algebra) Matrix4x4 {
	alg = algebraOr(alg)
	m := Zero(alg)
	for i := 0; i < dim; i++ {
		m.e[i][i] = alg.One()
	}

	return m
}

// Zero returns the 4×4 matrix of the algebra's Zero.
func Zero(alg term.Algebra) Matrix4x4 {
	alg = algebraOr(alg)
	m := Matrix4x4{alg: alg}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			m.e[i][j] = alg.Zero()
		}
	}

	return m
}

// Translation returns the affine translation by (tx, ty, tz):
//
//	[1 0 0 tx]
//	[0 1 0 ty]
//	[0 0 1 tz]
//	[0 0 0 1 ]
func Translation(alg term.Algebra, tx, ty, tz term.Term) Matrix4x4 {
	m := Identity(alg)
	m.e[0][3], m.e[1][3], m.e[2][3] = tx, ty, tz

	return m
}

// Scaling returns diag(sx, sy, sz, 1).
func Scaling(alg term.Algebra, sx, sy, sz term.Term) Matrix4x4 {
	m := Identity(alg)
	m.e[0][0], m.e[1][1], m.e[2][2] = sx, sy, sz

	return m
}

// Perspective returns the pinhole projection onto the plane z = d, built from
// 1/d so that Transform of (x, y, z, 1) followed by Normalize yields
// ((d*x)/z, (d*y)/z, d, (1/d)*z); Normalize leaves w' = z/d in place:
//
//	[1 0 0   0]
//	[0 1 0   0]
//	[0 0 1   0]
//	[0 0 1/d 0]
//
// Errors: the algebra's division fault when d is zero.
func Perspective(alg term.Algebra, d term.Term) (Matrix4x4, error) {
	m := Identity(alg)
	inv, err := m.alg.Div(m.alg.One(), d)
	if err != nil {
		return Matrix4x4{}, matrixErrorf("Perspective", err)
	}
	m.e[3][2], m.e[3][3] = inv, m.alg.Zero()

	return m, nil
}
