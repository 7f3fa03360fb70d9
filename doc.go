// SPDX-License-Identifier: MIT

// Package homog is exact linear algebra over homogeneous coordinates.
//
// What is in here:
//
//	term/          - the exact scalar algebra (rationals, symbols, sums,
//	                 products, quotients) behind every computation
//	matrix/        - Vector4, Matrix4x4 and the reduced Matrix3x3: transform,
//	                 compose, determinant, minors, cofactors, transpose
//	internal/scene - YAML scene files of named matrices and vectors
//	cmd/homog      - command-line front end over a scene file
//
// Everything is immutable and exact: there is no floating point anywhere,
// and results may stay symbolic.
//
// Quick example:
//
//	alg := term.Default
//	m := matrix.Translation(alg, term.Int(1), term.Int(2), term.Int(3))
//	p := m.Transform(matrix.Point(alg, term.Sym("x"), term.Sym("y"), term.Sym("z")))
//	// p == ((x + 1), (y + 2), (z + 3), 1)
//
//	go install github.com/katalvlaran/homog/cmd/homog@latest
package homog
