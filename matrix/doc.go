// SPDX-License-Identifier: MIT

// Package matrix implements exact homogeneous-coordinate linear algebra:
// a 4-component Vector4, a 4×4 Matrix4x4 and the reduced Matrix3x3.
//
// The package provides:
//
//   - Vector4 arithmetic (Add, Subtract, ScaleBy, DivideBy) and the
//     perspective divide Normalize, which leaves w unchanged.
//   - Matrix4x4 composition (Transform, MultiplyMatrix, CrossMultiply,
//     ScaleBy, DivideBy) with an identity short-circuit for One factors.
//   - The determinant family: Determinant2x2, Minor, Minors, Determinant
//     (Laplace along row 0), Cofactors (checkerboard sign), Transpose,
//     Without and the ascending index helper AllBut.
//   - Builders: Identity, Zero, Translation, Scaling, Perspective.
//
// All arithmetic goes through a term.Algebra, so results are exact and may be
// symbolic. Every value is immutable and safe for concurrent readers. There is
// deliberately no Inverse: Minors, Cofactors, Transpose and Determinant are
// the building blocks.
//
// See the examples in this package for usage patterns.
package matrix
