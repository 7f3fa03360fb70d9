// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/homog/term"

// Vector4 is an immutable homogeneous coordinate (x, y, z, w).
// Every method returns a new Vector4; the receiver is never modified.
// Binary operations compute with the receiver's algebra.
type Vector4 struct {
	alg   term.Algebra
	comps [dim]term.Term // x, y, z, w
}

// NewVector4 builds a vector from the defaults (0, 0, 0, 1) of alg,
// overridden component-wise by opts. A nil alg selects term.Default.
//
// Example:
//
//	p := NewVector4(alg, WithX(term.Int(3)))  // (3, 0, 0, 1)
func NewVector4(alg term.Algebra, opts ...VectorOption) Vector4 {
	alg = algebraOr(alg)

	return Vector4{alg: alg, comps: gatherVectorOptions(alg, opts)}
}

// Vec4 builds (x, y, z, w) with every component explicit.
func Vec4(alg term.Algebra, x, y, z, w term.Term) Vector4 {
	return Vector4{alg: algebraOr(alg), comps: [dim]term.Term{x, y, z, w}}
}

// Point builds the homogeneous point (x, y, z, 1).
func Point(alg term.Algebra, x, y, z term.Term) Vector4 {
	alg = algebraOr(alg)

	return Vec4(alg, x, y, z, alg.One())
}

// Direction builds the point at infinity (x, y, z, 0).
func Direction(alg term.Algebra, x, y, z term.Term) Vector4 {
	alg = algebraOr(alg)

	return Vec4(alg, x, y, z, alg.Zero())
}

// X returns the x component.
func (v Vector4) X() term.Term { return v.comp(0) }

// Y returns the y component.
func (v Vector4) Y() term.Term { return v.comp(1) }

// Z returns the z component.
func (v Vector4) Z() term.Term { return v.comp(2) }

// W returns the w component.
func (v Vector4) W() term.Term { return v.comp(3) }

// Components returns (x, y, z, w) by value.
func (v Vector4) Components() [dim]term.Term {
	var out [dim]term.Term
	for i := range out {
		out[i] = v.comp(i)
	}

	return out
}

// Algebra returns the algebra the vector computes with.
func (v Vector4) Algebra() term.Algebra { return algebraOr(v.alg) }

// Equal reports component-wise structural equality.
func (v Vector4) Equal(other Vector4) bool {
	for i := 0; i < dim; i++ {
		if !v.comp(i).Equal(other.comp(i)) {
			return false
		}
	}

	return true
}

// Add returns the component-wise sum v + other.
// Complexity: 4 Sum calls.
func (v Vector4) Add(other Vector4) Vector4 {
	alg := v.Algebra()

	return v.mapWith(func(i int, c term.Term) term.Term { return alg.Sum(c, other.comp(i)) })
}

// Subtract returns the component-wise difference v − other.
func (v Vector4) Subtract(other Vector4) Vector4 {
	alg := v.Algebra()

	return v.mapWith(func(i int, c term.Term) term.Term { return alg.Sub(c, other.comp(i)) })
}

// ScaleBy multiplies every component by factor.
func (v Vector4) ScaleBy(factor term.Term) Vector4 {
	alg := v.Algebra()

	return v.mapWith(func(_ int, c term.Term) term.Term { return alg.Mul(c, factor) })
}

// DivideBy divides every component by factor.
// A zero factor is not pre-checked; the algebra's fault is returned wrapped
// as "DivideBy: ..." and matches term.ErrDivisionByZero via errors.Is.
func (v Vector4) DivideBy(factor term.Term) (Vector4, error) {
	alg := v.Algebra()
	out := Vector4{alg: alg}

	var err error
	for i, c := range v.Components() {
		if out.comps[i], err = alg.Div(c, factor); err != nil {
			return Vector4{}, matrixErrorf(opDivideBy, err)
		}
	}

	return out, nil
}

// Normalize performs the perspective divide (x/w, y/w, z/w, w).
// w itself is carried over unchanged; it is NOT forced to one.
func (v Vector4) Normalize() (Vector4, error) {
	alg := v.Algebra()
	out := Vector4{alg: alg, comps: v.Components()}
	w := out.comps[3]

	var err error
	for i := 0; i < 3; i++ {
		if out.comps[i], err = alg.Div(out.comps[i], w); err != nil {
			return Vector4{}, matrixErrorf(opNormalize, err)
		}
	}

	return out, nil
}

// mapWith applies fn to each component in x, y, z, w order.
func (v Vector4) mapWith(fn func(i int, c term.Term) term.Term) Vector4 {
	out := Vector4{alg: v.alg}
	for i, c := range v.Components() {
		out.comps[i] = fn(i, c)
	}

	return out
}

// comp reads component i. A zero-value Vector4 has no components set and
// reads as (0, 0, 0, 0) in the algebra's Zero; NewVector4 is the way to get
// the origin (0, 0, 0, 1).
func (v Vector4) comp(i int) term.Term {
	if t := v.comps[i]; t != nil {
		return t
	}

	return v.Algebra().Zero()
}
