// SPDX-License-Identifier: MIT

package term

import "fmt"

// Term is an exact, immutable scalar.
// Equal reports structural equality; two Terms produced by the same Algebra
// from structurally equal inputs are Equal.
type Term interface {
	fmt.Stringer

	// Equal reports whether t and other are structurally identical.
	Equal(other Term) bool
}

// Algebra is the arithmetic capability used by vectors and matrices.
// Implementations must be side-effect-free and referentially transparent.
type Algebra interface {
	// Zero returns the additive identity.
	Zero() Term

	// One returns the multiplicative identity.
	One() Term

	// Sum adds an arbitrary number of terms; Sum() is Zero().
	Sum(ts ...Term) Term

	// Sub returns a − b.
	Sub(a, b Term) Term

	// Mul returns a · b.
	Mul(a, b Term) Term

	// Div returns a / b, or ErrDivisionByZero when b is zero.
	Div(a, b Term) (Term, error)

	// Neg returns −a.
	Neg(a Term) Term

	// IsZero reports whether t equals Zero().
	IsZero(t Term) bool

	// IsOne reports whether t equals One().
	IsOne(t Term) bool
}

// Default is the canonical exact algebra.
var Default Algebra = Exact{}
