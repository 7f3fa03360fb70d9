// SPDX-License-Identifier: MIT

package term

import "math/big"

// Number is an exact rational constant.
// The wrapped *big.Rat is never mutated after construction.
type Number struct {
	val *big.Rat
}

var (
	numZero   = Number{val: new(big.Rat)}
	numOne    = Number{val: big.NewRat(1, 1)}
	numNegOne = Number{val: big.NewRat(-1, 1)}
)

// Int returns the integer n as a Number.
func Int(n int64) Number {
	return Number{val: new(big.Rat).SetInt64(n)}
}

// Frac returns p/q as a Number. It panics if q == 0 (programmer error).
func Frac(p, q int64) Number {
	if q == 0 {
		panic("term: Frac: zero denominator")
	}

	return Number{val: big.NewRat(p, q)}
}

// Rat returns a Number holding a copy of r.
func Rat(r *big.Rat) Number {
	return Number{val: new(big.Rat).Set(r)}
}

// Rat returns a copy of the underlying rational.
func (n Number) Rat() *big.Rat { return new(big.Rat).Set(n.rat()) }

// Sign returns -1, 0 or +1.
func (n Number) Sign() int { return n.rat().Sign() }

// IsInt reports whether the denominator is 1.
func (n Number) IsInt() bool { return n.rat().IsInt() }

// String renders integers plainly and other rationals as p/q.
func (n Number) String() string {
	r := n.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

// Equal reports whether other is a Number with the same value.
func (n Number) Equal(other Term) bool {
	o, ok := other.(Number)

	return ok && n.rat().Cmp(o.rat()) == 0
}

// rat treats the zero Number{} as 0 so the zero value is usable.
func (n Number) rat() *big.Rat {
	if n.val == nil {
		return numZero.val
	}

	return n.val
}

// Fresh results only; operands are never written.
func mulNum(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func isOneRat(r *big.Rat) bool      { return r.Cmp(numOne.val) == 0 }
func isNegOneRat(r *big.Rat) bool   { return r.Cmp(numNegOne.val) == 0 }
