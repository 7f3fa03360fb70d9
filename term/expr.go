// SPDX-License-Identifier: MIT

package term

import "strings"

// Sum is a canonical sum of at least two non-zero, non-collectable terms.
// Terms are ordered by sortKey; a folded constant, if any, comes last.
type Sum struct {
	terms []Term
}

// Product is a canonical product of at least two factors, or one factor with
// a numeric coefficient. The coefficient, if any, is the first factor.
type Product struct {
	factors []Term
}

// Quotient is an irreducible num/den pair. den is never zero or one.
type Quotient struct {
	num, den Term
}

// Negation is −t for a t that cannot absorb the sign itself.
type Negation struct {
	t Term
}

// Terms returns a copy of the summands.
func (s Sum) Terms() []Term { return append([]Term(nil), s.terms...) }

// Factors returns a copy of the factors.
func (p Product) Factors() []Term { return append([]Term(nil), p.factors...) }

// Num returns the numerator.
func (q Quotient) Num() Term { return q.num }

// Den returns the denominator.
func (q Quotient) Den() Term { return q.den }

// Operand returns the negated term.
func (n Negation) Operand() Term { return n.t }

func (s Sum) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.terms {
		str := t.String()
		switch {
		case i == 0:
			b.WriteString(str)
		case strings.HasPrefix(str, "-"):
			b.WriteString(" - ")
			b.WriteString(str[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(str)
		}
	}
	b.WriteByte(')')

	return b.String()
}

func (p Product) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		// an integer coefficient leads without parentheses: -2*x
		if n, ok := f.(Number); ok && i == 0 && n.IsInt() {
			parts[i] = n.String()
			continue
		}
		parts[i] = wrapCompound(f)
	}

	return strings.Join(parts, "*")
}

func (q Quotient) String() string {
	return wrapCompound(q.num) + "/" + wrapCompound(q.den)
}

func (n Negation) String() string {
	if _, ok := n.t.(Quotient); ok {
		return "-(" + n.t.String() + ")"
	}

	return "-" + n.t.String()
}

// Equal reports whether other is a Sum with pairwise Equal terms.
func (s Sum) Equal(other Term) bool {
	o, ok := other.(Sum)

	return ok && equalSlices(s.terms, o.terms)
}

// Equal reports whether other is a Product with pairwise Equal factors.
func (p Product) Equal(other Term) bool {
	o, ok := other.(Product)

	return ok && equalSlices(p.factors, o.factors)
}

// Equal reports whether other is a Quotient with Equal num and den.
func (q Quotient) Equal(other Term) bool {
	o, ok := other.(Quotient)

	return ok && q.num.Equal(o.num) && q.den.Equal(o.den)
}

// Equal reports whether other negates an Equal term.
func (n Negation) Equal(other Term) bool {
	o, ok := other.(Negation)

	return ok && n.t.Equal(o.t)
}

func equalSlices(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// wrapCompound parenthesises operands that would otherwise bind ambiguously
// inside a product or quotient. Sums print their own parentheses.
func wrapCompound(t Term) string {
	switch v := t.(type) {
	case Symbol, Sum:
		return v.String()
	case Number:
		if v.IsInt() && v.Sign() >= 0 {
			return v.String()
		}
	}

	return "(" + t.String() + ")"
}
