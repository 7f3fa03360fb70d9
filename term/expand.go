// SPDX-License-Identifier: MIT

package term

// Expand distributes every product over the sums it contains, recursively,
// so that two polynomially equal Terms built by Exact expand to Equal Terms.
// Quotients expand numerator and denominator independently.
// Terms from other algebras are returned unchanged.
//
// Complexity: exponential in the nesting depth of sums inside products;
// intended for small symbolic results such as 4×4 determinants.
func Expand(t Term) Term { return Exact{}.Expand(t) }

// Expand is the method form of the package-level Expand.
func (Exact) Expand(t Term) Term {
	switch v := t.(type) {
	case Sum:
		out := make([]Term, len(v.terms))
		for i, s := range v.terms {
			out[i] = Expand(s)
		}

		return sum(out)
	case Negation:
		return negate(Expand(v.t))
	case Product:
		return expandProduct(v.factors)
	case Quotient:
		num, den := Expand(v.num), Expand(v.den)
		q, err := Exact{}.Div(num, den)
		if err != nil {
			// den only cancels to zero after expansion; keep the quotient as built.
			return Quotient{num: num, den: v.den}
		}

		return q
	}

	return t
}

// expandProduct multiplies out factor by factor: each partial product is
// combined with every summand of the next factor.
func expandProduct(factors []Term) Term {
	acc := []Term{numOne}
	for _, f := range factors {
		f = Expand(f)
		summands := []Term{f}
		if s, ok := f.(Sum); ok {
			summands = s.terms
		}

		next := make([]Term, 0, len(acc)*len(summands))
		for _, a := range acc {
			for _, b := range summands {
				next = append(next, product([]Term{a, b}))
			}
		}
		acc = next
	}

	return sum(acc)
}
