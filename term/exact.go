// SPDX-License-Identifier: MIT

package term

import "math/big"

// Exact is the canonical Algebra over Numbers, Symbols and their
// combinations. It is a zero-size value; use Default or Exact{} directly.
type Exact struct{}

// Zero returns the Number 0.
func (Exact) Zero() Term { return numZero }

// One returns the Number 1.
func (Exact) One() Term { return numOne }

// IsZero reports whether t is the Number 0.
func (Exact) IsZero(t Term) bool {
	n, ok := t.(Number)

	return ok && n.Sign() == 0
}

// IsOne reports whether t is the Number 1.
func (Exact) IsOne(t Term) bool {
	n, ok := t.(Number)

	return ok && isOneRat(n.rat())
}

// Sum adds ts, folding constants and collecting like terms.
// Complexity: O(n log n) in the number of flattened summands.
func (Exact) Sum(ts ...Term) Term { return sum(ts) }

// Sub returns a + (−b).
func (Exact) Sub(a, b Term) Term { return sum([]Term{a, negate(b)}) }

// Mul returns the canonical product of a and b.
func (Exact) Mul(a, b Term) Term { return product([]Term{a, b}) }

// Neg returns −a; double negations cancel.
func (Exact) Neg(a Term) Term { return negate(a) }

// Div returns a / b as a single monomial quotient.
//
// Both operands are flattened into coef · Π num / Π den: numeric coefficients
// and signs fold into coef, Quotient factors contribute their numerator and
// denominator to the matching side. Factors Equal on both sides then cancel
// pairwise, so
//   - b zero              → ErrDivisionByZero
//   - nothing left below  → coef · Π num        (x/2 → (1/2)*x)
//   - everything cancels  → coef                (6*x / 3*x → 2)
//   - otherwise           → coef · (Π num / Π den)
//
// Sums are single factors: (2*x + 2*y)/(x + y) does not reduce.
func (e Exact) Div(a, b Term) (Term, error) {
	if e.IsZero(b) {
		return nil, ErrDivisionByZero
	}
	r := ratio{coef: big.NewRat(1, 1)}
	r.absorb(a, false)
	r.absorb(b, true)
	if r.undefined {
		return nil, ErrDivisionByZero
	}
	if r.coef.Sign() == 0 {
		return numZero, nil
	}
	r.cancel()

	if len(r.den) == 0 {
		return withCoefficient(r.coef, r.num), nil
	}
	q := Quotient{
		num: withCoefficient(big.NewRat(1, 1), r.num),
		den: withCoefficient(big.NewRat(1, 1), r.den),
	}

	return withCoefficient(r.coef, []Term{q}), nil
}

// ratio is the flattened form of a quotient of monomials.
type ratio struct {
	coef      *big.Rat
	num, den  []Term
	undefined bool // a zero Number ended up in the denominator
}

// absorb folds t into r, on the denominator side when inverted.
func (r *ratio) absorb(t Term, inverted bool) {
	switch v := t.(type) {
	case Number:
		switch {
		case !inverted:
			r.coef.Mul(r.coef, v.rat())
		case v.Sign() == 0:
			r.undefined = true
		default:
			r.coef.Quo(r.coef, v.rat())
		}
	case Negation:
		r.coef.Neg(r.coef)
		r.absorb(v.t, inverted)
	case Product:
		for _, f := range v.factors {
			r.absorb(f, inverted)
		}
	case Quotient:
		r.absorb(v.num, inverted)
		r.absorb(v.den, !inverted)
	default:
		if inverted {
			r.den = append(r.den, t)
		} else {
			r.num = append(r.num, t)
		}
	}
}

// cancel removes factor pairs that are Equal across num and den.
func (r *ratio) cancel() {
	num := r.num[:0:0]
	for _, f := range r.num {
		if i := indexOf(r.den, f); i >= 0 {
			r.den = append(r.den[:i:i], r.den[i+1:]...)
			continue
		}
		num = append(num, f)
	}
	r.num = num
}

func indexOf(ts []Term, t Term) int {
	for i, s := range ts {
		if s.Equal(t) {
			return i
		}
	}

	return -1
}

// coefficient splits p into its leading Number and the product of the rest.
// Without a leading Number the coefficient is 1 and rest is p itself; with a
// single remaining factor rest is that factor.
func coefficient(p Product) (*big.Rat, Term) {
	c, ok := p.factors[0].(Number)
	switch {
	case !ok:
		return numOne.val, p
	case len(p.factors) == 2:
		return c.rat(), p.factors[1]
	}

	return c.rat(), Product{factors: p.factors[1:]}
}

// negate multiplies by −1 so that every sign lives in exactly one place.
func negate(t Term) Term { return product([]Term{numNegOne, t}) }

// product flattens nested products, pulls numbers and negations into a
// single coefficient and sorts the remaining factors.
func product(ts []Term) Term {
	coef := big.NewRat(1, 1)
	rest := make([]Term, 0, len(ts))

	var walk func(t Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Number:
			coef.Mul(coef, v.rat())
		case Negation:
			coef.Neg(coef)
			walk(v.t)
		case Product:
			for _, f := range v.factors {
				walk(f)
			}
		default:
			rest = append(rest, t)
		}
	}
	for _, t := range ts {
		walk(t)
	}
	if coef.Sign() == 0 {
		return numZero
	}

	return withCoefficient(coef, rest)
}

// withCoefficient builds coef·f1·f2·… from already-flattened factors.
func withCoefficient(coef *big.Rat, factors []Term) Term {
	if len(factors) == 0 {
		return Number{val: coef}
	}
	sortFactors(factors)

	var body Term = Product{factors: factors}
	if len(factors) == 1 {
		body = factors[0]
	}
	switch {
	case isOneRat(coef):
		return body
	case isNegOneRat(coef):
		return Negation{t: body}
	}

	return Product{factors: append([]Term{Number{val: coef}}, factors...)}
}

// monomial is one bucket of like terms inside sum.
type monomial struct {
	base Term     // coefficient-free part
	coef *big.Rat // accumulated coefficient
}

// sum flattens, folds numbers and collects like terms.
// Numeric coefficients distribute over nested sums: 2*(a + b) → 2*a + 2*b.
func sum(ts []Term) Term {
	constant := new(big.Rat)
	buckets := make([]*monomial, 0, len(ts))
	byKey := make(map[string][]*monomial, len(ts))

	collect := func(base Term, scale *big.Rat) {
		key := base.String()
		for _, m := range byKey[key] {
			if m.base.Equal(base) {
				m.coef.Add(m.coef, scale)
				return
			}
		}
		m := &monomial{base: base, coef: new(big.Rat).Set(scale)}
		byKey[key] = append(byKey[key], m)
		buckets = append(buckets, m)
	}

	var add func(t Term, scale *big.Rat)
	add = func(t Term, scale *big.Rat) {
		switch v := t.(type) {
		case Number:
			constant.Add(constant, mulNum(scale, v.rat()))
		case Sum:
			for _, s := range v.terms {
				add(s, scale)
			}
		case Negation:
			add(v.t, new(big.Rat).Neg(scale))
		case Product:
			c, rest := coefficient(v)
			if p, ok := rest.(Product); ok {
				collect(p, mulNum(scale, c))
				return
			}
			add(rest, mulNum(scale, c))
		default:
			collect(t, scale)
		}
	}
	one := big.NewRat(1, 1)
	for _, t := range ts {
		add(t, one)
	}

	out := make([]Term, 0, len(buckets)+1)
	for _, m := range buckets {
		if m.coef.Sign() == 0 {
			continue
		}
		out = append(out, withCoefficient(m.coef, factorsOf(m.base)))
	}
	sortSummands(out)
	if constant.Sign() != 0 {
		out = append(out, Number{val: constant})
	}

	switch len(out) {
	case 0:
		return numZero
	case 1:
		return out[0]
	}

	return Sum{terms: out}
}

// factorsOf returns a fresh factor slice so withCoefficient may sort it.
func factorsOf(t Term) []Term {
	if p, ok := t.(Product); ok {
		return append([]Term(nil), p.factors...)
	}

	return []Term{t}
}
