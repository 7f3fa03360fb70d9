// SPDX-License-Identifier: MIT

// Package term defines the exact scalar algebra consumed by package matrix.
//
// What & Why:
//
//	Term is an opaque exact value (rational number, symbol, or a combination
//	of both). Algebra is the capability interface that knows how to add,
//	subtract, multiply, divide and negate Terms, and which Terms are the
//	additive ("zero") and multiplicative ("one") identities. Matrix and
//	vector code depends only on Algebra, never on a concrete representation.
//
// Canonical implementation:
//
//	Exact (exported as Default) represents numbers with math/big.Rat and keeps
//	everything else as small immutable expression trees: Sum, Product,
//	Quotient and Negation over Numbers and Symbols. Every operation performs a
//	light, deterministic simplification pass:
//	  • numbers fold (2 + 3 → 5, 2 * x * 3 → 6*x);
//	  • nested sums/products flatten;
//	  • zero is dropped from sums, one from products, zero annihilates products;
//	  • like terms collect (x + 2*x → 3*x, x - x → 0);
//	  • operands of commutative operators are sorted by a stable key, so
//	    a*b and b*a are structurally Equal.
//	  • Div cancels factors shared by numerator and denominator, including
//	    those inside quotient factors: z / ((1/d)*z) → d.
//
//	Products are NOT multiplied out over sums; Expand does that on demand,
//	which is how two differently grouped polynomials are compared.
//
// Faults:
//
//	Div returns ErrDivisionByZero when the divisor is structurally zero.
//	No other operation can fail.
//
// Concurrency:
//
//	All Terms are immutable after construction; any number of goroutines may
//	read and combine them without synchronization.
package term
