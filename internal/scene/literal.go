// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homog/term"
)

var (
	identRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numberRe = regexp.MustCompile(`^-?(?:[0-9]+(?:/[0-9]+)?|[0-9]*\.[0-9]+)$`)
)

// Literal is one raw scalar from the file. It accepts any YAML scalar so
// that 1, "1" and 1.5 all keep their source text.
type Literal string

// UnmarshalYAML keeps the scalar's source text verbatim.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar: %w", node.Line, ErrBadLiteral)
	}
	*l = Literal(node.Value)

	return nil
}

// ParseTerm turns a literal into a Term of alg.
//
//	"3", "-3/4", "0.125"  → exact Number, always base 10
//	"x", "-theta"         → Symbol, optionally negated
//
// Hex, exponents and a zero denominator are rejected.
func ParseTerm(alg term.Algebra, lit string) (term.Term, error) {
	s := strings.TrimSpace(lit)
	if s == "" {
		return nil, fmt.Errorf("%q: %w", lit, ErrBadLiteral)
	}
	if numberRe.MatchString(s) {
		r, ok := parseNumber(s)
		if !ok {
			return nil, fmt.Errorf("%q: %w", lit, ErrBadLiteral)
		}

		return term.Rat(r), nil
	}

	neg := strings.HasPrefix(s, "-")
	name := strings.TrimPrefix(s, "-")
	if !identRe.MatchString(name) {
		return nil, fmt.Errorf("%q: %w", lit, ErrBadLiteral)
	}
	if neg {
		return alg.Neg(term.Sym(name)), nil
	}

	return term.Sym(name), nil
}

// parseNumber reads a literal already matched by numberRe. Both halves of a
// fraction are read in base 10; big.Rat.SetString would take 010/2 as octal.
func parseNumber(s string) (*big.Rat, bool) {
	p, q, frac := strings.Cut(s, "/")
	if !frac {
		return new(big.Rat).SetString(s)
	}
	num, ok := new(big.Int).SetString(p, 10)
	if !ok {
		return nil, false
	}
	den, ok := new(big.Int).SetString(q, 10)
	if !ok || den.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(num, den), true
}
