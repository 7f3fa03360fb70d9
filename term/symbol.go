// SPDX-License-Identifier: MIT

package term

// Symbol is a named indeterminate. Two Symbols are Equal iff their names are.
type Symbol struct {
	name string
}

// Sym returns the Symbol called name.
func Sym(name string) Symbol { return Symbol{name: name} }

// Name returns the symbol's name.
func (s Symbol) Name() string { return s.name }

func (s Symbol) String() string { return s.name }

// Equal reports whether other is a Symbol with the same name.
func (s Symbol) Equal(other Term) bool {
	o, ok := other.(Symbol)

	return ok && s.name == o.name
}
