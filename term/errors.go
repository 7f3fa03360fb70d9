// SPDX-License-Identifier: MIT
// Package term: sentinel error set.
// Callers match with errors.Is; wrappers add an operation tag via %w.

package term

import "errors"

// ErrDivisionByZero is returned by Algebra.Div when the divisor is
// structurally equal to the additive identity.
var ErrDivisionByZero = errors.New("term: division by zero")
