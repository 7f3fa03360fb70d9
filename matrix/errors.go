// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the op-tag wrapper.
// Tests MUST check sentinels via errors.Is.
//
// Panics are reserved for programmer errors: an index outside 0..3, or a
// MustFromRows call with a malformed row set. Arithmetic faults (division by
// a zero Term) are produced by the term.Algebra and are returned, wrapped with
// the operation tag, never masked.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a row set is not exactly 4 rows of 4 entries.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside 0..3
	// (0..2 for Matrix3x3).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Operation name constants for unified error wrapping and panic messages.
const (
	opFromRows     = "FromRows"
	opAt           = "At"
	opAllBut       = "AllBut"
	opDivideBy     = "DivideBy"
	opNormalize    = "Normalize"
	opMinor        = "Minor"
	opDeterminant2 = "Determinant2x2"
	opWithout      = "Without"
	opCross        = "CrossMultiply"
	opRow          = "Row"
	opCol          = "Col"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
