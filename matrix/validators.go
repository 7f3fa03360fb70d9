// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index and shape checks.
//   - Shape checks return plain sentinels so call sites wrap uniformly.
//   - Index checks panic: every public method documents 0..3 as a precondition.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/homog/term"
)

// dim is the fixed side length of Matrix4x4 and the length of Vector4.
const dim = 4

// ValidateRows ensures rows is exactly 4 rows of exactly 4 entries.
//
// Returns ErrBadShape (wrapped with the offending row or count) otherwise.
// Complexity: O(1).
func ValidateRows(rows [][]term.Term) error {
	if len(rows) != dim {
		return fmt.Errorf("ValidateRows: %d rows: %w", len(rows), ErrBadShape)
	}
	for i, r := range rows {
		if len(r) != dim {
			return fmt.Errorf("ValidateRows: row %d has %d entries: %w", i, len(r), ErrBadShape)
		}
	}

	return nil
}

// mustIndex panics with ErrOutOfRange when i is outside [0, n).
func mustIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(matrixErrorf(op, fmt.Errorf("index %d: %w", i, ErrOutOfRange)))
	}
}

// algebraOr returns alg, or term.Default when alg is nil.
func algebraOr(alg term.Algebra) term.Algebra {
	if alg == nil {
		return term.Default
	}

	return alg
}
