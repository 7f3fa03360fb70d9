// SPDX-License-Identifier: MIT
// Package matrix: debug rendering. Nothing here affects computed values.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/homog/term"
)

// String renders four bracketed rows of stringified Terms, one per line:
//
//	[1, 0, 0, x]
//	[0, 1, 0, y]
//	...
func (m Matrix4x4) String() string {
	e := m.Elements()
	rows := make([][]term.Term, dim)
	for i := range e {
		rows[i] = e[i][:]
	}

	return formatRows(rows)
}

// String renders (x, y, z, w).
func (v Vector4) String() string {
	c := v.Components()

	return "(" + joinTerms(c[:]) + ")"
}

// Fprint writes label on its own line followed by m.String().
// Complexity: O(16) Term renderings.
func Fprint(w io.Writer, label string, m fmt.Stringer) error {
	if _, err := fmt.Fprintf(w, "%s:\n%s", label, m); err != nil {
		return fmt.Errorf("Fprint %q: %w", label, err)
	}

	return nil
}

// formatRows builds per-row strings and concatenates them.
func formatRows(rows [][]term.Term) string {
	var b strings.Builder
	for _, r := range rows { // iterate over rows
		b.WriteByte('[')
		b.WriteString(joinTerms(r))
		b.WriteString("]\n")
	}

	return b.String()
}

func joinTerms(ts []term.Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}
