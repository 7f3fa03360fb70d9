// SPDX-License-Identifier: MIT

package term

import "sort"

// sortFactors orders the non-numeric factors of a product by their rendering.
// Stable, so equal renderings of distinct foreign Terms keep input order.
func sortFactors(fs []Term) {
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].String() < fs[j].String() })
}

// sortSummands orders summands by their coefficient-free part, then by the
// full rendering, so x, -x and 3*x sort next to each other.
func sortSummands(ts []Term) {
	sort.SliceStable(ts, func(i, j int) bool {
		ki, kj := baseKey(ts[i]), baseKey(ts[j])
		if ki != kj {
			return ki < kj
		}

		return ts[i].String() < ts[j].String()
	})
}

// baseKey strips a leading sign or numeric coefficient.
func baseKey(t Term) string {
	switch v := t.(type) {
	case Negation:
		return baseKey(v.t)
	case Product:
		_, rest := coefficient(v)

		return rest.String()
	}

	return t.String()
}
