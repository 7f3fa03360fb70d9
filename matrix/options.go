// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Vector4 construction.
//
// Defaults (single source of truth):
//   - x = y = z = Zero() of the algebra,
//   - w = One() of the algebra,
//
// so NewVector4(alg) with no options is the homogeneous origin.
// Options only override components; they never touch the algebra.
package matrix

import "github.com/katalvlaran/homog/term"

// VectorOption overrides one component of a Vector4 under construction.
// Applying the same option twice is idempotent; the last write wins.
type VectorOption func(*vectorOptions)

// vectorOptions holds per-component overrides; nil means "use the default".
type vectorOptions struct {
	comps [dim]term.Term
}

// WithX sets the x component.
func WithX(t term.Term) VectorOption { return func(o *vectorOptions) { o.comps[0] = t } }

// WithY sets the y component.
func WithY(t term.Term) VectorOption { return func(o *vectorOptions) { o.comps[1] = t } }

// WithZ sets the z component.
func WithZ(t term.Term) VectorOption { return func(o *vectorOptions) { o.comps[2] = t } }

// WithW sets the w component.
func WithW(t term.Term) VectorOption { return func(o *vectorOptions) { o.comps[3] = t } }

// gatherVectorOptions applies opts over the algebra's defaults.
// Complexity: O(len(opts)).
func gatherVectorOptions(alg term.Algebra, opts []VectorOption) [dim]term.Term {
	var o vectorOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	out := [dim]term.Term{alg.Zero(), alg.Zero(), alg.Zero(), alg.One()}
	for i, t := range o.comps {
		if t != nil {
			out[i] = t
		}
	}

	return out
}
