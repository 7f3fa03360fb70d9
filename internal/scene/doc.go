// SPDX-License-Identifier: MIT

// Package scene loads named matrices and vectors from a YAML file.
//
// File layout:
//
//	matrices:
//	  view:
//	    - [1, 0, 0, tx]
//	    - [0, 1, 0, ty]
//	    - [0, 0, 1, tz]
//	    - [0, 0, 0, 1]
//	vectors:
//	  p: [x, y, z]        # omitted trailing components take (0, 0, 0, 1)
//
// Every entry is a literal: an integer, a fraction p/q, an exact decimal, or
// an identifier (optionally negated) that becomes a term.Symbol.
package scene
