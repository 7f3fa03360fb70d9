// SPDX-License-Identifier: MIT

package scene

import "errors"

var (
	// ErrBadLiteral is returned for an entry that is neither a number nor an identifier.
	ErrBadLiteral = errors.New("scene: bad literal")

	// ErrUnknownName is returned when a matrix or vector name is not in the scene.
	ErrUnknownName = errors.New("scene: unknown name")

	// ErrBadVector is returned for a vector with zero or more than four entries.
	ErrBadVector = errors.New("scene: vector must have 1 to 4 entries")
)
