// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid contract violations.
//
// A violated contract is a programming error, so constructors and unchecked
// accessors panic rather than return these. The panic value is always an
// error wrapping one of the sentinels below, so a recover site can still
// match it with errors.Is. Bounds-checked accessors (Get, GetPtr, Set) never
// panic on a bad position; they report absence with ok == false.
var (
	// ErrBadDimensions indicates a width or height that is not strictly positive.
	ErrBadDimensions = errors.New("grid: dimensions must be positive")

	// ErrTooLarge indicates width*height does not fit in an int.
	ErrTooLarge = errors.New("grid: dimensions are too large")

	// ErrOutOfBounds indicates an unchecked access with a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrShortSeq indicates a value sequence ran out before the grid was filled.
	ErrShortSeq = errors.New("grid: sequence too short")

	// ErrRaggedRows indicates nested rows of differing lengths.
	ErrRaggedRows = errors.New("grid: rows must all have the same length")

	// ErrBorrowed indicates overlapping mutable and shared access to one grid.
	// Only raised in builds tagged griddebug.
	ErrBorrowed = errors.New("grid: conflicting access to grid storage")
)
