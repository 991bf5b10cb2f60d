// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with a call-site tag)
// and tests match them via errors.Is. No function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the boundary when context matters.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, including
	// operands that cannot be broadcast to a target shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows is returned by NewDenseFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
