// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape/nil checks.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBroadcastable checks that m can expand to rows×cols.
// Each axis must either equal the target or be 1.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (target), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBroadcastable(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateBroadcastable", ErrInvalidDimensions)
	}
	if r := m.Rows(); r != rows && r != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateBroadcastable: Rows %d -> %d", r, rows), ErrDimensionMismatch)
	}
	if c := m.Cols(); c != cols && c != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateBroadcastable: Columns %d -> %d", c, cols), ErrDimensionMismatch)
	}

	return nil
}
