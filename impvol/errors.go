// SPDX-License-Identifier: MIT

package impvol

import (
	"errors"
	"fmt"
)

// Sentinel errors. Only structural problems are errors; numerical failures
// are NaN entries in the result.
var (
	// ErrNilInput is returned when one of the seven inputs is nil.
	ErrNilInput = errors.New("impvol: nil input")

	// ErrShapeMismatch is returned when an input cannot be broadcast to the
	// shape of the price matrix. It is reported together with
	// matrix.ErrDimensionMismatch.
	ErrShapeMismatch = errors.New("impvol: shape mismatch")

	// ErrOptionViolation is returned by Solve when an Option was invalid.
	ErrOptionViolation = errors.New("impvol: invalid option supplied")
)

// fieldErrorf tags err with the input field it concerns.
func fieldErrorf(field string, sentinel, err error) error {
	return fmt.Errorf("%w: %s: %w", sentinel, field, err)
}
