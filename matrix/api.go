// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin entry points over the private ew* kernels; no loop duplication here.
//   - Validation lives in the kernels; facades only forward.

package matrix

// Floor returns a copy of m with every element below lo raised to lo.
//
//	out[i,j] = max(m[i,j], lo), NaN preserved.
//
// Policy: lo must not be NaN (ErrNaNInf). Time O(r*c), Space O(r*c).
func Floor(m Matrix, lo float64) (*Dense, error) { return ewFloor(m, lo) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN matches NaN only when equalNaN is true; +Inf equals +Inf.
// Returns (false, nil) on the first violation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64, equalNaN bool) (bool, error) {
	return ewAllClose(a, b, rtol, atol, equalNaN)
}

// CountNaN returns the number of NaN entries in m. Time O(r*c).
func CountNaN(m Matrix) (int, error) { return ewCountNaN(m) }
