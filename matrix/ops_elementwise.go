// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small, private element-wise kernels (ew*) behind the public facades in api.go.
//   - Deterministic loops with a *Dense fast-path over the flat buffer.
//
// NaN handling is explicit in every kernel: the solver relies on NaN surviving
// a floor and on NaN positions being compared, not ignored.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewFloor copies X replacing every v < lo with lo. NaN stays NaN.
// Time: O(r*c). Space: O(r*c).
func ewFloor(X Matrix, lo float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Floor", err)
	}
	if math.IsNaN(lo) {
		return nil, matrixErrorf("Floor", ErrNaNInf)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Floor", err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			if v < lo { // false for NaN
				v = lo
			}
			out.data[idx] = v
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("Floor", e)
			}
			if v < lo {
				v = lo
			}
			out.data[i*c+j] = v
		}
	}
	return out, nil
}

// closeEnough is the scalar predicate behind AllClose:
// |a-b| <= atol + rtol*|b|; NaN matches NaN only when equalNaN;
// equal infinities match.
func closeEnough(a, b, rtol, atol float64, equalNaN bool) bool {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	if an || bn {
		return equalNaN && an && bn
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise closeness for identical shapes.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64, equalNaN bool) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol, equalNaN) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if !closeEnough(av, bv, rtol, atol, equalNaN) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewCountNaN counts NaN entries.
func ewCountNaN(X Matrix) (int, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf("CountNaN", err)
	}
	n := 0
	if d, ok := X.(*Dense); ok {
		for _, v := range d.data {
			if math.IsNaN(v) {
				n++
			}
		}
		return n, nil
	}
	for i := 0; i < X.Rows(); i++ {
		for j := 0; j < X.Cols(); j++ {
			if v, _ := X.At(i, j); math.IsNaN(v) {
				n++
			}
		}
	}

	return n, nil
}
