// SPDX-License-Identifier: MIT

// Package matrix - broadcasting.
//
// Rules (numpy-compatible for 2-D operands):
//   - 1×1      → every cell receives the scalar.
//   - 1×cols   → the row repeats down all rows.
//   - rows×1   → the column repeats across all columns.
//   - rows×cols → copied as is.
//
// Any other shape is ErrDimensionMismatch; nothing is truncated or tiled.
package matrix

// BroadcastTo returns a new rows×cols Dense expanded from m.
// The numeric policy of a *Dense source is preserved.
//
// Errors: see ValidateBroadcastable.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func BroadcastTo(m Matrix, rows, cols int) (*Dense, error) {
	if err := ValidateBroadcastable(m, rows, cols); err != nil {
		return nil, matrixErrorf("BroadcastTo", err)
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("BroadcastTo", err)
	}
	sr, sc := m.Rows(), m.Cols()

	// Dense fast-path: stride 0 on broadcast axes over the flat source.
	if d, ok := m.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		rs, cs := sc, 1 // source strides
		if sr == 1 {
			rs = 0
		}
		if sc == 1 {
			cs = 0
		}
		for i := 0; i < rows; i++ {
			base := i * cols
			src := i * rs
			for j := 0; j < cols; j++ {
				out.data[base+j] = d.data[src+j*cs]
			}
		}
		return out, nil
	}

	// Generic fallback via At.
	for i := 0; i < rows; i++ {
		si := i
		if sr == 1 {
			si = 0
		}
		for j := 0; j < cols; j++ {
			sj := j
			if sc == 1 {
				sj = 0
			}
			v, e := m.At(si, sj)
			if e != nil {
				return nil, matrixErrorf("BroadcastTo", e)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// BroadcastFlat is BroadcastTo followed by a flat row-major copy.
// Convenient for per-element kernels that work on []float64.
func BroadcastFlat(m Matrix, rows, cols int) ([]float64, error) {
	d, err := BroadcastTo(m, rows, cols)
	if err != nil {
		return nil, err
	}

	// d is freshly allocated and unshared, so handing out its buffer is safe.
	return d.data, nil
}
