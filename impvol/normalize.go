// SPDX-License-Identifier: MIT

package impvol

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ivsurface/matrix"
)

// Normalize validates and broadcasts in to the shape of in.P, converts put
// prices to call-equivalent prices through put-call parity
//
//	P' = P + S·e^(−qτ) − K·e^(−rτ)      where cp == −1
//
// and floors the result at zero (NaN stays NaN). Values are not otherwise
// checked: negative strikes or expiries surface later as NaN volatilities.
//
// Errors:
//   - ErrNilInput when a field is nil.
//   - ErrShapeMismatch (with matrix.ErrDimensionMismatch) when a field
//     cannot be broadcast to P's shape.
//
// Complexity: O(g·h) time and memory.
func Normalize(in Input) (*Batch, error) {
	fields := []struct {
		name string
		m    matrix.Matrix
	}{
		{"P", in.P}, {"CP", in.CP}, {"S", in.S}, {"K", in.K},
		{"Tau", in.Tau}, {"R", in.R}, {"Q", in.Q},
	}
	for _, f := range fields {
		if err := matrix.ValidateNotNil(f.m); err != nil {
			return nil, fieldErrorf(f.name, ErrNilInput, err)
		}
	}

	g, h := in.P.Rows(), in.P.Cols()
	b := &Batch{Rows: g, Cols: h}
	dst := []*[]float64{nil, &b.CP, &b.S, &b.K, &b.Tau, &b.R, &b.Q}

	price, err := matrix.BroadcastTo(in.P, g, h)
	if err != nil {
		return nil, fieldErrorf("P", ErrShapeMismatch, err)
	}
	for k := 1; k < len(fields); k++ {
		flat, err := matrix.BroadcastFlat(fields[k].m, g, h)
		if err != nil {
			return nil, fieldErrorf(fields[k].name, ErrShapeMismatch, err)
		}
		*dst[k] = flat
	}

	// Put-call parity, then the arbitrage floor.
	err = price.Apply(func(i, j int, v float64) float64 {
		idx := i*h + j
		if b.CP[idx] != Puts {
			return v
		}

		return v + b.S[idx]*math.Exp(-b.Q[idx]*b.Tau[idx]) - b.K[idx]*math.Exp(-b.R[idx]*b.Tau[idx])
	})
	if err != nil {
		return nil, fmt.Errorf("impvol: put-call parity: %w", err)
	}
	floored, err := matrix.Floor(price, 0)
	if err != nil {
		return nil, fmt.Errorf("impvol: floor: %w", err)
	}
	b.P = floored.Flat()

	return b, nil
}
