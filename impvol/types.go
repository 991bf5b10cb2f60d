// SPDX-License-Identifier: MIT

package impvol

import (
	"github.com/katalvlaran/ivsurface/bsm"
	"github.com/katalvlaran/ivsurface/householder"
	"github.com/katalvlaran/ivsurface/matrix"
)

// Option type flags for Input.CP.
const (
	Calls = +1.0
	Puts  = -1.0
)

// Input is one batch of quotes. P fixes the target shape g×h; every other
// field may be 1×1, 1×h, g×1 or g×h and is broadcast to it.
type Input struct {
	CP  matrix.Matrix // +1 call, −1 put
	P   matrix.Matrix // observed option price
	S   matrix.Matrix // underlying price
	K   matrix.Matrix // strike
	Tau matrix.Matrix // time to expiry in years
	R   matrix.Matrix // continuous risk-free rate
	Q   matrix.Matrix // continuous dividend yield
}

// Batch is the normalized form of Input: flat row-major buffers of length
// Rows*Cols with P already converted to a floored call-equivalent price.
type Batch struct {
	Rows, Cols int

	CP, P, S, K, Tau, R, Q []float64
}

// Len returns the number of quotes.
func (b *Batch) Len() int { return b.Rows * b.Cols }

// Market returns the market inputs of quote i.
func (b *Batch) Market(i int) bsm.Market {
	return bsm.Market{Spot: b.S[i], Strike: b.K[i], Tau: b.Tau[i], Rate: b.R[i], Yield: b.Q[i]}
}

// Problem exposes the batch to the root-finder.
func (b *Batch) Problem() householder.Problem {
	mk := make([]bsm.Market, b.Len())
	for i := range mk {
		mk[i] = b.Market(i)
	}

	return householder.Problem{Markets: mk, Prices: b.P}
}

// Scalar returns a 1×1 input that broadcasts to any shape.
func Scalar(v float64) matrix.Matrix { return matrix.NewScalar(v) }

// Row returns a 1×len(vals) input, broadcast down the rows of P.
// It panics on an empty argument list.
func Row(vals ...float64) matrix.Matrix {
	m, err := matrix.NewDenseFromFlat(1, len(vals), vals)
	if err != nil {
		panic(err)
	}

	return m
}

// Col returns a len(vals)×1 input, broadcast across the columns of P.
// It panics on an empty argument list.
func Col(vals ...float64) matrix.Matrix {
	m, err := matrix.NewDenseFromFlat(len(vals), 1, vals)
	if err != nil {
		panic(err)
	}

	return m
}

// Grid returns a full input from rectangular rows.
func Grid(rows [][]float64) (matrix.Matrix, error) {
	return matrix.NewDenseFromRows(rows)
}
