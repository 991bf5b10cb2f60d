// SPDX-License-Identifier: MIT

package impvol

import "github.com/katalvlaran/ivsurface/rational"

// InitialGuess returns the rational-approximation seed σ0 of every quote,
// substituting fallback outside the approximation's domain.
func InitialGuess(b *Batch, fallback float64) []float64 {
	sigma0 := make([]float64, b.Len())
	for i := range sigma0 {
		sigma0[i] = rational.Guess(b.Market(i), b.P[i], fallback)
	}

	return sigma0
}
