// SPDX-License-Identifier: MIT

package rational_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivsurface/bsm"
	"github.com/katalvlaran/ivsurface/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitMarket returns a quote whose normalized moneyness is exactly x.
func unitMarket(x float64) bsm.Market {
	return bsm.Market{Spot: 1, Strike: math.Exp(-x), Tau: 1}
}

// TestNormalized_RecoversVolInDomain prices quotes at a known v and checks
// that the approximation lands close to it on both sides of the money.
func TestNormalized_RecoversVolInDomain(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{-0.4, -0.2, 0, 0.2, 0.4} {
		for _, v := range []float64{0.25, 0.5, 0.75} {
			mk := unitMarket(x)
			c := rational.NormalizedPrice(mk, bsm.Price(+1, mk, v))
			require.InDelta(t, x, rational.Moneyness(mk), 1e-14)

			got := rational.Normalized(x, c)
			assert.InDelta(t, v, got, 2e-3, "x=%g v=%g", x, v)
			assert.True(t, rational.InDomain(x, got), "x=%g v=%g", x, v)
		}
	}
}

// TestNormalized_FloorsNegativePrice checks that a negative normalized price
// is treated as zero in the native domain.
func TestNormalized_FloorsNegativePrice(t *testing.T) {
	t.Parallel()
	assert.Equal(t, rational.Approx(-0.1, 0), rational.Normalized(-0.1, -3))
	assert.True(t, math.IsNaN(rational.Normalized(-0.1, math.NaN())))
	assert.True(t, math.IsNaN(rational.Normalized(0.1, math.NaN())))
}

// TestInDomain covers the box and ratio limits, including NaN inputs.
func TestInDomain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, v float64
		want bool
	}{
		{"at the money", 0, 0.5, true},
		{"lower corner", -0.5, 0.25, true},
		{"upper corner", 0.5, 0.25, true},
		{"moneyness too high", 0.6, 0.5, false},
		{"moneyness too low", -0.51, 0.5, false},
		{"ratio too steep", 0.2, 0.05, false},
		{"zero vol", 0, 0, false},
		{"unit vol", 0, 1, false},
		{"NaN moneyness", math.NaN(), 0.5, false},
		{"NaN vol", 0.1, math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rational.InDomain(tt.x, tt.v))
		})
	}
}

// TestGuess_FallbackOutsideDomain uses a deep in-the-money quote, which is
// far outside |x| <= 0.5.
func TestGuess_FallbackOutsideDomain(t *testing.T) {
	t.Parallel()
	mk := bsm.Market{Spot: 100, Strike: 40, Tau: 0.25, Rate: 0.01, Yield: 0.03}
	require.Greater(t, rational.Moneyness(mk), 0.5)

	assert.InDelta(t, rational.DefaultFallback/0.5, rational.Guess(mk, 59.35, rational.DefaultFallback), 1e-15)
	assert.InDelta(t, 1.0, rational.Guess(mk, 59.35, 0.5), 1e-15)
}

// TestGuess_ScalesByRootTau checks σ0 = v/√τ inside the domain.
func TestGuess_ScalesByRootTau(t *testing.T) {
	t.Parallel()
	mk := bsm.Market{Spot: 100, Strike: 105, Tau: 0.75, Rate: 0.01, Yield: 0.03}
	price := bsm.Price(+1, mk, 0.22)

	x := rational.Moneyness(mk)
	v := rational.Normalized(x, rational.NormalizedPrice(mk, price))
	require.True(t, rational.InDomain(x, v))

	got := rational.Guess(mk, price, rational.DefaultFallback)
	assert.InDelta(t, v/math.Sqrt(mk.Tau), got, 1e-15)
	assert.InDelta(t, 0.22, got, 1e-3)
}

// TestGuess_NaNPriceFallsBack shows that a NaN price is seeded with the
// fallback; the root-finder later turns it into a NaN volatility.
func TestGuess_NaNPriceFallsBack(t *testing.T) {
	t.Parallel()
	mk := bsm.Market{Spot: 100, Strike: 100, Tau: 1}
	assert.Equal(t, rational.DefaultFallback, rational.Guess(mk, math.NaN(), rational.DefaultFallback))
}
