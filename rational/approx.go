// SPDX-License-Identifier: MIT

package rational

import (
	"math"

	"github.com/katalvlaran/ivsurface/bsm"
)

// DefaultFallback is the normalized volatility v = σ√τ used wherever the
// rational approximation is outside its domain. It is an empirical value.
const DefaultFallback = 0.8

// Domain of the approximation: |x| <= domainX, 0 < v < 1, |x/v| <= domainRatio.
const (
	domainX     = 0.5
	domainRatio = 2.0
)

// Moneyness returns x = ln(S·e^((r−q)τ)/K), the normalized log-moneyness.
func Moneyness(mk bsm.Market) float64 {
	return math.Log(mk.Spot * math.Exp((mk.Rate-mk.Yield)*mk.Tau) / mk.Strike)
}

// NormalizedPrice returns c = P/(S·e^(−qτ)) for a call-equivalent price P.
func NormalizedPrice(mk bsm.Market, price float64) float64 {
	return price / (mk.Spot * math.Exp(-mk.Yield*mk.Tau))
}

// Approx evaluates Li's rational function
//
//	f(x,c) = p0·x + p1·√c + p2·c + Σ n_k·x^i_k·√c^j_k / (1 + Σ m_k·x^i_k·√c^j_k)
//
// for the native (x <= 0) domain. c must be >= 0; NaN propagates.
func Approx(x, c float64) float64 {
	sc := math.Sqrt(c)

	var xp, sp [maxDegree + 1]float64
	xp[0], sp[0] = 1, 1
	for d := 1; d <= maxDegree; d++ {
		xp[d] = xp[d-1] * x
		sp[d] = sp[d-1] * sc
	}

	var num, den float64
	for k, e := range exps {
		mono := xp[e[0]] * sp[e[1]]
		num += n[k] * mono
		den += m[k] * mono
	}

	return p[0]*x + p[1]*sc + p[2]*c + num/(1+den)
}

// Normalized returns v ≈ σ√τ for moneyness x and normalized price c,
// choosing the native domain for x <= 0 and the put-call mirrored domain
//
//	f(−x, max(e^x·c + 1 − e^x, 0))
//
// for x > 0. NaN x selects the mirrored branch and yields NaN.
func Normalized(x, c float64) float64 {
	if x <= 0 {
		return Approx(x, math.Max(c, 0))
	}
	ex := math.Exp(x)

	return Approx(-x, math.Max(ex*c+1-ex, 0))
}

// InDomain reports whether (x, v) lies where the approximation is trusted.
// Comparisons are written so that NaN is never in the domain.
func InDomain(x, v float64) bool {
	if !(x >= -domainX && x <= domainX) {
		return false
	}
	if !(v > 0 && v < 1) {
		return false
	}
	r := x / v

	return r >= -domainRatio && r <= domainRatio
}

// Guess returns the starting volatility σ0 = v/√τ for one quote with a
// call-equivalent price. Outside the domain v is replaced by fallback.
func Guess(mk bsm.Market, price, fallback float64) float64 {
	x := Moneyness(mk)
	v := Normalized(x, NormalizedPrice(mk, price))
	if !InDomain(x, v) {
		v = fallback
	}

	return v / math.Sqrt(mk.Tau)
}
