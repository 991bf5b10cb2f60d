// SPDX-License-Identifier: MIT

package bsm

import "math"

// Market holds the per-quote inputs that do not change while σ is searched.
type Market struct {
	Spot   float64 // S, underlying price
	Strike float64 // K
	Tau    float64 // τ, time to expiry in years
	Rate   float64 // r, continuous risk-free rate
	Yield  float64 // q, continuous dividend yield
}

// Eval is everything the kernel computes for one (quote, σ) pair.
// Callers outside the root-finder normally need only Err and the derivatives.
type Eval struct {
	D1, D2   float64
	Nd1, Nd2 float64 // N(d1), N(d2)
	Call     float64 // model call price
	Err      float64 // observed price − Call

	Vega   float64 // ∂C/∂σ
	Vomma  float64 // ∂²C/∂σ²
	Ultima float64 // ∂³C/∂σ³
}

// Evaluate prices a European call at volatility sigma and returns the pricing
// error against price together with vega, vomma and ultima.
//
//	d1 = [ln(S/K) + (r − q + σ²/2)·τ] / (σ√τ)
//	d2 = [ln(S/K) + (r − q − σ²/2)·τ] / (σ√τ)      (= d1 − σ√τ)
//	C  = e^(−qτ)·S·N(d1) − e^(−rτ)·K·N(d2)
//	vega   = S·e^(−qτ)·n(d1)·√τ
//	vomma  = vega·d1·d2/σ
//	ultima = −vega·(d1·d2·(1 − d1·d2) + d1² + d2²)/σ²
//
// No guards: σ=0 or τ=0 yield ±Inf/NaN fields.
func Evaluate(m Market, price, sigma float64) Eval {
	sqrtTau := math.Sqrt(m.Tau)
	den := sigma * sqrtTau
	logSK := math.Log(m.Spot / m.Strike)
	halfVar := sigma * sigma * 0.5

	d1 := (logSK + (m.Rate-m.Yield+halfVar)*m.Tau) / den
	d2 := (logSK + (m.Rate-m.Yield-halfVar)*m.Tau) / den

	nd1, nd2 := NormCDF(d1), NormCDF(d2)
	dq := math.Exp(-m.Yield * m.Tau)
	dr := math.Exp(-m.Rate * m.Tau)

	call := dq*m.Spot*nd1 - dr*m.Strike*nd2
	vega := m.Spot * dq * NormPDF(d1) * sqrtTau
	d1d2 := d1 * d2

	return Eval{
		D1:     d1,
		D2:     d2,
		Nd1:    nd1,
		Nd2:    nd2,
		Call:   call,
		Err:    price - call,
		Vega:   vega,
		Vomma:  vega * d1d2 / sigma,
		Ultima: -vega * (d1d2*(1-d1d2) + d1*d1 + d2*d2) / (sigma * sigma),
	}
}

// Price returns the Black-Scholes price of a call (cp > 0) or put (cp < 0).
func Price(cp float64, m Market, sigma float64) float64 {
	ev := Evaluate(m, 0, sigma)
	if cp >= 0 {
		return ev.Call
	}

	// K·e^(−rτ)·N(−d2) − S·e^(−qτ)·N(−d1)
	return math.Exp(-m.Rate*m.Tau)*m.Strike*NormCDF(-ev.D2) -
		math.Exp(-m.Yield*m.Tau)*m.Spot*NormCDF(-ev.D1)
}
