// Package bsm is the Black-Scholes-Merton pricing kernel used by the
// implied-volatility root-finder.
//
// 🚀 What does it compute?
//
//	For one quote (spot S, strike K, time-to-expiry τ, rate r, yield q), an
//	observed price P and a trial volatility σ, Evaluate returns
//	  • d1, d2 and N(d1), N(d2)
//	  • the call price and the pricing error P − call
//	  • vega, vomma and ultima: the first three σ-derivatives of the price,
//	    which is exactly what a third-order Householder step consumes.
//
// ✨ Numeric policy:
//   - Pure functions, no allocation, no branching on inputs.
//   - σ = 0 or τ = 0 is not guarded: the divisions produce ±Inf/NaN and the
//     caller sees a non-finite error. The solver turns that into a NaN
//     volatility instead of an error.
//   - NormCDF is evaluated through erfc, which equals 0.5·(1+erf(x/√2)) but
//     keeps full relative precision deep in the left tail.
//
// ⚙️ Usage:
//
//	m := bsm.Market{Spot: 100, Strike: 90, Tau: 0.25, Rate: 0.01, Yield: 0.03}
//	ev := bsm.Evaluate(m, 10.34, 0.2)
//	fmt.Println(ev.Err, ev.Vega)
//
// Complexity: O(1) per call.
package bsm
