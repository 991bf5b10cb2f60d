// SPDX-License-Identifier: MIT

package householder

import (
	"math"

	"github.com/katalvlaran/ivsurface/bsm"
)

// Elem is the per-element state carried from one round to the next: the
// current volatility and the kernel evaluation at that volatility.
type Elem struct {
	Sigma float64
	Eval  bsm.Eval
}

// Update returns the third-order Householder step for the pricing error
// e = P − C(σ) and the first three σ-derivatives of C:
//
//	(6·e·vega² + 3·e²·vomma) / (−6·vega³ − 6·e·vega·vomma − e²·ultima)
//
// The next iterate is σ − Update(...).
func Update(e, vega, vomma, ultima float64) float64 {
	num := 6*e*vega*vega + 3*e*e*vomma
	den := -6*vega*vega*vega - 6*e*vega*vomma - e*e*ultima

	return num / den
}

// Seed evaluates the kernel at the starting volatility.
func Seed(mk bsm.Market, price, sigma0 float64) Elem {
	return Elem{Sigma: sigma0, Eval: bsm.Evaluate(mk, price, sigma0)}
}

// Advance is one round for one element: step σ and re-evaluate the kernel
// at the new σ. It is pure; the derivatives in the result feed the next call.
func Advance(mk bsm.Market, price float64, e Elem) Elem {
	ev := e.Eval
	sigma := e.Sigma - Update(ev.Err, ev.Vega, ev.Vomma, ev.Ultima)

	return Elem{Sigma: sigma, Eval: bsm.Evaluate(mk, price, sigma)}
}

// Classify maps an element to Active, Converged or Diverged. A root with
// |error| <= tol only counts as Converged at a finite σ >= 0.
func Classify(e Elem, tol float64) Status {
	err := e.Eval.Err
	switch {
	case math.IsNaN(err) || math.IsInf(err, 0):
		return Diverged
	case math.Abs(err) > tol:
		return Active
	case !(e.Sigma >= 0) || math.IsInf(e.Sigma, 1):
		return Diverged
	default:
		return Converged
	}
}
