// Package impvol computes Black-Scholes implied volatilities for whole
// batches of European option quotes.
//
// 🚀 What does it do?
//
//	Given seven inputs (cp, P, S, K, τ, r, q) it returns a matrix of
//	implied volatilities shaped like P:
//	  1. Normalize: broadcast every input to P's shape, turn puts into
//	     call-equivalent prices through put-call parity, floor at zero.
//	  2. Seed: Li's (2006) rational approximation of σ√τ, with a constant
//	     fallback outside its domain (package rational).
//	  3. Refine: third-order Householder steps on the active set only
//	     (package householder), at most 10 rounds by default.
//	  4. Assemble: reshape; anything that did not converge is NaN.
//
// ✨ Broadcasting:
//   - 1×1 (Scalar), 1×h (Row), g×1 (Col) or g×h (Grid).
//   - Any other shape is ErrShapeMismatch. Nothing is truncated or tiled.
//
// ⚠️ Failure model:
//   - Structural problems (nil input, shape mismatch, invalid option) are
//     errors and abort the whole call.
//   - Numerical problems never are: a non-positive call-equivalent price,
//     τ = 0, non-convergence within the round cap or a kernel NaN/Inf give
//     a NaN entry while the rest of the batch is returned normally.
//
// ⚙️ Usage:
//
//	iv, err := impvol.Solve(impvol.Input{
//		CP:  impvol.Scalar(impvol.Calls),
//		P:   prices,                           // g×h
//		S:   impvol.Scalar(100),
//		K:   impvol.Row(90, 100, 110),         // strikes across
//		Tau: impvol.Col(0.25, 0.5),            // expiries down
//		R:   impvol.Scalar(0.01),
//		Q:   impvol.Scalar(0.03),
//	}, impvol.WithWorkers(0))
//
// Concurrency: WithWorkers splits each round over goroutines working on
// disjoint index ranges. Output is bitwise identical for any worker count.
package impvol
