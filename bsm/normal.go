// SPDX-License-Identifier: MIT

package bsm

import "math"

// invSqrt2Pi is 1/√(2π).
const invSqrt2Pi = 0.3989422804014327

// NormCDF is the standard normal cumulative distribution function.
//
//	N(x) = 0.5·(1 + erf(x/√2)) = 0.5·erfc(−x/√2)
func NormCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// NormPDF is the standard normal density exp(−x²/2)/√(2π).
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) * invSqrt2Pi
}
