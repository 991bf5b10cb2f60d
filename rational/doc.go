// Package rational computes the starting volatility of the implied-volatility
// root-finder with the rational approximation of Li (2006), "You Don't Have
// to Bother Newton for Implied Volatility".
//
// For a call-equivalent price P the quote is normalized to
//
//	c = P / (S·e^(−qτ))            normalized price
//	x = ln(S·e^((r−q)τ) / K)       normalized log-moneyness
//
// and v ≈ σ√τ is read off a fixed two-variable rational function. Negative
// moneyness uses the function directly; positive moneyness is mapped back
// through put-call symmetry. The fit is only trusted for |x| <= 0.5,
// 0 < v < 1 and |x/v| <= 2; elsewhere v falls back to DefaultFallback (or a
// caller-supplied constant).
//
// The coefficient tables are static package data.
package rational
