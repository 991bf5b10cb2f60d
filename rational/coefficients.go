// SPDX-License-Identifier: MIT

package rational

// Literal constants of Li (2006), "You Don't Have to Bother Newton for
// Implied Volatility", Eq. 19. They are read-only package data.

// terms is the number of monomials in numerator and denominator sums.
const terms = 14

// p holds the coefficients of the leading terms p0·x + p1·√c + p2·c.
var p = [3]float64{-0.969271876255, 0.097428338274, 1.750081126685}

// m holds the denominator coefficients.
var m = [terms]float64{
	6.268456292246,
	-6.284840445036,
	30.068281276567,
	-11.780036995036,
	-2.310966989723,
	-11.473184324152,
	-230.101682610568,
	86.127219899668,
	3.730181294225,
	-13.954993561151,
	261.950288864225,
	20.090690444187,
	-50.117067019539,
	13.723711519422,
}

// n holds the numerator coefficients.
var n = [terms]float64{
	-0.068098378725,
	0.440639436211,
	-0.263473754689,
	-5.792537721792,
	-5.267481008429,
	4.714393825758,
	3.529944137559,
	-23.636495876611,
	-9.020361771283,
	14.749084301452,
	-32.570660102526,
	76.398155779133,
	41.855161781749,
	-12.150611865704,
}

// exps holds the (i, j) exponent pair of monomial k: x^i · (√c)^j.
var exps = [terms][2]int{
	{0, 1}, {1, 0}, {0, 2}, {1, 1}, {2, 0},
	{0, 3}, {1, 2}, {2, 1}, {3, 0},
	{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0},
}

// maxDegree bounds every exponent in exps.
const maxDegree = 4
