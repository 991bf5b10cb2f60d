// Package householder refines implied-volatility seeds with third-order
// Householder steps over a shrinking active set.
//
// Every element moves from Active to exactly one terminal state:
// Converged, Exhausted (round cap reached), Diverged (non-finite error or a
// negative root) or Rejected (non-positive price, never iterated). Only
// Active elements are evaluated in a round, so retired elements cost
// nothing. The round counter is shared by the whole batch.
package householder
