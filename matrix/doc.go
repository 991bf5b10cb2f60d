// Package matrix provides the two-dimensional float64 containers that carry
// option-quote batches through the implied-volatility pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major g×h buffer with bounds-checked At/Set and a flat
//     view (Flat) for tight per-element loops.
//   - BroadcastTo, numpy-style expansion of 1×1, 1×h and g×1 operands to a
//     common g×h shape; anything else is ErrDimensionMismatch.
//   - Element-wise helpers used around the solver: Floor (arbitrage floor,
//     NaN passes through), AllClose with NaN-aware comparison, CountNaN.
//
// NaN is a legitimate value here: it is the per-element failure sentinel of
// the solver. The default numeric policy therefore admits NaN/Inf; strict
// ingestion is available through WithValidateNaNInf.
//
// See example_test.go for usage patterns.
package matrix
