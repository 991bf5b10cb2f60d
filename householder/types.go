// SPDX-License-Identifier: MIT

package householder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ivsurface/bsm"
)

// Sentinel errors for iterator construction.
var (
	// ErrLengthMismatch is returned when markets, prices and seeds differ in length.
	ErrLengthMismatch = errors.New("householder: length mismatch")

	// ErrInvalidOptions is returned for a negative/NaN tolerance or MaxRounds < 1.
	ErrInvalidOptions = errors.New("householder: invalid options")
)

// Defaults of the refinement loop.
const (
	// DefaultTolerance is the absolute price error below which an element converges.
	DefaultTolerance = 1e-12

	// DefaultMaxRounds caps the number of update rounds shared by the whole batch.
	DefaultMaxRounds = 10

	// DefaultWorkers runs every round on the calling goroutine.
	DefaultWorkers = 1
)

// minChunk is the smallest slice of the active list handed to one goroutine.
const minChunk = 64

// Status is the lifecycle state of one element. Every state except Active is
// terminal.
type Status uint8

const (
	// Active elements are still being refined.
	Active Status = iota
	// Converged elements reached |error| <= tolerance at a non-negative σ.
	Converged
	// Exhausted elements were still Active when the round cap was hit.
	Exhausted
	// Diverged elements produced a non-finite error or converged to σ < 0.
	Diverged
	// Rejected elements had a non-positive price and were never iterated.
	Rejected
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Diverged:
		return "diverged"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Problem is the read-only input of the iteration: one market and one
// call-equivalent price per element.
type Problem struct {
	Markets []bsm.Market
	Prices  []float64
}

// Len returns the number of elements.
func (p Problem) Len() int { return len(p.Prices) }

// RoundStats summarizes the batch after a round. MaxAbsErr is the largest
// |error| among elements that are still Active (0 when none are).
type RoundStats struct {
	Round     int
	Active    int
	Converged int
	Exhausted int
	Diverged  int
	Rejected  int
	MaxAbsErr float64
}

// Options tunes the iteration. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Tolerance on |market price − model price|.
	Tolerance float64

	// MaxRounds bounds the number of update rounds (k_max).
	MaxRounds int

	// Workers is the number of goroutines sharing a round. Values < 1 mean 1.
	Workers int

	// OnRound, if non-nil, is called on the calling goroutine after every round.
	OnRound func(RoundStats)
}

// DefaultOptions returns Options with tolerance 1e-12, 10 rounds, one worker
// and no hook.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxRounds: DefaultMaxRounds,
		Workers:   DefaultWorkers,
	}
}

// State is a snapshot of the per-element bookkeeping.
type State struct {
	Sigma  []float64
	Err    []float64
	Status []Status
	Round  int
}
