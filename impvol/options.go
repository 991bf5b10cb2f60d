// SPDX-License-Identifier: MIT

package impvol

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/ivsurface/householder"
	"github.com/katalvlaran/ivsurface/rational"
)

// Option configures Solve via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	// Tolerance on |market price − model price| (default 1e-12).
	Tolerance float64

	// MaxRounds caps the refinement rounds (default 10).
	MaxRounds int

	// Fallback is the normalized volatility σ√τ used outside the domain of
	// the rational approximation (default 0.8).
	Fallback float64

	// Workers is the number of goroutines per round (default 1).
	Workers int

	// Logger, if non-nil, receives one debug record per round and a summary.
	Logger *slog.Logger

	// OnRound, if non-nil, is called after every round.
	OnRound func(householder.RoundStats)

	err error
}

// DefaultOptions returns the configuration used when Solve gets no options.
func DefaultOptions() Options {
	return Options{
		Tolerance: householder.DefaultTolerance,
		MaxRounds: householder.DefaultMaxRounds,
		Fallback:  rational.DefaultFallback,
		Workers:   householder.DefaultWorkers,
	}
}

// WithTolerance sets the convergence tolerance. tol must be finite and >= 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol >= 0) || math.IsInf(tol, 1) {
			o.err = fmt.Errorf("%w: tolerance must be finite and >= 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxRounds sets the round cap. n must be >= 1.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRounds must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithFallback overrides the out-of-domain normalized volatility.
// v must be finite and > 0.
func WithFallback(v float64) Option {
	return func(o *Options) {
		if !(v > 0) || math.IsInf(v, 1) {
			o.err = fmt.Errorf("%w: fallback must be finite and > 0 (%g)", ErrOptionViolation, v)
			return
		}
		o.Fallback = v
	}
}

// WithWorkers sets the number of goroutines per round.
//
//	n > 0: use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a per-round callback.
func WithOnRound(fn func(householder.RoundStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
