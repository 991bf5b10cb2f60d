// SPDX-License-Identifier: MIT

package impvol

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ivsurface/householder"
	"github.com/katalvlaran/ivsurface/matrix"
)

// Solve computes Black-Scholes implied volatilities for a batch of quotes and
// returns them in the shape of in.P.
//
// Implementation:
//   - Stage 1: Normalize (broadcast, put-call parity, floor at zero).
//   - Stage 2: seed every quote with the rational approximation.
//   - Stage 3: refine with the active-set Householder iteration.
//   - Stage 4: Assemble; quotes that were rejected, diverged or ran out of
//     rounds are NaN.
//
// Only structural problems are errors (ErrNilInput, ErrShapeMismatch,
// ErrOptionViolation); a batch with pathological quotes still succeeds.
//
// Complexity: O(g·h·rounds) kernel evaluations, O(g·h) memory.
func Solve(in Input, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	b, err := Normalize(in)
	if err != nil {
		return nil, err
	}

	it, err := householder.NewIterator(b.Problem(), InitialGuess(b, o.Fallback), householder.Options{
		Tolerance: o.Tolerance,
		MaxRounds: o.MaxRounds,
		Workers:   o.Workers,
		OnRound:   o.roundHook(),
	})
	if err != nil {
		return nil, fmt.Errorf("impvol: %w", err)
	}
	st := it.Run()

	if o.Logger != nil {
		s := it.Stats()
		o.Logger.Debug("implied volatility solved",
			slog.Int("rows", b.Rows),
			slog.Int("cols", b.Cols),
			slog.Int("rounds", st.Round),
			slog.Int("converged", s.Converged),
			slog.Int("exhausted", s.Exhausted),
			slog.Int("diverged", s.Diverged),
			slog.Int("rejected", s.Rejected),
		)
	}

	return Assemble(b, it.Result())
}

// roundHook combines the user callback with per-round debug logging.
func (o *Options) roundHook() func(householder.RoundStats) {
	if o.Logger == nil {
		return o.OnRound
	}
	logger, user := o.Logger, o.OnRound

	return func(s householder.RoundStats) {
		logger.Debug("householder round",
			slog.Int("round", s.Round),
			slog.Int("active", s.Active),
			slog.Int("converged", s.Converged),
			slog.Float64("max_abs_err", s.MaxAbsErr),
		)
		if user != nil {
			user(s)
		}
	}
}
