// SPDX-License-Identifier: MIT

package householder

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Iterator runs the active-set Householder refinement over a batch.
//
// Implementation:
//   - Stage 1 (NewIterator): evaluate every element once at σ0; elements with
//     a non-positive price are Rejected, the rest are classified.
//   - Stage 2 (Round): advance only the indices in the active list, split into
//     contiguous chunks across Workers goroutines. Each goroutine writes only
//     its own elements, so no locking is needed; Wait is the round barrier.
//   - Stage 3: on the calling goroutine, reclassify the advanced elements and
//     compact the active list. Status never returns to Active.
//   - Stage 4 (Run): repeat until the list is empty or MaxRounds rounds ran;
//     leftovers become Exhausted.
//
// Complexity: O(rounds · active) kernel evaluations, O(n) memory.
type Iterator struct {
	p      Problem
	opts   Options
	elems  []Elem
	status []Status
	active []int
	round  int
	done   bool
	counts [Rejected + 1]int
	errBuf []float64
}

// NewIterator validates the inputs, evaluates the starting point of every
// element and returns an iterator positioned before round 1.
func NewIterator(p Problem, sigma0 []float64, opts Options) (*Iterator, error) {
	n := p.Len()
	if len(p.Markets) != n || len(sigma0) != n {
		return nil, fmt.Errorf("%w: markets=%d prices=%d seeds=%d",
			ErrLengthMismatch, len(p.Markets), n, len(sigma0))
	}
	if !(opts.Tolerance >= 0) || opts.MaxRounds < 1 {
		return nil, fmt.Errorf("%w: tolerance=%g rounds=%d",
			ErrInvalidOptions, opts.Tolerance, opts.MaxRounds)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	it := &Iterator{
		p:      p,
		opts:   opts,
		elems:  make([]Elem, n),
		status: make([]Status, n),
		active: make([]int, 0, n),
	}

	all := make([]int, 0, n)
	for i, price := range p.Prices {
		if price <= 0 {
			it.elems[i] = Elem{Sigma: math.NaN()}
			it.status[i] = Rejected
			it.counts[Rejected]++
			continue
		}
		it.elems[i].Sigma = sigma0[i]
		all = append(all, i)
	}

	it.parallel(all, func(i int) {
		it.elems[i] = Seed(it.p.Markets[i], it.p.Prices[i], it.elems[i].Sigma)
	})
	it.active = it.retire(all, it.active)

	return it, nil
}

// Round performs one refinement round and reports whether it did any work.
// Once the active list is empty, or MaxRounds rounds have run, the remaining
// elements are marked Exhausted and Round returns false.
func (it *Iterator) Round() bool {
	if it.done {
		return false
	}
	if len(it.active) == 0 || it.round >= it.opts.MaxRounds {
		for _, i := range it.active {
			it.status[i] = Exhausted
		}
		it.counts[Active] = 0
		it.counts[Exhausted] += len(it.active)
		it.active = it.active[:0]
		it.done = true

		return false
	}

	it.round++
	it.parallel(it.active, func(i int) {
		it.elems[i] = Advance(it.p.Markets[i], it.p.Prices[i], it.elems[i])
	})
	it.active = it.retire(it.active, it.active[:0])

	if it.opts.OnRound != nil {
		it.opts.OnRound(it.Stats())
	}

	return true
}

// Run drives Round to completion and returns the final state.
func (it *Iterator) Run() State {
	for it.Round() {
	}

	return it.State()
}

// Stats summarizes the current round.
func (it *Iterator) Stats() RoundStats {
	it.errBuf = it.errBuf[:0]
	for _, i := range it.active {
		it.errBuf = append(it.errBuf, it.elems[i].Eval.Err)
	}

	maxAbs := 0.0
	if len(it.errBuf) > 0 {
		maxAbs = floats.Norm(it.errBuf, math.Inf(1))
	}

	return RoundStats{
		Round:     it.round,
		Active:    len(it.active),
		Converged: it.counts[Converged],
		Exhausted: it.counts[Exhausted],
		Diverged:  it.counts[Diverged],
		Rejected:  it.counts[Rejected],
		MaxAbsErr: maxAbs,
	}
}

// State returns a copy of the per-element bookkeeping.
func (it *Iterator) State() State {
	s := State{
		Sigma:  make([]float64, len(it.elems)),
		Err:    make([]float64, len(it.elems)),
		Status: make([]Status, len(it.status)),
		Round:  it.round,
	}
	for i, e := range it.elems {
		s.Sigma[i] = e.Sigma
		s.Err[i] = e.Eval.Err
	}
	copy(s.Status, it.status)

	return s
}

// Result returns σ for Converged elements and NaN for every other element.
func (it *Iterator) Result() []float64 {
	out := make([]float64, len(it.elems))
	for i, e := range it.elems {
		if it.status[i] == Converged {
			out[i] = e.Sigma
		} else {
			out[i] = math.NaN()
		}
	}

	return out
}

// retire classifies the elements of idx and appends those still Active to
// dst, which may alias idx. Counts are updated on the way.
func (it *Iterator) retire(idx, dst []int) []int {
	for _, i := range idx {
		s := Classify(it.elems[i], it.opts.Tolerance)
		it.status[i] = s
		if s == Active {
			dst = append(dst, i)
			continue
		}
		it.counts[s]++
	}
	it.counts[Active] = len(dst)

	return dst
}

// parallel calls fn for every index in idx, splitting idx into contiguous
// chunks over at most Workers goroutines. Small inputs run inline.
func (it *Iterator) parallel(idx []int, fn func(i int)) {
	w := it.opts.Workers
	if w == 1 || len(idx) < 2*minChunk {
		for _, i := range idx {
			fn(i)
		}
		return
	}

	chunk := max((len(idx)+w-1)/w, minChunk)
	var g errgroup.Group
	for lo := 0; lo < len(idx); lo += chunk {
		part := idx[lo:min(lo+chunk, len(idx))]
		g.Go(func() error {
			for _, i := range part {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
