// SPDX-License-Identifier: MIT

// Command ivsurface solves implied volatilities for a CSV of option quotes.
//
// Input columns: cp,price,spot,strike,tau,rate,yield (cp is +1 call, −1 put)
// and an optional day column; each day is solved as its own batch.
// Output: the same rows with an iv column on stdout; NaN marks quotes with
// no implied volatility. A summary goes to stderr.
//
//	IVSURFACE_WORKERS=0 ivsurface quotes.csv > iv.csv
//
// Settings come from IVSURFACE_* environment variables (see Config); glog
// flags such as -logtostderr and -v are accepted.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/katalvlaran/ivsurface/householder"
	"github.com/katalvlaran/ivsurface/impvol"
)

// errNoQuotes is returned for an input without data rows.
var errNoQuotes = errors.New("ivsurface: no quotes")

func main() {
	flag.Parse()
	defer glog.Flush()

	cfg, err := LoadConfig(flag.Args())
	if err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(2)
	}
	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

// run reads, solves, writes and summarizes the quotes. Every day is an
// independent batch; the whole set is solved cfg.Repeat times for timing.
func run(cfg *Config, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	qs, err := ReadQuotes(in)
	if err != nil {
		return err
	}
	if len(qs) == 0 {
		return errNoQuotes
	}
	groups := GroupByDay(qs)
	glog.Infof("read %d quotes in %d day(s) from %s", len(qs), len(groups), cfg.Input)

	opts := []impvol.Option{
		impvol.WithWorkers(cfg.Workers),
		impvol.WithTolerance(cfg.Tolerance),
		impvol.WithMaxRounds(cfg.MaxRounds),
		impvol.WithFallback(cfg.Fallback),
		impvol.WithOnRound(func(s householder.RoundStats) {
			if glog.V(1) {
				glog.Infof("round %d: active=%d converged=%d max|err|=%.3g",
					s.Round, s.Active, s.Converged, s.MaxAbsErr)
			}
		}),
	}

	rs := make([]Result, len(qs))
	steps := make([]time.Duration, cfg.Repeat)
	for step := range steps {
		for _, g := range groups {
			day := Pick(qs, g.Index)
			start := time.Now()
			iv, err := impvol.Solve(ToInput(day), opts...)
			steps[step] += time.Since(start)
			if err != nil {
				return fmt.Errorf("day %q: %w", g.Day, err)
			}
			if step > 0 {
				continue
			}
			joined, err := Join(day, iv)
			if err != nil {
				return err
			}
			for k, i := range g.Index {
				rs[i] = joined[k]
			}
		}
	}

	if err := WriteResults(stdout, rs); err != nil {
		return err
	}
	summarize(stderr, Summarize(rs, len(groups), steps))

	return nil
}

// Summary is the timing and outcome report of one run.
type Summary struct {
	Quotes, NaN, Days, Steps int
	Total                    time.Duration
	Best, Mean               time.Duration // per option
}

// Summarize computes the report from the results and per-step durations.
// Without results or steps there is nothing to report and the zero Summary
// is returned.
func Summarize(rs []Result, days int, steps []time.Duration) Summary {
	if len(rs) == 0 || len(steps) == 0 {
		return Summary{}
	}
	s := Summary{Quotes: len(rs), Days: days, Steps: len(steps)}
	for _, r := range rs {
		if math.IsNaN(r.IV) {
			s.NaN++
		}
	}
	best := steps[0]
	for _, d := range steps {
		s.Total += d
		best = min(best, d)
	}
	s.Best = best / time.Duration(len(rs))
	s.Mean = s.Total / time.Duration(len(rs)*len(steps))

	return s
}

// summarize prints the report; NaN counts are highlighted.
func summarize(w io.Writer, s Summary) {
	ok := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgYellow, color.Bold)

	ok.Fprintf(w, "%d quotes solved", s.Quotes-s.NaN)
	if s.NaN > 0 {
		fmt.Fprint(w, ", ")
		bad.Fprintf(w, "%d NaN", s.NaN)
	}
	fmt.Fprintf(w, " in %d day(s)\n", s.Days)
	fmt.Fprintf(w, "steps %d, total %s\n", s.Steps, s.Total)
	fmt.Fprintf(w, "best %.3f µs/option, mean %.3f µs/option\n", micros(s.Best), micros(s.Mean))
}

// micros converts d to fractional microseconds.
func micros(d time.Duration) float64 { return float64(d.Nanoseconds()) / 1e3 }
