// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
	"github.com/katalvlaran/ivsurface/impvol"
	"github.com/katalvlaran/ivsurface/matrix"
)

// Quote is one CSV input row. Day is optional; quotes sharing a day are
// solved as one batch.
type Quote struct {
	Day    string  `csv:"day"`
	CP     float64 `csv:"cp"`
	Price  float64 `csv:"price"`
	Spot   float64 `csv:"spot"`
	Strike float64 `csv:"strike"`
	Tau    float64 `csv:"tau"`
	Rate   float64 `csv:"rate"`
	Yield  float64 `csv:"yield"`
}

// Result is one CSV output row: the quote followed by its implied volatility.
type Result struct {
	Day    string  `csv:"day"`
	CP     float64 `csv:"cp"`
	Price  float64 `csv:"price"`
	Spot   float64 `csv:"spot"`
	Strike float64 `csv:"strike"`
	Tau    float64 `csv:"tau"`
	Rate   float64 `csv:"rate"`
	Yield  float64 `csv:"yield"`
	IV     float64 `csv:"iv"`
}

// ReadQuotes decodes a headed CSV of quotes.
func ReadQuotes(r io.Reader) ([]Quote, error) {
	var qs []Quote
	if err := gocsv.Unmarshal(r, &qs); err != nil {
		return nil, fmt.Errorf("read quotes: %w", err)
	}

	return qs, nil
}

// WriteResults encodes results with a header row.
func WriteResults(w io.Writer, rs []Result) error {
	if err := gocsv.Marshal(rs, w); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return nil
}

// ToInput lays the quotes out as an N×1 batch.
func ToInput(qs []Quote) impvol.Input {
	cols := make([][]float64, 7)
	for k := range cols {
		cols[k] = make([]float64, len(qs))
	}
	for i, q := range qs {
		cols[0][i], cols[1][i], cols[2][i] = q.CP, q.Price, q.Spot
		cols[3][i], cols[4][i], cols[5][i], cols[6][i] = q.Strike, q.Tau, q.Rate, q.Yield
	}

	return impvol.Input{
		CP:  impvol.Col(cols[0]...),
		P:   impvol.Col(cols[1]...),
		S:   impvol.Col(cols[2]...),
		K:   impvol.Col(cols[3]...),
		Tau: impvol.Col(cols[4]...),
		R:   impvol.Col(cols[5]...),
		Q:   impvol.Col(cols[6]...),
	}
}

// Join pairs every quote with row i of the N×1 volatility column.
func Join(qs []Quote, iv matrix.Matrix) ([]Result, error) {
	rs := make([]Result, len(qs))
	for i, q := range qs {
		v, err := iv.At(i, 0)
		if err != nil {
			return nil, fmt.Errorf("join row %d: %w", i, err)
		}
		if err := copier.Copy(&rs[i], &q); err != nil {
			return nil, fmt.Errorf("join row %d: %w", i, err)
		}
		rs[i].IV = v
	}

	return rs, nil
}

// Group is the set of quote indices that share a day, in input order.
type Group struct {
	Day   string
	Index []int
}

// GroupByDay partitions qs by Day, keeping first-seen order of days.
func GroupByDay(qs []Quote) []Group {
	var gs []Group
	pos := make(map[string]int)
	for i, q := range qs {
		k, ok := pos[q.Day]
		if !ok {
			k = len(gs)
			pos[q.Day] = k
			gs = append(gs, Group{Day: q.Day})
		}
		gs[k].Index = append(gs[k].Index, i)
	}

	return gs
}

// Pick returns the quotes at idx.
func Pick(qs []Quote, idx []int) []Quote {
	out := make([]Quote, len(idx))
	for k, i := range idx {
		out[k] = qs[i]
	}

	return out
}
