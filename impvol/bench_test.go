// SPDX-License-Identifier: MIT

package impvol_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ivsurface/bsm"
	"github.com/katalvlaran/ivsurface/impvol"
)

// benchInput builds an n×n call surface priced at a smile.
func benchInput(b *testing.B, n int) impvol.Input {
	b.Helper()
	strikes := make([]float64, n)
	taus := make([]float64, n)
	prices := make([][]float64, n)
	for j := range strikes {
		strikes[j] = 70 + 60*float64(j)/float64(n)
	}
	for i := range taus {
		taus[i] = 0.1 + 2*float64(i)/float64(n)
		prices[i] = make([]float64, n)
		for j, k := range strikes {
			mk := bsm.Market{Spot: 100, Strike: k, Tau: taus[i], Rate: 0.01, Yield: 0.02}
			prices[i][j] = bsm.Price(impvol.Calls, mk, 0.15+0.1*float64(j)/float64(n))
		}
	}
	p, err := impvol.Grid(prices)
	if err != nil {
		b.Fatal(err)
	}

	return impvol.Input{
		CP: impvol.Scalar(impvol.Calls), P: p, S: impvol.Scalar(100),
		K: impvol.Row(strikes...), Tau: impvol.Col(taus...), R: impvol.Scalar(0.01), Q: impvol.Scalar(0.02),
	}
}

// BenchmarkSolve reports the cost of one surface for several worker counts.
func BenchmarkSolve(b *testing.B) {
	in := benchInput(b, 200)
	for _, w := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := impvol.Solve(in, impvol.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
