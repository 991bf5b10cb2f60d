// SPDX-License-Identifier: MIT

package impvol

import (
	"fmt"

	"github.com/katalvlaran/ivsurface/matrix"
)

// Assemble reshapes the flat per-quote volatilities into the g×h shape of the
// batch. NaN entries are kept as the failure marker.
func Assemble(b *Batch, sigma []float64) (*matrix.Dense, error) {
	out, err := matrix.NewDenseFromFlat(b.Rows, b.Cols, sigma)
	if err != nil {
		return nil, fmt.Errorf("impvol: assemble: %w", err)
	}

	return out, nil
}
