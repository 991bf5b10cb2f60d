// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivsurface/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Floor ---------------------------------------------------------------------

// TestFloor_FastAndFallback_Match verifies the clamp and NaN pass-through.
func TestFloor_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{-1, 0, 2}, {math.NaN(), -0.5, 3}})

	fast, err := matrix.Floor(X, 0)
	require.NoError(t, err)
	slow, err := matrix.Floor(hide{X}, 0)
	require.NoError(t, err)

	want := mustRows(t, [][]float64{{0, 0, 2}, {math.NaN(), 0, 3}})
	for _, got := range []*matrix.Dense{fast, slow} {
		ok, err := matrix.AllClose(got, want, 0, 0, true)
		require.NoError(t, err)
		assert.True(t, ok, "got\n%v", got)
	}
}

// TestFloor_BadBound rejects a NaN floor.
func TestFloor_BadBound(t *testing.T) {
	t.Parallel()
	_, err := matrix.Floor(matrix.NewScalar(1), math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Floor(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- AllClose ------------------------------------------------------------------

// TestAllClose_NaNPolicy checks NaN matching in both modes and tolerances.
func TestAllClose_NaNPolicy(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{math.NaN(), 1.0, math.Inf(1)}})
	b := mustRows(t, [][]float64{{math.NaN(), 1.0 + 1e-9, math.Inf(1)}})

	ok, err := matrix.AllClose(a, b, 0, 1e-8, true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-8, false)
	require.NoError(t, err)
	assert.False(t, ok, "NaN must not match NaN when equalNaN=false")

	ok, err = matrix.AllClose(hide{a}, hide{b}, 0, 1e-12, true)
	require.NoError(t, err)
	assert.False(t, ok, "1e-9 gap exceeds atol=1e-12")

	_, err = matrix.AllClose(a, matrix.NewScalar(1), 0, 0, true)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.NaN(), 0, true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCountNaN counts sentinels on both paths.
func TestCountNaN(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{math.NaN(), 1}, {math.NaN(), math.Inf(1)}})
	n, err := matrix.CountNaN(X)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = matrix.CountNaN(hide{X})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
