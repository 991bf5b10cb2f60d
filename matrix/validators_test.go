// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ivsurface/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNotNil rejects untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(matrix.NewScalar(0)))
}

// TestValidateBroadcastable checks each axis independently.
func TestValidateBroadcastable(t *testing.T) {
	t.Parallel()

	row := mustRows(t, [][]float64{{1, 2, 3}})
	require.NoError(t, matrix.ValidateBroadcastable(row, 4, 3))
	require.ErrorIs(t, matrix.ValidateBroadcastable(row, 4, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBroadcastable(row, 0, 3), matrix.ErrInvalidDimensions)
}
