// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestValidateMatrix(t *testing.T) {
	t.Parallel()

	released := MustDense(t, 2, 2)
	released.Release()

	tests := []struct {
		name    string
		m       *matrix.Dense
		wantErr error
	}{
		{"nil", nil, matrix.ErrInvalidMatrix},
		{"zero value", &matrix.Dense{}, matrix.ErrInvalidMatrix},
		{"released", released, matrix.ErrInvalidMatrix},
		{"valid 2x3", MustDense(t, 2, 3), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMatrix(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.True(t, tc.m.IsValid())
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			require.False(t, tc.m.IsValid())
		})
	}
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrInvalidMatrix)
	require.True(t, MustDense(t, 4, 4).IsSquare())
	require.False(t, MustDense(t, 4, 1).IsSquare())
}

// TestValidateSameShape covers invalid inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrInvalidMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrInvalidMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrInvalidMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrShapeMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrShapeMismatch},
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

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 3, 2), MustDense(t, 2, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 3, 2), MustDense(t, 3, 2)), matrix.ErrShapeMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 3, 2), nil), matrix.ErrInvalidMatrix)
}
