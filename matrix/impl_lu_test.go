// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Factorize and Determinant.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestDeterminant_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"3x3 with last zero", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, 27},
		{"3x3 zero pivot first", [][]float64{{0, 2, 1}, {1, -1, 2}, {3, 0, 1}}, 13},
		{"1x1", [][]float64{{5}}, 5},
		{"1x1 zero", [][]float64{{0}}, 0},
		{"rank one", [][]float64{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}}, 0},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"single swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"4x4 sequential", [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}, 0},
		{"fractional diagonal", [][]float64{{1.5, 0}, {0, 1.5}}, 2.25},
		{"zero row", [][]float64{{1, 2}, {0, 0}}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			det, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, det, deltaLoose)
		})
	}
}

func TestDeterminant_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "Determinant:")

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)

	released := MustDense(t, 2, 2)
	released.Release()
	_, err = matrix.Determinant(released)
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)
}

func TestDeterminant_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 2, 1}, {1, -1, 2}, {3, 0, 1}}
	a := MustRows(t, rows)
	_, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.Equal(t, rows, a.RawRows())
}

func TestFactorize_ReconstructsPermutedInput(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		a := MustDense(t, 5, 5)
		RandomFill(t, a, seed)

		f, err := matrix.Factorize(a)
		require.NoError(t, err)
		require.False(t, f.Singular)

		// L is unit lower triangular, U is upper triangular.
		for i := 0; i < 5; i++ {
			require.Equal(t, 1.0, MustAt(t, f.L, i, i))
			for j := i + 1; j < 5; j++ {
				require.Zero(t, MustAt(t, f.L, i, j))
				require.Zero(t, MustAt(t, f.U, j, i))
			}
		}

		// P·A == L·U
		lu, err := matrix.Mul(f.L, f.U)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				require.InDelta(t, MustAt(t, a, f.Perm[i], j), MustAt(t, lu, i, j), deltaStrict)
			}
		}
	}
}

func TestFactorize_SubDiagonalIsExactZero(t *testing.T) {
	t.Parallel()

	// Rows that later become pivots must not keep rounding residue either.
	for n := 2; n <= 8; n++ {
		for seed := int64(1); seed <= 10; seed++ {
			a := MustDense(t, n, n)
			RandomFill(t, a, seed*int64(n))

			f, err := matrix.Factorize(a)
			require.NoError(t, err)
			for i := 1; i < n; i++ {
				for j := 0; j < i; j++ {
					require.Equal(t, 0.0, MustAt(t, f.U, i, j), "n=%d seed=%d U[%d,%d]", n, seed, i, j)
				}
			}
		}
	}
}

func TestFactorize_PivotsOnLargestMagnitude(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {-4, 1}})
	f, err := matrix.Factorize(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, f.Perm)
	require.Equal(t, 1, f.Swaps)
	require.Equal(t, -4.0, MustAt(t, f.U, 0, 0))
	require.InDelta(t, -0.25, MustAt(t, f.L, 1, 0), deltaStrict)
	require.InDelta(t, 9.0, f.Det(), deltaStrict)
}

func TestFactorize_SingularFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"zero column", [][]float64{{0, 1}, {0, 5}}},
		{"zero last row", [][]float64{{1, 2}, {0, 0}}},
		{"duplicate rows", [][]float64{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}}},
		{"1x1 zero", [][]float64{{0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f, err := matrix.Factorize(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.True(t, f.Singular)
			require.Zero(t, f.Det())
		})
	}
}

func TestFactorize_Release(t *testing.T) {
	f, err := matrix.Factorize(MustRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)

	f.Release()
	require.False(t, f.L.IsValid())
	require.False(t, f.U.IsValid())
	require.Nil(t, f.Perm)
	require.NotPanics(t, f.Release)

	var nilLU *matrix.LU
	require.NotPanics(t, nilLU.Release)
}
