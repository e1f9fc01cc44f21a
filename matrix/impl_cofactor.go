// SPDX-License-Identifier: MIT
// Package matrix: minors, the cofactor (complements) matrix and the classical
// adjugate inverse.
//
// Every minor is transient: allocated, consumed by Determinant and released
// within its own cell computation.

package matrix

import "fmt"

// Minor returns the (n-1)×(n-1) submatrix of m obtained by deleting row and
// col, keeping the relative order of the remaining rows and columns.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare.
//   - ErrOutOfRange when row or col is outside [0, n).
//   - ErrInvalidDimensions for n = 1 (the minor would be empty).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.r
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	res, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	var i, j, dst int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[i*n+j]
			dst++
		}
	}

	return res, nil
}

// Complements returns the cofactor matrix C with C[i,j] = (-1)^(i+j) · det(Minor(m,i,j)).
//
// Implementation:
//   - Stage 1: ValidateSquare(m); allocate C (n×n).
//   - Stage 2: n = 1 → C = [[1]] (the empty minor has determinant 1).
//   - Stage 3: for each cell build the minor, take its determinant, apply the
//     checkerboard sign; the minor is released before moving on.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²·(n-1)³) = O(n⁵), Space O(n²).
func Complements(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}
	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opComplements, err)
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	var i, j int
	var cof float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cof, err = cofactor(m, i, j); err != nil {
				res.Release()

				return nil, matrixErrorf(opComplements, err)
			}
			res.data[i*n+j] = cof
		}
	}

	return res, nil
}

// cofactor computes (-1)^(i+j) · det(Minor(m,i,j)) with a cell-scoped minor.
func cofactor(m *Dense, i, j int) (float64, error) {
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, err
	}
	defer minor.Release()

	det, err := Determinant(minor)
	if err != nil {
		return 0, err
	}
	if (i+j)&1 == 1 {
		return -det, nil
	}

	return det, nil
}

// Inverse computes A⁻¹ = adj(A) / det(A), where adj(A) = Complements(A)ᵀ.
//
// Implementation:
//   - Stage 1: det = Determinant(m) (validates valid + square).
//   - Stage 2: det == 0 → ErrSingular.
//   - Stage 3: M = Complements(m), MT = Transpose(M), result = Scale(MT, 1/det).
//     M and MT are released before return on every path.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n⁵) (dominated by Complements), Space O(n²).
//
// Notes:
//   - Singularity is exact: ill-conditioned but nonsingular inputs are inverted.
func Inverse(m *Dense) (*Dense, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	cof, err := Complements(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer cof.Release()

	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer adj.Release()

	inv, err := Scale(adj, 1.0/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
