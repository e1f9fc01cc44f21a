// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and the determinant
// derived from it.
//
// Purpose:
//   - Factor a square A into P·A = L·U (L unit lower, U upper) while tracking
//     the number of row swaps, whose parity fixes the sign of det(A).
//   - Serve as the only source of truth for Determinant.
//
// Determinism:
//   - Ties in pivot selection keep the topmost row; loop orders are fixed.

package matrix

import "math"

// ZeroPivot is the sentinel for detecting an exactly-zero pivot.
// Near-zero pivots are not treated as singular.
const ZeroPivot = 0.0

// LU holds the result of Factorize.
//   - L: unit lower triangular, n×n.
//   - U: upper triangular, n×n, with exact zeros below the diagonal. When
//     Singular, columns from the zero pivot on are left uneliminated.
//   - Perm: Perm[i] is the original row of A now at row i of U.
//   - Swaps: number of row interchanges performed.
//   - Singular: an exactly-zero pivot was met. Elimination stops at that
//     column and the remaining entries of L stay 0.
type LU struct {
	L        *Dense
	U        *Dense
	Perm     []int
	Swaps    int
	Singular bool
}

// Factorize computes the Doolittle factorization of m with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m). L = I, U = copy of m, Perm = identity.
//   - Stage 2: for each pivot column k = 0..n-2:
//     pick the row p ≥ k with the largest |U[p,k]|; if p ≠ k swap rows k,p in U,
//     the computed part of L and Perm, and count the swap.
//     If U[k,k] == 0 mark singular. While not singular, eliminate below k:
//     L[i,k] = U[i,k]/U[k,k]; U[i,k] = 0; U[i,j>k] -= L[i,k]*U[k,j].
//   - Stage 3: U[n-1,n-1] == 0 also marks singular.
//
// Behavior highlights:
//   - Always terminates in O(n³), singular or not.
//   - n = 1: no elimination; singular iff the single entry is exactly 0.
//   - m is read-only.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m *Dense) (*LU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	f := &LU{L: L, U: U, Perm: perm}

	var (
		i, j, k, p    int
		maxAbs, v     float64
		factor, pivot float64
		baseK, baseI  int
		u, l          = U.data, L.data
	)
	for k = 0; k < n-1; k++ {
		// Partial pivoting: largest magnitude in column k, rows k..n-1.
		p = k
		maxAbs = math.Abs(u[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(u[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if p != k {
			swapRows(u, n, k, p, 0, n)
			swapRows(l, n, k, p, 0, k) // only the already computed multipliers
			perm[k], perm[p] = perm[p], perm[k]
			f.Swaps++
		}

		baseK = k * n
		pivot = u[baseK+k]
		if pivot == ZeroPivot {
			f.Singular = true
		}
		if f.Singular {
			continue
		}

		for i = k + 1; i < n; i++ {
			baseI = i * n
			factor = u[baseI+k] / pivot
			l[baseI+k] = factor
			u[baseI+k] = 0
			for j = k + 1; j < n; j++ {
				u[baseI+j] -= u[baseK+j] * factor
			}
		}
	}
	if u[(n-1)*n+(n-1)] == ZeroPivot {
		f.Singular = true
	}

	return f, nil
}

// swapRows exchanges columns [from,to) of rows a and b in an n-wide buffer.
func swapRows(data []float64, n, a, b, from, to int) {
	ra, rb := a*n, b*n
	for j := from; j < to; j++ {
		data[ra+j], data[rb+j] = data[rb+j], data[ra+j]
	}
}

// Det returns (-1)^Swaps · Π U[i,i], or exactly 0 when the factorization is singular.
// Complexity: O(n).
func (f *LU) Det() float64 {
	if f.Singular {
		return 0
	}
	n := f.U.r
	det := 1.0
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}
	if f.Swaps&1 == 1 {
		det = -det
	}

	return det
}

// Release drops L, U and the permutation. Safe to call more than once.
func (f *LU) Release() {
	if f == nil {
		return
	}
	f.L.Release()
	f.U.Release()
	f.Perm = nil
	f.Swaps = 0
}

// Determinant returns det(m) via Factorize.
//
// Implementation:
//   - Stage 1: Factorize(m) (validates valid + square).
//   - Stage 2: return LU.Det(); the factors are released before return.
//
// Behavior highlights:
//   - Singular matrices (exactly-zero pivot) yield exactly 0.
//   - Exact for integer-valued inputs up to float64 rounding; sign follows the
//     permutation parity.
//
// Errors:
//   - ErrInvalidMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²) transient.
func Determinant(m *Dense) (float64, error) {
	f, err := Factorize(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	defer f.Release()

	return f.Det(), nil
}
