// SPDX-License-Identifier: MIT
// Package matrix: elementwise arithmetic kernels on *Dense.
//
// Purpose:
//   - Equality with an absolute tolerance, Add/Sub, Scale, Mul and Transpose.
//   - Every kernel validates operands first and allocates a fresh result sized
//     to the mathematical shape; operands are never mutated or aliased.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 or i→k→j); results are stable across runs.

package matrix

import "math"

// EqualTolerance is the absolute per-element tolerance used by Equal.
// It is not scaled by magnitude: for entries around 1e9 and above, real
// differences smaller than 1e-7 are reported as equal.
const EqualTolerance = 1e-7

// Equal reports whether a and b have the same shape and every pair of
// elements differs by at most EqualTolerance.
// Equal is a total predicate: invalid operands or a shape mismatch yield false.
// A NaN element never compares equal; infinities equal only the same infinity.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b *Dense) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	var x, y float64
	for idx := range a.data {
		x, y = a.data[idx], b.data[idx]
		if x == y {
			continue
		}
		if !(math.Abs(x-y) <= EqualTolerance) {
			return false
		}
	}

	return true
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub for validation, allocation and the flat loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
//
// Errors:
//   - ErrInvalidMatrix (malformed operand), ErrShapeMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh matrix.
//
// Errors:
//   - ErrInvalidMatrix (malformed operand), ErrShapeMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are k * m[i,j].
// k = 0 yields an explicit zero matrix of the same shape; NaN/Inf propagate.
//
// Errors: ErrInvalidMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, k float64) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] = m.data[idx] * k
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate both operands and the inner dimension (A.Cols == B.Rows).
//   - Stage 2: allocate C (A.Rows × B.Cols) and accumulate with i→k→j over
//     row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrInvalidMatrix, ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrInvalidMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
