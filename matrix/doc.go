// Package matrix is a dense, real-valued matrix algebra library with no
// dependencies outside the standard library.
//
// The matrix package provides:
//
//   - Dense: a rows×cols float64 matrix over one contiguous row-major buffer,
//     created zeroed by NewDense and returned to its zero value by Release.
//   - Elementwise arithmetic: Add, Sub, Scale, Mul, Transpose and Equal
//     (absolute tolerance EqualTolerance = 1e-7).
//   - Factorize: LU with partial pivoting and permutation-parity tracking,
//     the single source of truth for Determinant.
//   - Minor, Complements and Inverse (adjugate over determinant).
//
// Every operation validates its operands first and returns a sentinel error
// (ErrInvalidMatrix, ErrShapeMismatch, ErrNonSquare, ErrSingular, ...)
// wrapped with the operation name; match with errors.Is. Results are always
// freshly allocated; operands are never mutated.
//
// A Dense carries no internal locking: share it read-only, or give each
// goroutine its own instance.
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) { ... }
package matrix
