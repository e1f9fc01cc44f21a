// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public operation returns one of these sentinels, wrapped with the
// operation tag (e.g. "Inverse: matrix: singular matrix"). Callers match them
// with errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// invalid operand -> shape/square -> singular.
// Operands are checked left to right, so Add(bad, bad2) reports the first one.

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive
	// (NewDense, NewIdentity) or a row literal is empty/ragged (NewDenseFromRows).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrInvalidMatrix indicates a malformed operand: nil, released, non-positive
	// dimensions, or a backing buffer whose length disagrees with rows*cols.
	ErrInvalidMatrix = errors.New("matrix: invalid matrix")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub with
	// different shapes or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAllocation is returned when rows*cols cannot be represented as a
	// buffer length on this platform.
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set and Minor return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Operation tags for unified error wrapping.
const (
	opNewDense    = "NewDense"
	opFromRows    = "NewDenseFromRows"
	opIdentity    = "NewIdentity"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opLU          = "LU"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opComplements = "Complements"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
