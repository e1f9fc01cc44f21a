// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating validity/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap once more with their operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (Valid → Shape).
//  - All checks are O(1) and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsValid reports whether m is structurally well-formed: non-nil, positive
// dimensions, and a backing buffer of exactly rows*cols elements.
// A released or zero-value Dense is not valid.
func (m *Dense) IsValid() bool {
	return m != nil && m.r > 0 && m.c > 0 && m.data != nil && len(m.data) == m.r*m.c
}

// IsSquare reports whether Rows == Cols. It does not check validity.
func (m *Dense) IsSquare() bool {
	return m != nil && m.r == m.c
}

// ValidateMatrix ensures m is a well-formed operand.
//
// Errors: ErrInvalidMatrix.
// Complexity: O(1).
func ValidateMatrix(m *Dense) error {
	if !m.IsValid() {
		return validatorErrorf("ValidateMatrix", ErrInvalidMatrix)
	}

	return nil
}

// ValidateSquare – Composite: Valid → Square.
//
// Errors: ErrInvalidMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateMatrix(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateSameShape – Composite: Valid(a) → Valid(b) → equal dimensions.
//
// Errors: ErrInvalidMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrShapeMismatch))
	}

	return nil
}

// ValidateMulCompatible – Composite: Valid(a) → Valid(b) → a.Cols == b.Rows.
//
// Errors: ErrInvalidMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("inner %d vs %d: %w", a.c, b.r, ErrShapeMismatch))
	}

	return nil
}
