// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes NotNil(a) → NotNil(b) → SameShape(a,b).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a,b non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateColumn checks that m is non-nil and has the vector layout (n×1).
func ValidateColumn(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Cols() != 1 {
		return validatorErrorf("ValidateColumn", ErrNotColumn)
	}

	return nil
}

// ValidatePowerOfTwo checks that n == 2^k (k >= 0).
func ValidatePowerOfTwo(n int) error {
	if !IsPowerOfTwo(n) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwo(%d)", n), ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateVecLen checks that len(x) == want for MatVec-like operations.
func ValidateVecLen(x []complex128, want int) error {
	if len(x) != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
