// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with an operation tag via matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> exponent/kind.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Update) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotColumn signals that a column (n×1) matrix was required.
	ErrNotColumn = errors.New("matrix: matrix is not a column")

	// ErrNotPowerOfTwo signals that a dimension must be 2^k for qubit-indexed structure.
	ErrNotPowerOfTwo = errors.New("matrix: dimension is not a power of two")

	// ErrNaNInf signals a NaN or Inf component was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidExponent is returned by Power when the exponent is < 1.
	ErrInvalidExponent = errors.New("matrix: exponent must be >= 1")

	// ErrUnknownKind is returned when a storage Kind is not one of KindDense/KindSparse.
	ErrUnknownKind = errors.New("matrix: unknown storage kind")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfRange) remains true.
var ErrIndexOutOfRange = ErrOutOfRange
