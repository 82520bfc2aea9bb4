// SPDX-License-Identifier: MIT
// Package matrix — constructors and public API facades.
//
// Purpose:
//   - Provide the kind-agnostic entry points (New, FromValues, FromColumn,
//     NewIdentity) that pick Dense or Sparse from the resolved Options.
//   - Keep thin, intention-revealing aliases over the canonical kernels.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of underlying kernels.
//   - Results take the Kind of the left (or only) operand.

package matrix

import "fmt"

// ---------- Constructors ----------

// newWithPolicy allocates a zero matrix of the given kind and numeric policy.
func newWithPolicy(kind Kind, rows, cols int, validateNaNInf bool) (Matrix, error) {
	switch kind {
	case KindDense:
		return newDenseWithPolicy(rows, cols, validateNaNInf)
	case KindSparse:
		return newSparseWithPolicy(rows, cols, validateNaNInf)
	default:
		return nil, ErrUnknownKind
	}
}

// newLike allocates a zero result matrix for kernels (default numeric policy).
func newLike(kind Kind, rows, cols int) (Matrix, error) {
	return newWithPolicy(kind, rows, cols, DefaultValidateNaNInf)
}

// New returns a rows×cols zero matrix of the configured Kind.
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c) for Dense, O(1) for Sparse.
func New(rows, cols int, opts ...Option) (Matrix, error) {
	o := NewOptions(opts...)
	m, err := newWithPolicy(o.kind, rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// FromValues builds a rows×cols matrix from row-major values.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDimensionMismatch when len(values) != rows*cols.
//   - ErrNaNInf when a value is non-finite and the numeric policy is on.
//
// Complexity: O(r*c).
func FromValues(rows, cols int, values []complex128, opts ...Option) (Matrix, error) {
	o := NewOptions(opts...)
	m, err := newWithPolicy(o.kind, rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromValues, err)
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf(opFromValues, fmt.Errorf("len(values)=%d, want %d: %w", len(values), rows*cols, ErrDimensionMismatch))
	}
	for off, v := range values {
		if v == 0 {
			continue // zero-filled already; keeps Sparse free of explicit zeros
		}
		if err = m.Set(off/cols, off%cols, v); err != nil {
			return nil, matrixErrorf(opFromValues, err)
		}
	}

	return m, nil
}

// FromColumn builds a len(values)×1 column (the vector layout).
func FromColumn(values []complex128, opts ...Option) (Matrix, error) {
	return FromValues(len(values), 1, values, opts...)
}

// NewIdentity returns I_n (ones on the diagonal) of the configured Kind.
// Complexity: O(n^2) zeroing for Dense, O(n) for Sparse.
func NewIdentity(n int, opts ...Option) (Matrix, error) {
	I, err := New(n, n, opts...)
	if err != nil {
		return nil, err
	}
	w := writerFor(I)
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		w(i, i, 1)
	}

	return I, nil
}

// IdentityLike returns I with dimension Rows(m) and the Kind of m; requires square m.
func IdentityLike(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), WithKind(m.Kind()))
}

// Convert re-materialises m in the given backend. Converting to the same Kind clones.
// Complexity: O(r*c) into Dense, O(nnz) into Sparse (plus the scan of m).
func Convert(m Matrix, kind Kind) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	if kind == m.Kind() {
		return m.Clone(), nil
	}
	res, err := newLike(kind, m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	w := writerFor(res)
	m.Do(func(i, j int, v complex128) bool {
		w(i, j, v)
		return true
	})

	return res, nil
}

// Dimension returns the number of rows (size for square, length for a column).
func Dimension(m Matrix) int { return m.Rows() }
