// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage backends.
// This file contains ONLY the public Matrix interface, the storage Kind and
// the small helpers derived from them. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// Matrix represents a two-dimensional array of complex128 amplitudes.
// Column vectors are rows×1; operators are n×n.
//
// Complexity notes: Rows/Cols/Kind are O(1); At/Set are O(1) for Dense and
// O(1) expected for Sparse; Clone is O(r*c) for Dense and O(nnz) for Sparse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (complex128, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the numeric policy.
	Set(i, j int, v complex128) error

	// Clone returns a deep copy of the matrix with the same Kind.
	Clone() Matrix

	// Kind reports the storage backend.
	Kind() Kind

	// NNZ returns the number of non-zero entries.
	NNZ() int

	// Do visits every non-zero entry in row-major order until f returns false.
	Do(f func(i, j int, v complex128) bool)
}

// Kind selects a storage backend. The zero value is KindDense.
type Kind uint8

const (
	// KindDense stores every entry in a flat row-major slice.
	KindDense Kind = iota
	// KindSparse stores only non-zero entries (coordinate form).
	KindSparse
)

const (
	kindDenseName  = "dense"
	kindSparseName = "sparse"
)

// String returns the lowercase backend name.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return kindDenseName
	case KindSparse:
		return kindSparseName
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is a known backend.
func (k Kind) Valid() bool { return k == KindDense || k == KindSparse }

// ParseKind maps "dense"/"sparse" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case kindDenseName:
		return KindDense, nil
	case kindSparseName:
		return KindSparse, nil
	default:
		return KindDense, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// IsColumn reports whether m has the vector layout (n×1).
func IsColumn(m Matrix) bool { return m != nil && m.Cols() == 1 }

// IsPowerOfTwo reports whether n == 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Log2 returns k for n == 2^k. The result is meaningless unless IsPowerOfTwo(n).
func Log2(n int) int { return bits.Len(uint(n)) - 1 }
