// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate form) & safe accessors.
//
// Purpose:
//   - Keep memory at O(nnz) for identity-like gates (oracle, reflection) whose
//     dense form would be 2^k × 2^k.
//   - Same public contract as Dense: At/Set return errors instead of panicking.
//
// Layout:
//   - pattern is a roaring64 bitmap of flat offsets (i*cols + j) that hold a value.
//     Bitmap iteration is ascending, so Do visits entries in row-major order
//     without sorting.
//   - values maps each offset in pattern to its (non-zero) amplitude.
//   - Writing zero removes the entry; the pattern never lists explicit zeros.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) expected + bitmap update; Clone: O(nnz); Do: O(nnz).

package matrix

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a coordinate-form matrix of complex128 values.
type Sparse struct {
	r, c           int
	pattern        *roaring64.Bitmap     // occupied flat offsets, ascending
	values         map[uint64]complex128 // offset -> value; keys == pattern
	validateNaNInf bool
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an r×c zero matrix that stores no entries.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Sparse{
		r:              rows,
		c:              cols,
		pattern:        roaring64.NewBitmap(),
		values:         make(map[uint64]complex128),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

func newSparseWithPolicy(rows, cols int, validateNaNInf bool) (*Sparse, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Kind reports KindSparse.
func (m *Sparse) Kind() Kind { return KindSparse }

// NNZ returns the number of stored entries.
func (m *Sparse) NNZ() int { return int(m.pattern.GetCardinality()) }

func (m *Sparse) offset(row, col int) (uint64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return uint64(row)*uint64(m.c) + uint64(col), nil
}

// At returns the value at (row, col); absent entries read as zero.
func (m *Sparse) At(row, col int) (complex128, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, sparseErrorf(ctxAt, row, col, err)
	}

	return m.values[off], nil
}

// Set stores v at (row, col). Storing zero deletes the entry.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite components when the policy is on.
func (m *Sparse) Set(row, col int, v complex128) error {
	off, err := m.offset(row, col)
	if err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.put(off, v)

	return nil
}

// put writes without bounds checks; callers guarantee off < r*c.
func (m *Sparse) put(off uint64, v complex128) {
	if v == 0 {
		if _, ok := m.values[off]; ok {
			delete(m.values, off)
			m.pattern.Remove(off)
		}

		return
	}
	if _, ok := m.values[off]; !ok {
		m.pattern.Add(off)
	}
	m.values[off] = v
}

// accumulate adds v into the entry at off, dropping it when the sum cancels to zero.
func (m *Sparse) accumulate(off uint64, v complex128) {
	m.put(off, m.values[off]+v)
}

// Clone returns a deep copy. Complexity: O(nnz).
func (m *Sparse) Clone() Matrix {
	values := make(map[uint64]complex128, len(m.values))
	for k, v := range m.values {
		values[k] = v
	}

	return &Sparse{
		r:              m.r,
		c:              m.c,
		pattern:        m.pattern.Clone(),
		values:         values,
		validateNaNInf: m.validateNaNInf,
	}
}

// Do visits stored entries in ascending offset (row-major) order until f returns false.
func (m *Sparse) Do(f func(i, j int, v complex128) bool) {
	it := m.pattern.Iterator()
	cols := uint64(m.c)
	for it.HasNext() {
		off := it.Next()
		if !f(int(off/cols), int(off%cols), m.values[off]) {
			return
		}
	}
}

// String renders the matrix densely, in the same format as Dense.
// Intended for small matrices in logs and tests.
func (m *Sparse) String() string {
	var b strings.Builder
	var off uint64
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(formatScalar(m.values[off]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
			off++
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
