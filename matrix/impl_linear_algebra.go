// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, Kronecker
// product and tensor power, transpose/adjoint, scaling, single-entry update
// and reshaping. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical linear-algebra kernels used by the tensor layer.
//   - Every kernel is PURE: operands are never mutated; a fresh Matrix is returned.
//   - The result takes the Kind of the left operand.
//
// Notes:
//   - Dense×Dense paths run on the flat buffers (gonum cblas128/cmplxs).
//   - Sparse paths touch stored entries only (Do), so identity-like gates stay O(nnz).
//   - Mixed kinds go through Do + writerFor, which is correct for any pair.

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew        = "New"
	opFromValues = "FromValues"
	opConvert    = "Convert"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opKronecker  = "Kronecker"
	opPower      = "Power"
	opTranspose  = "Transpose"
	opAdjoint    = "Adjoint"
	opScale      = "Scale"
	opUpdate     = "Update"
	opToColumn   = "ToColumn"
	opInner      = "Inner"
	opUnitary    = "IsUnitary"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// entry is one stored (i, j, v) triple collected from Do.
type entry struct {
	i, j int
	v    complex128
}

// entriesOf collects the non-zero entries of m in row-major order.
func entriesOf(m Matrix) []entry {
	out := make([]entry, 0, m.NNZ())
	m.Do(func(i, j int, v complex128) bool {
		out = append(out, entry{i: i, j: j, v: v})
		return true
	})

	return out
}

// writerFor returns an unchecked overwrite function for a freshly allocated
// result. Callers guarantee in-range indices and finite values.
func writerFor(m Matrix) func(i, j int, v complex128) {
	switch t := m.(type) {
	case *Dense:
		return func(i, j int, v complex128) { t.data[i*t.c+j] = v }
	case *Sparse:
		cols := uint64(t.c)
		return func(i, j int, v complex128) { t.put(uint64(i)*cols+uint64(j), v) }
	default:
		return func(i, j int, v complex128) { _ = m.Set(i, j, v) }
	}
}

// accumulatorFor returns an unchecked "+=" function for a result matrix.
func accumulatorFor(m Matrix) func(i, j int, v complex128) {
	switch t := m.(type) {
	case *Dense:
		return func(i, j int, v complex128) { t.data[i*t.c+j] += v }
	case *Sparse:
		cols := uint64(t.c)
		return func(i, j int, v complex128) { t.accumulate(uint64(i)*cols+uint64(j), v) }
	default:
		return func(i, j int, v complex128) {
			cur, _ := m.At(i, j)
			_ = m.Set(i, j, cur+v)
		}
	}
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Dense×Dense: copy a, then cmplxs.Add/Sub over flat buffers.
//   - Stage 3: otherwise clone a in its own Kind and accumulate sign*b over b's stored entries.
//
// Complexity:
//   - Dense: O(r*c). Sparse: O(nnz(a) + nnz(b)).
func addSub(a, b Matrix, sign complex128, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → flat slice kernels.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			res := da.Clone().(*Dense)
			if sign == 1 {
				cmplxs.Add(res.data, db.data)
			} else {
				cmplxs.Sub(res.data, db.data)
			}

			return res, nil
		}
	}

	res := a.Clone()
	acc := accumulatorFor(res)
	b.Do(func(i, j int, v complex128) bool {
		acc(i, j, sign*v)
		return true
	})

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// The left operand is the left factor: for operators, Mul(A, B) applies B first.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Dense×Dense → cblas128.Gemm on the flat buffers.
//   - Stage 3: otherwise bucket B's entries by row and, for every stored A[i,k],
//     accumulate A[i,k]*B[k,j] into C (sparse-aware; zeros are never visited).
//
// Complexity:
//   - Dense: O(r*n*c). Sparse: O(Σ_k nnz(A[:,k])·nnz(B[k,:])).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newLike(a.Kind(), a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			dr := res.(*Dense)
			cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, da.general(), db.general(), 0, dr.general())

			return dr, nil
		}
	}

	// Row buckets of B: rowsB[k] holds B[k,*] stored entries in column order.
	rowsB := make([][]entry, b.Rows())
	b.Do(func(k, j int, v complex128) bool {
		rowsB[k] = append(rowsB[k], entry{i: k, j: j, v: v})
		return true
	})
	acc := accumulatorFor(res)
	a.Do(func(i, k int, av complex128) bool {
		for _, be := range rowsB[k] {
			acc(i, be.j, av*be.v)
		}
		return true
	})

	return res, nil
}

// MatVec computes y = m·x for a flat vector x (len == m.Cols()).
// Dense uses cblas128.Gemv; other kinds walk stored entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, m.Rows())
	if dm, ok := m.(*Dense); ok {
		cblas128.Gemv(blas.NoTrans, 1, dm.general(),
			cblas128.Vector{N: len(x), Inc: 1, Data: x},
			0, cblas128.Vector{N: len(y), Inc: 1, Data: y})

		return y, nil
	}
	m.Do(func(i, j int, v complex128) bool {
		y[i] += v * x[j]
		return true
	})

	return y, nil
}

// Kronecker returns a ⊗ b with result[i*b.r+k][j*b.c+l] = a[i][j]*b[k][l].
// For two columns this is the length |a|·|b| column; for squares n·m × n·m.
//
// Implementation:
//   - Stage 1: Validate operands; allocate (a.r*b.r)×(a.c*b.c) in a's Kind.
//   - Stage 2: Collect b's stored entries once, then for every stored a[i,j]
//     write the scaled block. Zero blocks are never visited.
//
// Complexity:
//   - Time O(nnz(a)·nnz(b)) plus result allocation (O(r*c) for Dense).
func Kronecker(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	br, bc := b.Rows(), b.Cols()
	res, err := newLike(a.Kind(), a.Rows()*br, a.Cols()*bc)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	// Dense fast path: direct block writes into the flat result.
	if dr, ok := res.(*Dense); ok {
		if db, okB := b.(*Dense); okB {
			stride := dr.c
			a.Do(func(i, j int, av complex128) bool {
				for k := 0; k < br; k++ {
					rowOff := (i*br+k)*stride + j*bc
					src := db.data[k*bc : (k+1)*bc]
					for l, bv := range src {
						dr.data[rowOff+l] = av * bv
					}
				}
				return true
			})

			return dr, nil
		}
	}

	bEntries := entriesOf(b)
	w := writerFor(res)
	a.Do(func(i, j int, av complex128) bool {
		for _, be := range bEntries {
			w(i*br+be.i, j*bc+be.j, av*be.v)
		}
		return true
	})

	return res, nil
}

// Power returns the tensor power m ⊗ m ⊗ … ⊗ m (n copies), i.e. size^n.
// This is NOT matrix exponentiation; it lifts a single-qubit gate to n qubits.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidExponent when n < 1.
//
// Complexity:
//   - Dominated by the last Kronecker: O(nnz(m)^n) plus allocation.
func Power(m Matrix, n int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if n < 1 {
		return nil, matrixErrorf(opPower, fmt.Errorf("n=%d: %w", n, ErrInvalidExponent))
	}
	res := m.Clone()
	var err error
	for i := 1; i < n; i++ {
		if res, err = Kronecker(res, m); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return res, nil
}

// Transpose returns mᵀ in m's Kind.
// Complexity: O(r*c) Dense, O(nnz) Sparse.
func Transpose(m Matrix) (Matrix, error) { return transposeWith(m, false, opTranspose) }

// Adjoint returns the conjugate transpose m† in m's Kind.
func Adjoint(m Matrix) (Matrix, error) { return transposeWith(m, true, opAdjoint) }

func transposeWith(m Matrix, conj bool, opTag string) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := newLike(m.Kind(), m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	w := writerFor(res)
	m.Do(func(i, j int, v complex128) bool {
		if conj {
			v = cmplx.Conj(v)
		}
		w(j, i, v)
		return true
	})

	return res, nil
}

// Scale returns α*m as a fresh matrix. Scaling by zero yields a zero matrix
// (Sparse drops every entry).
// Complexity: O(r*c) Dense, O(nnz) Sparse.
func Scale(m Matrix, alpha complex128) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	if dm, ok := m.(*Dense); ok {
		res := dm.Clone().(*Dense)
		cmplxs.Scale(alpha, res.data)

		return res, nil
	}
	res, err := newLike(m.Kind(), m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	w := writerFor(res)
	m.Do(func(i, j int, v complex128) bool {
		w(i, j, alpha*v)
		return true
	})

	return res, nil
}

// Negate returns −m. Equivalent to Scale(m, -1).
func Negate(m Matrix) (Matrix, error) { return Scale(m, -1) }

// Update returns a copy of m with entry (row, col) replaced by v.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
func Update(m Matrix, row, col int, v complex128) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opUpdate, err)
	}
	res := m.Clone()
	if err := res.Set(row, col, v); err != nil {
		return nil, matrixErrorf(opUpdate, err)
	}

	return res, nil
}

// ToColumn reshapes m (row-major) into a (rows*cols)×1 column in m's Kind.
func ToColumn(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToColumn, err)
	}
	if m.Cols() == 1 {
		return m.Clone(), nil
	}
	res, err := newLike(m.Kind(), m.Rows()*m.Cols(), 1)
	if err != nil {
		return nil, matrixErrorf(opToColumn, err)
	}
	w := writerFor(res)
	cols := m.Cols()
	m.Do(func(i, j int, v complex128) bool {
		w(i*cols+j, 0, v)
		return true
	})

	return res, nil
}

// Flat returns a row-major copy of every entry (zeros included).
// Complexity: O(r*c).
func Flat(m Matrix) []complex128 {
	if dm, ok := m.(*Dense); ok {
		out := make([]complex128, len(dm.data))
		copy(out, dm.data)

		return out
	}
	cols := m.Cols()
	out := make([]complex128, m.Rows()*cols)
	m.Do(func(i, j int, v complex128) bool {
		out[i*cols+j] = v
		return true
	})

	return out
}

// Inner returns ⟨a|b⟩ = Σ conj(a_k)·b_k over the row-major flattening of both
// operands. Element counts must match.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) Dense, O(nnz(a)) otherwise.
func Inner(a, b Matrix) (complex128, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opInner, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf(opInner, err)
	}
	if a.Rows()*a.Cols() != b.Rows()*b.Cols() {
		return 0, matrixErrorf(opInner, ErrDimensionMismatch)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return cmplxs.Dot(da.data, db.data), nil
		}
	}
	aCols, bCols := a.Cols(), b.Cols()
	var sum complex128
	a.Do(func(i, j int, v complex128) bool {
		off := i*aCols + j
		bv, _ := b.At(off/bCols, off%bCols) // in range by the element-count check
		sum += cmplx.Conj(v) * bv
		return true
	})

	return sum, nil
}

// IsUnitary reports whether m†·m ≈ I within tol (absolute and relative).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: one Adjoint, one Mul, one AllClose.
func IsUnitary(m Matrix, tol float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	adj, err := Adjoint(m)
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	id, err := IdentityLike(m)
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}

	return AllClose(prod, id, tol, tol)
}
