// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"github.com/katalvlaran/qsim/matrix"
)

const (
	opNewOperator        = "NewOperator"
	opOperatorFromMatrix = "OperatorFromMatrix"
	opOperatorTensor     = "Operator.Tensor"
	opOperatorMul        = "Operator.Mul"
	opOperatorPower      = "Operator.Power"
	opOperatorUpdate     = "Operator.Update"
	opOperatorScale      = "Operator.Scale"
	opOperatorAdd        = "Operator.Add"
	opOperatorSub        = "Operator.Sub"
	opOperatorEqual      = "Operator.Equal"
	opOperatorAt         = "Operator.At"
)

// Operator is a linear map on k qubits: one square matrix of dimension 2^k.
//
// Operators are values: every method returns a new Operator and leaves the
// receiver untouched, so one Operator may be shared read-only across goroutines.
type Operator struct {
	m   matrix.Matrix
	eps float64
}

// NewOperator builds a size×size Operator from row-major values.
//
// Errors:
//   - ErrNotPowerOfTwo when size is not 2^k.
//   - ErrDimensionMismatch when len(values) != size*size.
func NewOperator(size int, values []complex128, opts ...matrix.Option) (*Operator, error) {
	if err := matrix.ValidatePowerOfTwo(size); err != nil {
		return nil, tensorErrorf(opNewOperator, err)
	}
	m, err := matrix.FromValues(size, size, values, opts...)
	if err != nil {
		return nil, tensorErrorf(opNewOperator, err)
	}

	return &Operator{m: m, eps: matrix.NewOptions(opts...).Epsilon()}, nil
}

// OperatorFromMatrix wraps a clone of m. The backend Kind is taken from m;
// opts only contribute the equality tolerance.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPowerOfTwo.
func OperatorFromMatrix(m matrix.Matrix, opts ...matrix.Option) (*Operator, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, tensorErrorf(opOperatorFromMatrix, err)
	}
	if err := matrix.ValidatePowerOfTwo(m.Rows()); err != nil {
		return nil, tensorErrorf(opOperatorFromMatrix, err)
	}

	return &Operator{m: m.Clone(), eps: matrix.NewOptions(opts...).Epsilon()}, nil
}

// checkOperatorQubits rejects operators wider than MaxOperatorQubits before
// their 4^k cells are allocated.
func checkOperatorQubits(tag string, qubits int) error {
	if qubits > MaxOperatorQubits {
		return tensorErrorf(tag, fmt.Errorf("%d qubits exceeds %d: %w", qubits, MaxOperatorQubits, ErrInvalidArgument))
	}

	return nil
}

// wrap adopts a freshly computed matrix without copying it.
func (op *Operator) wrap(m matrix.Matrix) *Operator { return &Operator{m: m, eps: op.eps} }

// Tensor returns op ⊗ other, of dimension op.Dimension()*other.Dimension().
// Errors: ErrNilMatrix; ErrInvalidArgument when the result would exceed MaxOperatorQubits.
func (op *Operator) Tensor(other *Operator) (*Operator, error) {
	if err := checkOperand(opOperatorTensor, other); err != nil {
		return nil, err
	}
	if err := checkOperatorQubits(opOperatorTensor, op.Qubits()+other.Qubits()); err != nil {
		return nil, err
	}
	m, err := matrix.Kronecker(op.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opOperatorTensor, err)
	}

	return op.wrap(m), nil
}

// Mul returns the composition op·other: other is applied first, then op.
// This matches Vector.Apply, so v.Apply(a.Mul(b)) == v.Apply(b).Apply(a).
func (op *Operator) Mul(other *Operator) (*Operator, error) {
	if err := checkOperand(opOperatorMul, other); err != nil {
		return nil, err
	}
	m, err := matrix.Mul(op.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opOperatorMul, err)
	}

	return op.wrap(m), nil
}

// Power returns op tensored with itself n-1 more times (op^⊗n).
// It lifts a single-qubit gate to an n-qubit register; it is not a matrix power.
// Errors: ErrInvalidExponent for n < 1; ErrInvalidArgument above MaxOperatorQubits.
func (op *Operator) Power(n int) (*Operator, error) {
	if q := op.Qubits(); q > 0 && n > MaxOperatorQubits/q {
		return nil, tensorErrorf(opOperatorPower, fmt.Errorf("%d qubits to the power %d exceeds %d: %w", q, n, MaxOperatorQubits, ErrInvalidArgument))
	}
	m, err := matrix.Power(op.m, n)
	if err != nil {
		return nil, tensorErrorf(opOperatorPower, err)
	}

	return op.wrap(m), nil
}

// Update returns a copy of op with entry (row, col) set to v.
func (op *Operator) Update(row, col int, v complex128) (*Operator, error) {
	m, err := matrix.Update(op.m, row, col, v)
	if err != nil {
		return nil, tensorErrorf(opOperatorUpdate, err)
	}

	return op.wrap(m), nil
}

// Negate returns -op.
func (op *Operator) Negate() (*Operator, error) {
	return op.Scale(-1)
}

// Scale returns f·op.
func (op *Operator) Scale(f complex128) (*Operator, error) {
	m, err := matrix.Scale(op.m, f)
	if err != nil {
		return nil, tensorErrorf(opOperatorScale, err)
	}

	return op.wrap(m), nil
}

// Add returns op + other. Dimensions must match.
func (op *Operator) Add(other *Operator) (*Operator, error) {
	if err := checkOperand(opOperatorAdd, other); err != nil {
		return nil, err
	}
	m, err := matrix.Add(op.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opOperatorAdd, err)
	}

	return op.wrap(m), nil
}

// Sub returns op - other. Dimensions must match.
func (op *Operator) Sub(other *Operator) (*Operator, error) {
	if err := checkOperand(opOperatorSub, other); err != nil {
		return nil, err
	}
	m, err := matrix.Sub(op.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opOperatorSub, err)
	}

	return op.wrap(m), nil
}

// Equal reports whether every entry of op and other agrees within op's tolerance.
// Backends may differ. Errors: ErrDimensionMismatch.
func (op *Operator) Equal(other *Operator) (bool, error) {
	if err := checkOperand(opOperatorEqual, other); err != nil {
		return false, err
	}
	if op.Dimension() != other.Dimension() {
		return false, tensorErrorf(opOperatorEqual, ErrDimensionMismatch)
	}

	return matrix.EqualWithin(op.m, other.m, op.eps), nil
}

// Adjoint returns the conjugate transpose op†.
func (op *Operator) Adjoint() *Operator {
	m, _ := matrix.Adjoint(op.m) // non-nil square matrix, cannot fail

	return op.wrap(m)
}

// IsUnitary reports whether op†·op equals the identity within op's tolerance.
func (op *Operator) IsUnitary() bool {
	ok, err := matrix.IsUnitary(op.m, op.eps)

	return err == nil && ok
}

// At returns the entry at (row, col).
func (op *Operator) At(row, col int) (complex128, error) {
	v, err := op.m.At(row, col)
	if err != nil {
		return 0, tensorErrorf(opOperatorAt, err)
	}

	return v, nil
}

// Dimension returns the side length 2^k.
func (op *Operator) Dimension() int { return matrix.Dimension(op.m) }

// Qubits returns k for an Operator of dimension 2^k.
func (op *Operator) Qubits() int { return matrix.Log2(op.m.Rows()) }

// Kind reports the storage backend.
func (op *Operator) Kind() matrix.Kind { return op.m.Kind() }

// Matrix returns a copy of the backing matrix.
func (op *Operator) Matrix() matrix.Matrix { return op.m.Clone() }

// String renders the operator row by row.
func (op *Operator) String() string { return fmt.Sprint(op.m) }
