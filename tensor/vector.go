// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qsim/matrix"
)

const (
	opNewQubit         = "NewQubit"
	opNewVector        = "NewVector"
	opVectorFromMatrix = "VectorFromMatrix"
	opVectorTensor     = "Vector.Tensor"
	opVectorPower      = "Vector.Power"
	opVectorAdd        = "Vector.Add"
	opVectorSub        = "Vector.Sub"
	opVectorScale      = "Vector.Scale"
	opVectorEqual      = "Vector.Equal"
	opVectorApply      = "Vector.Apply"
	opVectorMeasure    = "Vector.Measure"
	opVectorAt         = "Vector.At"
)

// Vector is a quantum state: a column of 2^k amplitudes in big-endian basis
// order (basis index b ↔ the k-bit binary of b, most significant qubit first).
type Vector struct {
	m   matrix.Matrix // rows×1
	eps float64
}

// NewQubit returns |0⟩ = [1,0] for bit 0 and |1⟩ = [0,1] for bit 1.
// Any other bit is ErrInvalidArgument.
func NewQubit(bit int, opts ...matrix.Option) (*Vector, error) {
	var amps []complex128
	switch bit {
	case 0:
		amps = []complex128{1, 0}
	case 1:
		amps = []complex128{0, 1}
	default:
		return nil, tensorErrorf(opNewQubit, fmt.Errorf("bit=%d: %w", bit, ErrInvalidArgument))
	}

	return NewVector(amps, opts...)
}

// NewVector builds a column Vector from amplitudes.
// Errors: ErrInvalidDimensions when empty, ErrNotPowerOfTwo, ErrNaNInf.
func NewVector(amplitudes []complex128, opts ...matrix.Option) (*Vector, error) {
	if len(amplitudes) == 0 {
		return nil, tensorErrorf(opNewVector, ErrInvalidDimensions)
	}
	if err := matrix.ValidatePowerOfTwo(len(amplitudes)); err != nil {
		return nil, tensorErrorf(opNewVector, err)
	}
	m, err := matrix.FromColumn(amplitudes, opts...)
	if err != nil {
		return nil, tensorErrorf(opNewVector, err)
	}

	return &Vector{m: m, eps: matrix.NewOptions(opts...).Epsilon()}, nil
}

// VectorFromMatrix reshapes m (row-major) into a column Vector. The Kind is
// taken from m; opts only contribute the equality tolerance.
func VectorFromMatrix(m matrix.Matrix, opts ...matrix.Option) (*Vector, error) {
	col, err := matrix.ToColumn(m) // fresh matrix, never aliases m
	if err != nil {
		return nil, tensorErrorf(opVectorFromMatrix, err)
	}
	if err = matrix.ValidatePowerOfTwo(col.Rows()); err != nil {
		return nil, tensorErrorf(opVectorFromMatrix, err)
	}

	return &Vector{m: col, eps: matrix.NewOptions(opts...).Epsilon()}, nil
}

func (v *Vector) wrap(m matrix.Matrix) *Vector { return &Vector{m: m, eps: v.eps} }

// Tensor returns v ⊗ other; v supplies the most significant qubits.
func (v *Vector) Tensor(other *Vector) (*Vector, error) {
	if err := checkOperand(opVectorTensor, other); err != nil {
		return nil, err
	}
	m, err := matrix.Kronecker(v.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opVectorTensor, err)
	}

	return v.wrap(m), nil
}

// Power returns v^⊗n, e.g. |0⟩^⊗3 = |000⟩.
func (v *Vector) Power(n int) (*Vector, error) {
	m, err := matrix.Power(v.m, n)
	if err != nil {
		return nil, tensorErrorf(opVectorPower, err)
	}

	return v.wrap(m), nil
}

// Add returns v + other.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := checkOperand(opVectorAdd, other); err != nil {
		return nil, err
	}
	m, err := matrix.Add(v.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opVectorAdd, err)
	}

	return v.wrap(m), nil
}

// Sub returns v - other.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := checkOperand(opVectorSub, other); err != nil {
		return nil, err
	}
	m, err := matrix.Sub(v.m, other.m)
	if err != nil {
		return nil, tensorErrorf(opVectorSub, err)
	}

	return v.wrap(m), nil
}

// Scale returns f·v.
func (v *Vector) Scale(f complex128) (*Vector, error) {
	m, err := matrix.Scale(v.m, f)
	if err != nil {
		return nil, tensorErrorf(opVectorScale, err)
	}

	return v.wrap(m), nil
}

// Equal reports whether every amplitude agrees within v's tolerance.
// Errors: ErrDimensionMismatch.
func (v *Vector) Equal(other *Vector) (bool, error) {
	if err := checkOperand(opVectorEqual, other); err != nil {
		return false, err
	}
	if v.Dimension() != other.Dimension() {
		return false, tensorErrorf(opVectorEqual, ErrDimensionMismatch)
	}

	return matrix.EqualWithin(v.m, other.m, v.eps), nil
}

// Apply returns op·v. The result is stored in op's backend.
// Errors: ErrDimensionMismatch when op.Dimension() != v.Dimension().
func (v *Vector) Apply(op *Operator) (*Vector, error) {
	if err := checkOperand(opVectorApply, op); err != nil {
		return nil, err
	}
	m, err := matrix.Mul(op.m, v.m)
	if err != nil {
		return nil, tensorErrorf(opVectorApply, err)
	}

	return v.wrap(m), nil
}

// Measure returns the projection ⟨basis|v⟩. It is an amplitude, not a
// probability; see Probability for |⟨basis|v⟩|².
func (v *Vector) Measure(basis *Vector) (complex128, error) {
	if err := checkOperand(opVectorMeasure, basis); err != nil {
		return 0, err
	}
	if v.Dimension() != basis.Dimension() {
		return 0, tensorErrorf(opVectorMeasure, ErrDimensionMismatch)
	}
	amp, err := matrix.Inner(basis.m, v.m)
	if err != nil {
		return 0, tensorErrorf(opVectorMeasure, err)
	}

	return amp, nil
}

// Probability returns |⟨basis|v⟩|².
func (v *Vector) Probability(basis *Vector) (float64, error) {
	amp, err := v.Measure(basis)
	if err != nil {
		return 0, err
	}
	a := cmplx.Abs(amp)

	return a * a, nil
}

// Norm returns the Euclidean norm √⟨v|v⟩.
func (v *Vector) Norm() float64 {
	ip, _ := matrix.Inner(v.m, v.m) // same shape, cannot fail

	return math.Sqrt(real(ip))
}

// Amplitudes returns a copy of the amplitudes in basis order.
func (v *Vector) Amplitudes() []complex128 { return matrix.Flat(v.m) }

// At returns the amplitude of basis state i.
func (v *Vector) At(i int) (complex128, error) {
	a, err := v.m.At(i, 0)
	if err != nil {
		return 0, tensorErrorf(opVectorAt, err)
	}

	return a, nil
}

// Dimension returns the number of amplitudes (2^k).
func (v *Vector) Dimension() int { return matrix.Dimension(v.m) }

// Qubits returns k for a Vector of dimension 2^k.
func (v *Vector) Qubits() int { return matrix.Log2(v.m.Rows()) }

// Kind reports the storage backend.
func (v *Vector) Kind() matrix.Kind { return v.m.Kind() }

// Matrix returns a copy of the backing column.
func (v *Vector) Matrix() matrix.Matrix { return v.m.Clone() }

// String renders one amplitude per line.
func (v *Vector) String() string { return fmt.Sprint(v.m) }
