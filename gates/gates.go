// SPDX-License-Identifier: MIT

// Package gates provides the operators Grover's search needs, sized for a
// register of a fixed number of qubits: the single-qubit Hadamard (and its
// register-wide power), the phase oracle, the reflection about |0…0⟩ and the
// identity.
//
// Every gate is built in the backend selected by the matrix options passed to
// New, so a Library created with matrix.WithSparse() stores the oracle and
// reflection in O(2^k) memory.
package gates

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/tensor"
)

const (
	opNew    = "gates.New"
	opOracle = "gates.Oracle"
)

// Library builds gates for a register of Dimension() qubits.
type Library struct {
	dimension int
	opts      []matrix.Option
}

// New returns a gate library for a register of dimension qubits.
// Errors: tensor.ErrInvalidArgument unless 1 <= dimension <= tensor.MaxOperatorQubits.
func New(dimension int, opts ...matrix.Option) (*Library, error) {
	if dimension < 1 || dimension > tensor.MaxOperatorQubits {
		return nil, fmt.Errorf("%s: dimension=%d: %w", opNew, dimension, tensor.ErrInvalidArgument)
	}

	return &Library{dimension: dimension, opts: opts}, nil
}

// Dimension returns the number of qubits.
func (l *Library) Dimension() int { return l.dimension }

// Size returns the number of basis states, 2^Dimension().
func (l *Library) Size() int { return 1 << l.dimension }

// H returns the single-qubit Hadamard (1/√2)[[1,1],[1,-1]] regardless of Dimension.
func (l *Library) H() *tensor.Operator {
	s := complex(1/math.Sqrt2, 0)
	h, err := tensor.NewOperator(2, []complex128{s, s, s, -s}, l.opts...)
	if err != nil {
		panic(err) // fixed 2×2 literal
	}

	return h
}

// HN returns H^⊗Dimension(), the Hadamard on every qubit of the register.
func (l *Library) HN() *tensor.Operator {
	hn, err := l.H().Power(l.dimension)
	if err != nil {
		panic(err) // dimension >= 1 by construction
	}

	return hn
}

// I returns the identity on the register.
func (l *Library) I() *tensor.Operator {
	id, err := matrix.NewIdentity(l.Size(), l.opts...)
	if err != nil {
		panic(err) // Size() >= 2 by construction
	}
	op, err := tensor.OperatorFromMatrix(id, l.opts...)
	if err != nil {
		panic(err)
	}

	return op
}

// Oracle returns the phase oracle for target: the identity with -1 at
// (target, target). Errors: tensor.ErrInvalidArgument unless 0 <= target < Size().
func (l *Library) Oracle(target int) (*tensor.Operator, error) {
	if target < 0 || target >= l.Size() {
		return nil, fmt.Errorf("%s: target=%d of %d states: %w", opOracle, target, l.Size(), tensor.ErrInvalidArgument)
	}
	op, err := l.I().Update(target, target, -1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOracle, err)
	}

	return op, nil
}

// Reflection returns diag(1, -1, …, -1): the negated identity with (0,0) reset to +1.
func (l *Library) Reflection() *tensor.Operator {
	neg, err := l.I().Negate()
	if err != nil {
		panic(err)
	}
	r, err := neg.Update(0, 0, 1)
	if err != nil {
		panic(err)
	}

	return r
}
