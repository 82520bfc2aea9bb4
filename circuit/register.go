// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsim/tensor"
)

// Register is a fixed-size group of qubits.
type Register struct {
	size int
}

// Qubit addresses one position of a Register.
type Qubit struct {
	Register *Register
	Index    int
}

// NewRegister returns a register of size qubits.
// Errors: tensor.ErrInvalidArgument unless 1 <= size <= tensor.MaxOperatorQubits.
func NewRegister(size int) (*Register, error) {
	if size < 1 || size > tensor.MaxOperatorQubits {
		return nil, circuitErrorf("NewRegister", fmt.Errorf("size=%d: %w", size, tensor.ErrInvalidArgument))
	}

	return &Register{size: size}, nil
}

// Size returns the number of qubits.
func (r *Register) Size() int { return r.size }

// States returns the number of basis states, 2^Size().
func (r *Register) States() int { return 1 << r.size }

// Qubit returns the qubit at index. A negative index counts from the end
// (-1 is the last qubit). Errors: ErrQubitIndex.
func (r *Register) Qubit(index int) (Qubit, error) {
	i := index
	if i < 0 {
		i += r.size
	}
	if i < 0 || i >= r.size {
		return Qubit{}, circuitErrorf("Register.Qubit", fmt.Errorf("index=%d of %d: %w", index, r.size, ErrQubitIndex))
	}

	return Qubit{Register: r, Index: i}, nil
}

// Qubits returns every qubit in index order.
func (r *Register) Qubits() []Qubit {
	out := make([]Qubit, r.size)
	for i := range out {
		out[i] = Qubit{Register: r, Index: i}
	}

	return out
}

// String implements fmt.Stringer.
func (r *Register) String() string { return fmt.Sprintf("Register(%d)", r.size) }
