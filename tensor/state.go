// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qsim/matrix"
)

// MaxQubits bounds register sizes accepted by the state factory. A dense
// 2^30 column already needs 16 GiB.
const MaxQubits = 30

// MaxOperatorQubits bounds registers that operators are built for. An
// operator on k qubits has 4^k cells and H^⊗k stores all of them in either
// backend; at 12 qubits that is 256 MiB per dense operator.
const MaxOperatorQubits = 12

const (
	opMakeStateVector  = "MakeStateVector"
	opInferStateVector = "InferStateVector"
)

// BasisString returns the size-bit, zero-padded, MSB-first binary label of value.
func BasisString(value, size int) string {
	return fmt.Sprintf("%0*b", size, value)
}

// MakeStateVector returns the computational basis state |value⟩ on size qubits.
//
// Implementation:
//   - Stage 1: validate 1 <= size <= MaxQubits and 0 <= value < 2^size.
//   - Stage 2: one single-qubit Vector per bit of BasisString(value, size),
//     folded left to right with Tensor (first bit is most significant).
//
// Errors: ErrInvalidArgument.
// Complexity: O(2^size) for the final fold.
func MakeStateVector(value, size int, opts ...matrix.Option) (*Vector, error) {
	if size < 1 || size > MaxQubits {
		return nil, tensorErrorf(opMakeStateVector, fmt.Errorf("size=%d: %w", size, ErrInvalidArgument))
	}
	if value < 0 || value >= 1<<size {
		return nil, tensorErrorf(opMakeStateVector, fmt.Errorf("value=%d on %d qubits: %w", value, size, ErrInvalidArgument))
	}

	var state *Vector
	for _, r := range BasisString(value, size) {
		q, err := NewQubit(int(r-'0'), opts...)
		if err != nil {
			return nil, tensorErrorf(opMakeStateVector, err)
		}
		if state == nil {
			state = q
			continue
		}
		if state, err = state.Tensor(q); err != nil {
			return nil, tensorErrorf(opMakeStateVector, err)
		}
	}

	return state, nil
}

// InferStateVector is MakeStateVector with size taken from the bit length of
// value (at least one qubit).
func InferStateVector(value int, opts ...matrix.Option) (*Vector, error) {
	if value < 0 {
		return nil, tensorErrorf(opInferStateVector, fmt.Errorf("value=%d: %w", value, ErrInvalidArgument))
	}
	size := bits.Len(uint(value))
	if size == 0 {
		size = 1
	}

	return MakeStateVector(value, size, opts...)
}
