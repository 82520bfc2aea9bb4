// SPDX-License-Identifier: MIT

// Package tensor wraps matrix.Matrix into the two objects of a state-vector
// simulation: Operator (a square 2^k×2^k linear map) and Vector (a 2^k
// column of amplitudes), plus a factory for computational basis states.
//
// Conventions:
//
//   - Basis order is big-endian: in v.Tensor(w), v holds the most significant qubits.
//   - a.Mul(b) is the composition "apply b, then a", and v.Apply(op) is op·v,
//     so v.Apply(a.Mul(b)) equals v.Apply(b).Apply(a).
//   - Power(n) is the tensor power (op^⊗n), not a matrix power.
//   - Every method returns a new value; receivers are never mutated.
//
// The storage backend is picked with matrix options at construction
// (matrix.WithSparse() keeps identity-like operators at O(2^k) memory).
package tensor
