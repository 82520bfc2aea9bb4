// SPDX-License-Identifier: MIT

// Package matrix is the tensor-algebra engine: two-dimensional arrays of
// complex128 amplitudes behind one Matrix interface, with two storage backends.
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer. Dense×Dense multiplication runs through
//     gonum's cblas128 and element-wise sums through gonum's cmplxs.
//   - Sparse: coordinate form over a roaring64 bitmap of occupied offsets, so
//     identity-like operators (oracle, reflection) stay O(2^n) instead of O(4^n).
//   - Pure kernels (Add, Sub, Mul, Kronecker, Power, Scale, Transpose, Adjoint,
//     Update, ToColumn, Inner, IsUnitary) that never mutate their operands and
//     return a result in the Kind of the left operand.
//   - Tolerant comparison (AllClose, Equal, EqualWithin).
//
// The backend is chosen per constructor call through functional options
// (WithKind, WithDense, WithSparse); there is no process-wide switch.
//
//	h, _ := matrix.FromValues(2, 2, []complex128{s, s, s, -s}, matrix.WithSparse())
//	h3, _ := matrix.Power(h, 3) // H⊗H⊗H, 8×8
//
// Errors are package sentinels wrapped with an operation tag; match them with
// errors.Is.
package matrix
