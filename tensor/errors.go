// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
//
// The shape and index conditions are the matrix sentinels re-exported, so a
// caller can match errors.Is(err, tensor.ErrDimensionMismatch) whether the
// failure surfaced in this package or in a matrix kernel underneath it.

package tensor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsim/matrix"
)

var (
	// ErrInvalidArgument indicates a value outside the accepted domain
	// (a qubit bit other than 0/1, a basis value out of range, size < 1).
	ErrInvalidArgument = errors.New("tensor: invalid argument")

	// ErrNotPowerOfTwo indicates an Operator or Vector whose dimension is not 2^k.
	ErrNotPowerOfTwo = matrix.ErrNotPowerOfTwo

	// ErrDimensionMismatch indicates operands of incompatible dimensions.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrIndexOutOfRange indicates an entry access outside the backing matrix.
	ErrIndexOutOfRange = matrix.ErrIndexOutOfRange

	// ErrInvalidDimensions indicates an empty amplitude list or matrix.
	ErrInvalidDimensions = matrix.ErrInvalidDimensions

	// ErrInvalidExponent indicates a tensor power below 1.
	ErrInvalidExponent = matrix.ErrInvalidExponent

	// ErrNilMatrix indicates a nil Operator or Vector operand.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// tensorErrorf wraps err with an operation tag, preserving it for errors.Is.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkOperand returns ErrNilMatrix, tagged with op, when operand is nil.
func checkOperand[T Operator | Vector](op string, operand *T) error {
	if operand == nil {
		return tensorErrorf(op, ErrNilMatrix)
	}

	return nil
}
