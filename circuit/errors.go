// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStage indicates a step requested out of the forward order
	// Constructed → Hadamard → Iterated → Measured.
	ErrInvalidStage = errors.New("circuit: invalid stage")

	// ErrQubitIndex indicates a qubit index outside the register.
	ErrQubitIndex = errors.New("circuit: qubit index out of range")
)

// circuitErrorf wraps err with an operation tag, preserving it for errors.Is.
func circuitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
