// SPDX-License-Identifier: MIT

// Package circuit drives Grover's search over a register of k qubits.
//
// A Circuit moves forward through four stages:
//
//	Constructed --H--> Hadamard --Grover--> Iterated --Measure--> Measured
//
// H and Grover must be called in that order; Measure may be called at any
// time and repeated. Run performs the whole sequence:
//
//	c, _ := circuit.New(3, circuit.WithKind(matrix.KindSparse))
//	res, _ := c.Run(5) // res.Iterations == 2, res.Probability ≈ 0.945
//
// The Grover operator H^k·R·H^k·O (oracle applied first) is built once per
// target and reused across iterations. Logging goes through Logger, a thin
// log/slog wrapper; the default discards everything.
package circuit
