// Package qsim is a small state-vector quantum simulator built on an explicit
// tensor-algebra engine, with Grover's search as the end-to-end workload.
//
// What is in the box?
//
//	• Matrix engine: complex128 matrices behind one interface, with a dense
//	  (gonum BLAS) and a sparse (roaring bitmap) backend
//	• Tensors: Operator and Vector values with Kronecker products, composition,
//	  tensor powers and basis-state construction
//	• Gates: Hadamard, phase oracle, reflection and identity sized for a register
//	• Circuit: the Grover driver with stage checks, tracing and slog logging
//
// Everything is organized under four subpackages:
//
//	matrix/  — Matrix interface, Dense & Sparse storage, pure kernels, options
//	tensor/  — Operator, Vector, MakeStateVector / InferStateVector
//	gates/   — gate library for a k-qubit register
//	circuit/ — Register, Circuit, Logger
//
// Quick example:
//
//	c, _ := circuit.New(3)
//	res, _ := c.Run(5)
//	fmt.Println(res.Iterations, res.Probability) // 2 0.9453125
//
// The command in cmd/grover runs the same search from the shell:
//
//	go run ./cmd/grover -backend sparse -trace 3 5
package qsim
