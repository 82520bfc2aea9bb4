// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by kernel tests and benchmarks.
//   • Run every kernel against both backends and against a type-hidden wrapper.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/require"
)

// s2 is 1/√2, the Hadamard normalisation.
var s2 = complex(1/math.Sqrt2, 0)

// kinds lists both storage backends for table-driven tests.
var kinds = []matrix.Kind{matrix.KindDense, matrix.KindSparse}

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense, non-*Sparse) paths.
type hide struct{ matrix.Matrix }

// mustFrom builds an r×c matrix of the given kind from row-major values.
func mustFrom(tb testing.TB, kind matrix.Kind, r, c int, vals ...complex128) matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromValues(r, c, vals, matrix.WithKind(kind))
	require.NoError(tb, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) complex128 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// hadamard returns the single-qubit H gate in the given kind.
func hadamard(tb testing.TB, kind matrix.Kind) matrix.Matrix {
	return mustFrom(tb, kind, 2, 2, s2, s2, s2, -s2)
}

// requireClose asserts AllClose(got, want) at a tight tolerance.
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 1e-12, 1e-12)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want:\n%v\ngot:\n%v", want, got)
}

// mustDense allocates an r×c *Dense or fails.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// fillRand fills m with deterministic pseudo-random amplitudes, leaving
// roughly (1-density) of the entries zero.
func fillRand(tb testing.TB, m matrix.Matrix, seed int64, density float64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if rng.Float64() >= density {
				continue
			}
			require.NoError(tb, m.Set(i, j, complex(rng.Float64()*2-1, rng.Float64()*2-1)))
		}
	}
}
