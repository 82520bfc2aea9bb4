// SPDX-License-Identifier: MIT
package gates_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/qsim/gates"
	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/tensor"
	"github.com/stretchr/testify/require"
)

var kinds = []matrix.Kind{matrix.KindDense, matrix.KindSparse}

// diag builds a diagonal Operator in kind k.
func diag(t *testing.T, k matrix.Kind, d ...complex128) *tensor.Operator {
	t.Helper()
	n := len(d)
	vals := make([]complex128, n*n)
	for i, v := range d {
		vals[i*n+i] = v
	}
	op, err := tensor.NewOperator(n, vals, matrix.WithKind(k))
	require.NoError(t, err)

	return op
}

func requireEqualOp(t *testing.T, want, got *tensor.Operator) {
	t.Helper()
	ok, err := want.Equal(got)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

func TestNew_Errors(t *testing.T) {
	_, err := gates.New(0)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
	_, err = gates.New(tensor.MaxOperatorQubits + 1)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
	_, err = gates.New(tensor.MaxQubits)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)

	lib, err := gates.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, lib.Dimension())
	require.Equal(t, 8, lib.Size())
}

func TestH(t *testing.T) {
	s := 1 / math.Sqrt2
	for _, k := range kinds {
		lib, err := gates.New(4, matrix.WithKind(k))
		require.NoError(t, err)
		h := lib.H()
		require.Equal(t, 2, h.Dimension()) // ignores register size
		require.Equal(t, k, h.Kind())
		v, err := h.At(1, 1)
		require.NoError(t, err)
		require.InDelta(t, -s, real(v), 1e-15)
		require.True(t, h.IsUnitary())

		hn := lib.HN()
		require.Equal(t, 16, hn.Dimension())
		require.True(t, hn.IsUnitary())
	}
}

func TestOracle_TwoQubits(t *testing.T) {
	for _, k := range kinds {
		lib, err := gates.New(2, matrix.WithKind(k))
		require.NoError(t, err)
		for target := 0; target < 4; target++ {
			t.Run(fmt.Sprintf("%s/target=%d", k, target), func(t *testing.T) {
				o, err := lib.Oracle(target)
				require.NoError(t, err)
				want := []complex128{1, 1, 1, 1}
				want[target] = -1
				requireEqualOp(t, diag(t, k, want...), o)
			})
		}
		_, err = lib.Oracle(4)
		require.ErrorIs(t, err, tensor.ErrInvalidArgument)
		_, err = lib.Oracle(-1)
		require.ErrorIs(t, err, tensor.ErrInvalidArgument)
	}
}

func TestReflectionAndIdentity(t *testing.T) {
	for _, k := range kinds {
		lib, err := gates.New(3, matrix.WithKind(k))
		require.NoError(t, err)

		requireEqualOp(t, diag(t, k, 1, -1, -1, -1, -1, -1, -1, -1), lib.Reflection())
		requireEqualOp(t, diag(t, k, 1, 1, 1, 1, 1, 1, 1, 1), lib.I())
		require.Equal(t, k, lib.Reflection().Kind())
	}
}

func TestSparseGatesStayDiagonal(t *testing.T) {
	lib, err := gates.New(10, matrix.WithSparse())
	require.NoError(t, err)
	o, err := lib.Oracle(77)
	require.NoError(t, err)
	require.Equal(t, 1024, o.Matrix().NNZ())
	require.Equal(t, 1024, lib.Reflection().Matrix().NNZ())
}
