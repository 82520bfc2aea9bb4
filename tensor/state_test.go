// SPDX-License-Identifier: MIT
package tensor_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/tensor"
	"github.com/stretchr/testify/require"
)

func TestMakeStateVector_Zero(t *testing.T) {
	for _, k := range kinds {
		v, err := tensor.MakeStateVector(0, 3, matrix.WithKind(k))
		require.NoError(t, err)
		require.Equal(t, 8, v.Dimension())
		require.Equal(t, []complex128{1, 0, 0, 0, 0, 0, 0, 0}, v.Amplitudes())
	}
}

func TestMakeStateVector_BasisStates(t *testing.T) {
	for _, k := range kinds {
		for size := 1; size <= 4; size++ {
			for value := 0; value < 1<<size; value++ {
				t.Run(fmt.Sprintf("%s/%s", k, tensor.BasisString(value, size)), func(t *testing.T) {
					v, err := tensor.MakeStateVector(value, size, matrix.WithKind(k))
					require.NoError(t, err)
					want := make([]complex128, 1<<size)
					want[value] = 1
					require.Equal(t, want, v.Amplitudes())
				})
			}
		}
	}
}

func TestMakeStateVector_Errors(t *testing.T) {
	tests := []struct {
		name        string
		value, size int
	}{
		{"size zero", 0, 0},
		{"size too large", 0, tensor.MaxQubits + 1},
		{"negative value", -1, 3},
		{"value overflows register", 8, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tensor.MakeStateVector(tc.value, tc.size)
			require.ErrorIs(t, err, tensor.ErrInvalidArgument)
		})
	}
}

// TestInferStateVector checks that the size is derived from the bit length.
func TestInferStateVector(t *testing.T) {
	tests := []struct {
		value, wantDim int
	}{
		{0, 2},
		{1, 2},
		{2, 4},
		{5, 8},
		{8, 16},
	}
	for _, tc := range tests {
		v, err := tensor.InferStateVector(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.wantDim, v.Dimension())
		a, err := v.At(tc.value)
		require.NoError(t, err)
		require.Equal(t, complex128(1), a)
	}

	_, err := tensor.InferStateVector(-3)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestBasisString(t *testing.T) {
	require.Equal(t, "101", tensor.BasisString(5, 3))
	require.Equal(t, "0001", tensor.BasisString(1, 4))
	require.Equal(t, "0", tensor.BasisString(0, 1))
}

func ExampleMakeStateVector() {
	v, _ := tensor.MakeStateVector(5, 3)
	fmt.Println(tensor.BasisString(5, 3), v.Amplitudes())
	// Output:
	// 101 [(0+0i) (0+0i) (0+0i) (0+0i) (0+0i) (1+0i) (0+0i) (0+0i)]
}
