// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/require"
)

// zeros allocates an r×c Dense zero matrix.
func zeros(t *testing.T, r, c int) matrix.Matrix {
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", zeros(t, 1, 1), nil},
		{"3x3", zeros(t, 3, 3), nil},
		{"2x3", zeros(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateShapeHelpers covers the column, power-of-two and vector-length guards.
func TestValidateShapeHelpers(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateColumn(zeros(t, 4, 1)))
	require.ErrorIs(t, matrix.ValidateColumn(zeros(t, 4, 2)), matrix.ErrNotColumn)
	require.ErrorIs(t, matrix.ValidateColumn(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidatePowerOfTwo(16))
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(12), matrix.ErrNotPowerOfTwo)
	require.ErrorIs(t, matrix.ValidatePowerOfTwo(0), matrix.ErrNotPowerOfTwo)

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 1)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen(make([]complex128, 3), 3))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}
