// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerant comparison of matrices of any Kind (AllClose, Equal, EqualWithin).
//   - Keep all loops deterministic with Dense fast-paths over the flat buffer.
//
// Determinism & Performance:
//   - Dense×Dense: one flat pass.
//   - Otherwise: pass over a's stored entries, then over b's stored entries.
//     Positions where both operands are zero trivially compare equal and are skipped.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

const opAllClose = "AllClose"

// closeFn reports whether two scalars are considered equal.
type closeFn func(x, y complex128) bool

// ewCompare applies eq to every position where a or b holds a non-zero entry.
// Shapes must already be validated.
func ewCompare(a, b Matrix, eq closeFn) bool {
	ok := true
	a.Do(func(i, j int, av complex128) bool {
		bv, _ := b.At(i, j)
		ok = eq(av, bv)
		return ok
	})
	if !ok {
		return false
	}
	b.Do(func(i, j int, bv complex128) bool {
		av, _ := a.At(i, j)
		ok = eq(av, bv)
		return ok
	})

	return ok
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Time: O(r*c) Dense, O(nnz(a)+nnz(b)) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite (ErrNaNInf otherwise).
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || math.IsNaN(atol) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	eq := func(x, y complex128) bool {
		return cmplx.Abs(x-y) <= atol+rtol*cmplx.Abs(y)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !eq(da.data[k], db.data[k]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	return ewCompare(a, b, eq), nil
}

// EqualWithin reports whether a and b have the same shape and every pair of
// entries is equal within eps (absolute or relative, via gonum cscalar).
// A shape mismatch or nil operand reports false.
func EqualWithin(a, b Matrix, eps float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return cmplxs.EqualApprox(da.data, db.data, eps)
		}
	}

	return ewCompare(a, b, func(x, y complex128) bool {
		return cscalar.EqualWithinAbsOrRel(x, y, eps, eps)
	})
}

// Equal is EqualWithin at DefaultEpsilon. Backends may differ.
func Equal(a, b Matrix) bool { return EqualWithin(a, b, DefaultEpsilon) }
