// SPDX-License-Identifier: MIT
// Package matrix - tolerance-based comparisons.
//
// Policy (shared by matrices and vectors):
//
//	|a - b| ≤ atol + rtol*|b|   element-wise, b is the reference.
//
// NaN never compares close to anything, including NaN.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
)

// closeWithin applies the shared tolerance formula to one pair.
func closeWithin(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose reports whether every a[i,j] is within atol + rtol*|b[i,j]|.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (negative or non-finite tolerances).
// Complexity: O(r*c); stops at the first violating element.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeWithin(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErrorf(opAllClose, i, j, err)
			}
			if !closeWithin(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b match within the configured absolute
// tolerance (WithEpsilon; DefaultEpsilon otherwise).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}

// VecAllClose reports whether |a[i]-b[i]| ≤ tol for every i (absolute only,
// the rtol = 0 case of AllClose).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol).
func VecAllClose(a, b *Vector, tol float64) (bool, error) {
	if err := validateVecPair(a, b); err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	if isNonFinite(tol) || tol < 0 {
		return false, matrixErrorf(opVecAllClose, ErrNaNInf)
	}

	return floats.EqualFunc(a.data, b.data, func(x, y float64) bool {
		return closeWithin(x, y, 0, tol)
	}), nil
}

// VecEqual is VecAllClose with the configured epsilon.
func VecEqual(a, b *Vector, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return VecAllClose(a, b, o.eps)
}
