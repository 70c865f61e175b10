// SPDX-License-Identifier: MIT
// Package matrix - conversions to and from gonum containers.
//
// Purpose:
//   - Hand results to gonum pipelines (decompositions, BLAS) and pull gonum
//     data back under this package's shape and numeric policy.
//   - All conversions copy; no storage is ever shared across the boundary.

package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opVecFromGonum = "VecFromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; At failures of non-Dense implementations.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := toDense(m, opToGonum)
	if err != nil {
		return nil, err
	}

	// toDense already produced a private copy; gonum may take ownership.
	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies any gonum matrix into a new *Dense under the default
// numeric policy (override with opts).
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty), ErrNaNInf.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	out, err := NewDenseWithOptions(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// VecToGonum copies v into a new *mat.VecDense.
func VecToGonum(v *Vector) (*mat.VecDense, error) {
	if v == nil {
		return nil, matrixErrorf("VecToGonum", ErrNilMatrix)
	}

	return mat.NewVecDense(v.Dim(), v.Elements()), nil
}

// VecFromGonum copies a gonum vector into a new *Vector.
func VecFromGonum(src mat.Vector, opts ...Option) (*Vector, error) {
	if src == nil {
		return nil, matrixErrorf(opVecFromGonum, ErrNilMatrix)
	}
	n := src.Len()
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		buf[i] = src.AtVec(i)
	}
	v, err := NewVectorWithOptions(n, buf, opts...)
	if err != nil {
		return nil, matrixErrorf(opVecFromGonum, err)
	}

	return v, nil
}
