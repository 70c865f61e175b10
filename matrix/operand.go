// SPDX-License-Identifier: MIT

// Package matrix - Operand: tagged variant over {Scalar, Matrix, Vector}.
//
// The kind-polymorphic facades (Transpose, Sum, Times) accept Operands and
// dispatch on Kind. Callers that know their kinds statically can skip the
// variant and call the typed kernels (TransposeMatrix, Add, Scale, ...).

package matrix

import "fmt"

// Operand holds exactly one of a scalar, a Matrix or a *Vector.
// The zero value has KindInvalid and is rejected by every facade with ErrType.
type Operand struct {
	kind   Kind
	scalar float64
	mat    Matrix
	vec    *Vector
}

// OfScalar wraps a real number.
func OfScalar(v float64) Operand { return Operand{kind: KindScalar, scalar: v} }

// OfMatrix wraps a Matrix. A nil m still tags KindMatrix; kernels report ErrNilMatrix.
func OfMatrix(m Matrix) Operand { return Operand{kind: KindMatrix, mat: m} }

// OfVector wraps a *Vector. A nil v still tags KindVector; kernels report ErrNilMatrix.
func OfVector(v *Vector) Operand { return Operand{kind: KindVector, vec: v} }

// Kind reports which variant o holds.
func (o Operand) Kind() Kind { return o.kind }

// Scalar returns the scalar and true when o holds one.
func (o Operand) Scalar() (float64, bool) { return o.scalar, o.kind == KindScalar }

// Matrix returns the matrix and true when o holds one.
func (o Operand) Matrix() (Matrix, bool) { return o.mat, o.kind == KindMatrix }

// Vector returns the vector and true when o holds one.
func (o Operand) Vector() (*Vector, bool) { return o.vec, o.kind == KindVector }

// String renders the held value; the zero Operand renders as "<invalid>".
func (o Operand) String() string {
	switch o.kind {
	case KindScalar:
		return fmt.Sprintf(_fmtValue, o.scalar)
	case KindMatrix:
		if ValidateNotNil(o.mat) != nil {
			return "<nil>"
		}
		if s, ok := o.mat.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%d×%d matrix", o.mat.Rows(), o.mat.Cols())
	case KindVector:
		if o.vec == nil {
			return "<nil>"
		}
		return o.vec.String()
	default:
		return "<invalid>"
	}
}

// kindErrorf reports an unsupported kind combination for op.
func kindErrorf(op string, kinds ...Kind) error {
	return matrixErrorf(op, fmt.Errorf("%v: %w", kinds, ErrType))
}
