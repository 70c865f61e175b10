// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Kind-dispatching entry points (Transpose, Sum, Times) over Operand.
//   - Intention-revealing constructors (NewZeros, NewIdentity, ZerosLike).
//   - No logic duplication: each facade delegates to a typed kernel.
//
// Dispatch policy:
//   - Transpose: Matrix → TransposeMatrix; Vector → VecTranspose; else ErrType.
//   - Sum:       Matrix+Matrix → Add; Vector+Vector → VecAdd; else ErrType.
//   - Times, first match wins:
//     1. (Scalar, Matrix) → Scale
//     2. (Matrix, Matrix) → Hadamard
//     3. (Vector, Vector) → VecMul
//     4. anything else    → ErrType
//
// AI-Hints:
//   - Times on two matrices is the ELEMENTWISE product. Use Dot for A×B.
//   - (Matrix, Scalar) is not commutated into (Scalar, Matrix); it is an ErrType.

package matrix

const (
	opSum   = "Sum"
	opTimes = "Times"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
//
// AI-Hints: Dot(NewIdentity(n), a) reproduces a exactly.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Kind-dispatching facades ----------

// Transpose returns the transpose of a Matrix (new cols×rows matrix) or a copy
// of a Vector (vectors have no orientation).
//
// Errors:
//   - ErrType for a Scalar or the zero Operand.
//   - ErrNilMatrix from the kernel when the wrapped container is nil.
func Transpose(a Operand) (Operand, error) {
	switch a.kind {
	case KindMatrix:
		m, err := TransposeMatrix(a.mat)
		if err != nil {
			return Operand{}, err
		}
		return OfMatrix(m), nil
	case KindVector:
		v, err := VecTranspose(a.vec)
		if err != nil {
			return Operand{}, err
		}
		return OfVector(v), nil
	default:
		return Operand{}, kindErrorf(opTranspose, a.kind)
	}
}

// Sum adds two containers of the same kind.
//
// Errors:
//   - ErrType when kinds differ or are not Matrix/Vector.
//   - ErrDimensionMismatch when shapes/dims differ.
//
// Complexity: O(r*c) for matrices, O(n) for vectors.
func Sum(a, b Operand) (Operand, error) {
	switch {
	case a.kind == KindMatrix && b.kind == KindMatrix:
		m, err := Add(a.mat, b.mat)
		if err != nil {
			return Operand{}, matrixErrorf(opSum, err)
		}
		return OfMatrix(m), nil
	case a.kind == KindVector && b.kind == KindVector:
		v, err := VecAdd(a.vec, b.vec)
		if err != nil {
			return Operand{}, matrixErrorf(opSum, err)
		}
		return OfVector(v), nil
	default:
		return Operand{}, kindErrorf(opSum, a.kind, b.kind)
	}
}

// Times multiplies two operands according to the priority rules in the file
// header. The rule order is significant and mirrors the case order below.
//
// Errors:
//   - ErrType for any pair outside the three supported combinations.
//   - ErrDimensionMismatch for Hadamard/VecMul shape mismatch.
func Times(a, b Operand) (Operand, error) {
	switch {
	case a.kind == KindScalar && b.kind == KindMatrix:
		m, err := Scale(a.scalar, b.mat)
		if err != nil {
			return Operand{}, matrixErrorf(opTimes, err)
		}
		return OfMatrix(m), nil
	case a.kind == KindMatrix && b.kind == KindMatrix:
		m, err := Hadamard(a.mat, b.mat)
		if err != nil {
			return Operand{}, matrixErrorf(opTimes, err)
		}
		return OfMatrix(m), nil
	case a.kind == KindVector && b.kind == KindVector:
		v, err := VecMul(a.vec, b.vec)
		if err != nil {
			return Operand{}, matrixErrorf(opTimes, err)
		}
		return OfVector(v), nil
	default:
		return Operand{}, kindErrorf(opTimes, a.kind, b.kind)
	}
}
