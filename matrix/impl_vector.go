// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & elementwise vector kernels.
//
// Purpose:
//   - Fixed-size, mutable, bounds-checked container of float64 (no row/column
//     orientation; transposing a Vector is a copy).
//   - Elementwise kernels (VecAdd, VecMul) and the inner product delegate the
//     tight loops to gonum/floats after shape validation here.
//
// AI-Hints:
//   - floats.* panic on length mismatch; every kernel below validates dims first,
//     so the public surface never panics.

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for vector kernels.
const (
	opVecAdd       = "VecAdd"
	opVecMul       = "VecMul"
	opVecTranspose = "VecTranspose"
	opInner        = "Inner"
	ctxVector      = "NewVector"
)

// vectorErrorf wraps err with a Vector method tag and index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a fixed-size, mutable sequence of float64.
type Vector struct {
	data           []float64 // len == dim > 0
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector builds a Vector of dimension dim from elements (copied).
// Implementation:
//   - Stage 1: dim>0 else ErrInvalidDimensions.
//   - Stage 2: len(elements)==dim else ErrDimensionMismatch.
//   - Stage 3: copy with numeric policy enforcement.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(dim), Space O(dim).
func NewVector(dim int, elements []float64) (*Vector, error) {
	return NewVectorWithOptions(dim, elements)
}

// NewVectorWithOptions is NewVector with an explicit numeric policy.
func NewVectorWithOptions(dim int, elements []float64, opts ...Option) (*Vector, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(elements) != dim {
		return nil, fmt.Errorf("%s: got %d elements, want %d: %w", ctxVector, len(elements), dim, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	v := newVectorLike(dim, o.validateNaNInf)
	for i, x := range elements {
		if v.validateNaNInf && isNonFinite(x) {
			return nil, vectorErrorf(ctxVector, i, ErrNaNInf)
		}
		v.data[i] = x
	}

	return v, nil
}

// NewZeroVector returns a zero Vector of dimension dim under the numeric
// policy resolved from opts.
// Errors: ErrInvalidDimensions.
func NewZeroVector(dim int, opts ...Option) (*Vector, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return newVectorLike(dim, o.validateNaNInf), nil
}

// newVectorLike allocates a zero vector; dim must be validated by the caller.
func newVectorLike(dim int, validateNaNInf bool) *Vector {
	return &Vector{data: make([]float64, dim), validateNaNInf: validateNaNInf}
}

// Dim returns the number of elements.
func (v *Vector) Dim() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at i in place.
// Errors: ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy with the same numeric policy.
func (v *Vector) Clone() *Vector {
	cp := newVectorLike(len(v.data), v.validateNaNInf)
	copy(cp.data, v.data)

	return cp
}

// Elements returns a copy of the underlying values.
func (v *Vector) Elements() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, _fmtValue, x)
	}
	b.WriteString("]")

	return b.String()
}

// validateVecPair is the composite NotNil(a) → NotNil(b) → SameDim check.
func validateVecPair(a, b *Vector) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateVecPair", ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateVecPair", ErrDimensionMismatch)
	}

	return nil
}

// VecTranspose returns a copy of v: vectors carry no orientation, so
// transposition leaves the dimension and values unchanged.
func VecTranspose(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opVecTranspose, ErrNilMatrix)
	}

	return v.Clone(), nil
}

// VecAdd returns a fresh Vector with a[i] + b[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func VecAdd(a, b *Vector) (*Vector, error) {
	if err := validateVecPair(a, b); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}
	res := newVectorLike(len(a.data), a.validateNaNInf)
	floats.AddTo(res.data, a.data, b.data)

	return res, nil
}

// VecMul returns the elementwise product a[i] * b[i] as a fresh Vector.
// This is NOT the inner product; see Inner for Σ a[i]*b[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func VecMul(a, b *Vector) (*Vector, error) {
	if err := validateVecPair(a, b); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	res := newVectorLike(len(a.data), a.validateNaNInf)
	floats.MulTo(res.data, a.data, b.data)

	return res, nil
}

// Inner returns the scalar inner product Σ a[i]*b[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Inner(a, b *Vector) (float64, error) {
	if err := validateVecPair(a, b); err != nil {
		return 0, matrixErrorf(opInner, err)
	}

	return floats.Dot(a.data, b.data), nil
}
