// SPDX-License-Identifier: MIT

// Package matrix: container contracts shared by the kernels.
// This file holds ONLY the public Matrix interface and the operand kind tags;
// concrete storage lives in impl_dense.go / impl_vector.go and errors/options
// live in their dedicated files.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every kernel accepts this interface and unlocks a flat-slice fast path when
// the dynamic type is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}

// Kind tags the dynamic variant held by an Operand.
type Kind uint8

// Operand kinds. KindInvalid is the zero value and never dispatches.
const (
	KindInvalid Kind = iota // zero Operand{}
	KindScalar              // real number
	KindMatrix              // any Matrix implementation
	KindVector              // *Vector
)

// String returns the lower-case kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMatrix:
		return "matrix"
	case KindVector:
		return "vector"
	default:
		return "invalid"
	}
}
