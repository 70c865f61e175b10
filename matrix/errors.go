// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (wrapped with an operation tag) and
// tests match them via errors.Is. No kernel panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX); callers keep matching with
// errors.Is regardless of how many tags were added on the way up.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> operand kind -> shape/dimension -> index -> numeric (NaN/Inf, singular).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates a shape violation: element rows that do
	// not match the declared shape at construction, or incompatible operands
	// (Add/Hadamard on different shapes, Dot where a.Cols != b.Rows, Gauss on a
	// non-square matrix, Solve on a non-augmented one).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrType signals an operation invoked on an unsupported combination of
	// operand kinds (e.g. Sum of a Matrix and a Vector, Transpose of a Scalar).
	ErrType = errors.New("matrix: unsupported operand kinds")

	// ErrSingular is returned when an exact zero pivot is met during elimination.
	// No pivoting is attempted, so some non-singular matrices also trigger it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix or *Vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (construction, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

