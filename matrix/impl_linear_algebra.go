// SPDX-License-Identifier: MIT
// Package matrix provides the typed linear-algebra kernels over any Matrix:
// element-wise addition, scalar scaling, Hadamard product, transpose and the
// standard matrix product (Dot). All functions perform strict fail-fast
// validation and return fresh results; operands are never mutated.
//
// Purpose:
//   - Canonical kernels used by the kind-dispatching facades in api.go.
//   - Shared operation tags and constants for error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path on the flat buffer and a generic
//     At-based fallback with the same loop order, so both produce identical bits.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opDot       = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy a result derived from m should carry.
// Non-Dense implementations get the package default.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// atErrorf tags an At failure inside a kernel fallback loop.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// elementwise computes out[i,j] = f(a[i,j], b[i,j]) for same-shape operands.
// Shared by Add and Hadamard: validation, allocation, fast path and fallback.
func elementwise(a, b Matrix, tag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDenseLike(rows, cols, policyOf(a))

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Dot for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes must be identical).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, opHadamard, func(x, y float64) float64 { return x * y })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// No dimension check applies; alpha = 0 yields an explicit zero matrix of m's
// shape and alpha = 1 an exact copy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(alpha float64, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseLike(rows, cols, policyOf(m))

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, i, j, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// TransposeMatrix returns a new cols×rows matrix with res[j,i] = m[i,j].
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - TransposeMatrix(TransposeMatrix(a)) reproduces a exactly (pure copies).
func TransposeMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDenseLike(cols, rows, policyOf(m)) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j] // data[i*cols+j] → res[j*rows+i]
			}
		}

		return res, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Dot performs standard matrix multiplication C = A × B.
// Despite the name this is the matrix product, not a vector dot product
// (see Inner for that).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Naive i→j→k triple loop accumulating Σ_k A[i,k]*B[k,j] into a
//     scalar, then a single store per output cell.
//
// Behavior highlights:
//   - No blocking, no zero skipping: every product term is evaluated, so NaN/Inf
//     in either operand propagate exactly as the formula dictates.
//
// Inputs:
//   - a: left matrix with shape (m × n).
//   - b: right matrix with shape (n × p).
//
// Returns:
//   - *Dense: new result with shape (m × p).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Dot(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseLike(aRows, bCols, policyOf(a))

	var (
		i, j, k int
		acc     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				for j = 0; j < bCols; j++ {
					acc = ZeroSum
					for k = 0; k < aCols; k++ {
						acc += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = acc
				}
			}

			return res, nil
		}
	}

	var (
		av, bv float64
		err    error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opDot, i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opDot, k, j, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}
