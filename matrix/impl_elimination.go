// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination (no pivoting) and linear-system solve.
//
// Purpose:
//   - Gauss: forward elimination of a square matrix to row-echelon form.
//   - Solve: elimination of an n×(n+1) augmented matrix followed by
//     back-substitution.
//   - Both share one in-place kernel (eliminate) that always runs on a private
//     copy, so inputs are never mutated.
//
// Numeric policy:
//   - A pivot is rejected only when it is exactly 0 (ZeroPivot). Near-zero
//     pivots pass and can yield unstable results.
//   - Rows are never swapped: [[0,1],[1,0]] fails with ErrSingular although it
//     is invertible. A pivoting variant would have to be a separately named
//     operation.

package matrix

import "fmt"

// ZeroPivot is the exact value that marks a pivot as singular.
const ZeroPivot = 0.0

const (
	opGauss       = "Gauss"
	opSolve       = "Solve"
	opAugment     = "Augment"
	opSolveSystem = "SolveSystem"
)

// toDense returns a private *Dense copy of m (never aliases m's storage).
func toDense(m Matrix, tag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDenseLike(rows, cols, DefaultValidateNaNInf)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// eliminate runs forward elimination in place over the leading r×r block of w,
// updating every column from the pivot column to the last one.
// Implementation:
//   - For each pivot row i: pivot = w[i,i]; exact zero → ErrSingular.
//   - For each row k > i: factor = w[k,i]/pivot; w[k,j] -= factor*w[i,j] for j in i..c-1.
//
// Behavior highlights:
//   - Columns left of i are skipped: they are already zero below the diagonal.
//   - For a square w the column range is i..n-1; for an augmented w it also
//     carries the right-hand side along.
//
// Complexity:
//   - Time O(r²·c), Space O(1).
func eliminate(w *Dense) error {
	n, c := w.r, w.c

	var (
		i, j, k       int
		rowI, rowK    int
		pivot, factor float64
	)
	for i = 0; i < n; i++ {
		rowI = i * c
		pivot = w.data[rowI+i]
		if pivot == ZeroPivot {
			return fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}
		for k = i + 1; k < n; k++ {
			rowK = k * c
			factor = w.data[rowK+i] / pivot
			for j = i; j < c; j++ {
				w.data[rowK+j] -= factor * w.data[rowI+j]
			}
		}
	}

	return nil
}

// Gauss reduces a square matrix to row-echelon (upper-triangular) form.
// MAIN DESCRIPTION:
//   - Plain forward elimination without pivoting on a full clone of the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a).
//   - Stage 2: copy into a private *Dense.
//   - Stage 3: eliminate in place; return the copy.
//
// Inputs:
//   - a: n×n matrix.
//
// Returns:
//   - *Dense: new n×n row-echelon matrix; a is untouched.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square), ErrSingular (exact zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Gauss([[2,1],[1,1]]) == [[2,1],[0,0.5]].
//   - A leading zero pivot fails even for invertible matrices; reorder rows
//     upstream if the input allows it.
func Gauss(a Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	w, err := toDense(a, opGauss)
	if err != nil {
		return nil, err
	}
	if err = eliminate(w); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}

	return w, nil
}

// Solve solves the linear system encoded by an n×(n+1) augmented matrix.
// MAIN DESCRIPTION:
//   - Columns 0..n-1 hold the coefficients, column n the right-hand side.
//
// Implementation:
//   - Stage 1: NotNil → ValidateAugmented (cols == rows+1).
//   - Stage 2: forward elimination on a private copy (same kernel as Gauss).
//   - Stage 3: back-substitution from row n-1 to 0:
//     x[i] = w[i,n]/w[i,i]; then w[k,n] -= w[k,i]*x[i] for every k < i.
//
// Returns:
//   - *Vector: the n-element solution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not augmented), ErrSingular (propagated
//     unchanged from elimination; match with errors.Is).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Solve([[2,1,5],[1,3,10]]) == (1, 3).
//   - Use SolveSystem when coefficients and constants are held separately.
func Solve(a Matrix) (*Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateAugmented(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	w, err := toDense(a, opSolve)
	if err != nil {
		return nil, err
	}
	if err = eliminate(w); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return backSubstitute(w), nil
}

// backSubstitute solves the upper-triangular augmented system held in w.
// w is consumed: its right-hand-side column is rewritten.
func backSubstitute(w *Dense) *Vector {
	n, c := w.r, w.c
	x := newVectorLike(n, w.validateNaNInf)

	var i, k int
	for i = n - 1; i >= 0; i-- {
		x.data[i] = w.data[i*c+n] / w.data[i*c+i]
		for k = i - 1; k >= 0; k-- {
			w.data[k*c+n] -= w.data[k*c+i] * x.data[i]
		}
	}

	return x
}

// Augment appends rhs as an extra column to coeffs, producing the n×(m+1)
// matrix expected by Solve. Neither input is mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rhs.Dim() != coeffs.Rows()).
func Augment(coeffs Matrix, rhs *Vector) (*Dense, error) {
	if err := ValidateNotNil(coeffs); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	rows, cols := coeffs.Rows(), coeffs.Cols()
	if err := ValidateVecLen(rhs, rows); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	out := newDenseLike(rows, cols+1, policyOf(coeffs))

	var (
		i, j, base int
		v          float64
		err        error
	)
	for i = 0; i < rows; i++ {
		base = i * (cols + 1)
		for j = 0; j < cols; j++ {
			if v, err = coeffs.At(i, j); err != nil {
				return nil, atErrorf(opAugment, i, j, err)
			}
			out.data[base+j] = v
		}
		out.data[base+cols] = rhs.data[i]
	}

	return out, nil
}

// SolveSystem solves coeffs·x = rhs by augmenting and calling Solve.
// coeffs must be square for the augmented shape check to pass.
func SolveSystem(coeffs Matrix, rhs *Vector) (*Vector, error) {
	aug, err := Augment(coeffs, rhs)
	if err != nil {
		return nil, matrixErrorf(opSolveSystem, err)
	}
	x, err := Solve(aug)
	if err != nil {
		return nil, matrixErrorf(opSolveSystem, err)
	}

	return x, nil
}
