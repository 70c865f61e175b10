// Package linalg is a small playground for dense linear algebra, from
// matrix and vector containers to Gaussian elimination.
//
// What is linalg?
//
//	A compact library that brings together:
//		• Containers: row-major Dense matrices and Vectors with bounds-checked access
//		• Arithmetic: transpose, sum, elementwise and scalar products, matrix product
//		• Elimination: row-echelon form (Gauss) and augmented-system Solve
//		• Interop: copies to and from gonum's mat.Dense / mat.VecDense
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   : Dense, Vector, Operand, kernels, elimination, gonum interop
//	examples/ : runnable demo (resistor network, power iteration)
//
// Quick example, solving 2x + y = 5, x + 3y = 10:
//
//	aug, _ := matrix.NewDenseFrom(2, 3, [][]float64{{2, 1, 5}, {1, 3, 10}})
//	x, _ := matrix.Solve(aug) // [1, 3]
//
// Elimination never swaps rows: a zero pivot fails with matrix.ErrSingular
// even when the matrix is invertible.
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
