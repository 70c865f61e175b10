// Package matrix offers small dense linear-algebra primitives.
//
// The matrix package provides:
//
//   - Dense: a row-major, fixed-size, mutable float64 matrix with
//     bounds-checked At/Set and an optional finite-values policy.
//   - Vector: a fixed-size, mutable float64 sequence with the same guarantees.
//   - Operand: a tagged variant over {scalar, matrix, vector} driving the
//     kind-polymorphic facades Transpose, Sum and Times.
//   - Typed kernels: TransposeMatrix, Add, Scale, Hadamard, Dot (matrix
//     product), VecAdd, VecMul, Inner.
//   - Gauss (forward elimination without pivoting) and Solve (elimination of
//     an n×(n+1) augmented matrix plus back-substitution), with Augment and
//     SolveSystem for callers holding coefficients and constants apart.
//
// Every kernel returns a fresh container and never mutates its operands; Set
// is the only mutating call. Failures are reported through sentinel errors
// (ErrDimensionMismatch, ErrOutOfRange, ErrType, ErrSingular, ...) wrapped
// with the operation name and matchable with errors.Is.
//
// The package targets small, interactive, real-valued problems. Elimination
// never swaps rows and tests pivots for exact zero, so a matrix such as
// [[0,1],[1,0]] fails with ErrSingular even though it is invertible.
//
// See the examples in this package for usage patterns.
package matrix
