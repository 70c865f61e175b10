// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkO matrix.Operand
	sinkV *matrix.Vector
	sinkF float64
)

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			a, bb := matrix.OfMatrix(A), matrix.OfMatrix(B)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				o, err := matrix.Sum(a, bb)
				if err != nil {
					b.Fatal(err)
				}
				sinkO = o
			}
		})
	}
}

func BenchmarkTimesHadamard(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1)
			fillDenseRand(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Hadamard(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n+8) // rectangular
			fillDenseRand(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.TransposeMatrix(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 101)
			fillDenseRand(b, B, 202)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Dot(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInner(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n*n), func(b *testing.B) {
			vals := make([]float64, n*n)
			for i := range vals {
				vals[i] = float64(i%17) - 8
			}
			v, err := matrix.NewVector(len(vals), vals)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.Inner(v, v)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkGauss(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagDominant(b, n, 31)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Gauss(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vals := make([]float64, n)
			for i := range vals {
				vals[i] = 1
			}
			rhs, err := matrix.NewVector(n, vals)
			if err != nil {
				b.Fatal(err)
			}
			aug, err := matrix.Augment(diagDominant(b, n, 53), rhs)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(aug)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
