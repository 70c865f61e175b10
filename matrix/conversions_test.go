// SPDX-License-Identifier: MIT
// Package matrix_test cross-checks the kernels against gonum/mat.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestToGonum_RoundTrip(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, 6.0, g.At(1, 2))

	// no shared storage
	g.Set(0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{99, 2, 3}, {4, 5, 6}}, back)

	// fallback input
	g2, err := matrix.ToGonum(hide{a})
	require.NoError(t, err)
	require.True(t, mat.Equal(g2, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(1, 1, []float64{math.Inf(1)})
	_, err = matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVecGonum_RoundTrip(t *testing.T) {
	v := MustVector(t, 1, -2, 3)

	g, err := matrix.VecToGonum(v)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())
	g.SetVec(0, 10)
	require.Equal(t, 1.0, MustVecAt(t, v, 0))

	back, err := matrix.VecFromGonum(g)
	require.NoError(t, err)
	require.Equal(t, []float64{10, -2, 3}, back.Elements())

	_, err = matrix.VecToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.VecFromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDot_MatchesGonum compares the matrix product against mat.Dense.Mul.
func TestDot_MatchesGonum(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 4; seed++ {
		a := RandFilledDense(t, 3+int(seed), 4, seed)
		b := RandFilledDense(t, 4, 2+int(seed), seed+10)

		p, err := matrix.Dot(a, b)
		require.NoError(t, err)

		ga, err := matrix.ToGonum(a)
		require.NoError(t, err)
		gb, err := matrix.ToGonum(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(ga, gb)

		got, err := matrix.FromGonum(&want)
		require.NoError(t, err)
		CompareClose(t, got, p, 1e-12, 1e-12)
	}
}

// TestSolve_MatchesGonum compares Solve against mat.VecDense.SolveVec.
func TestSolve_MatchesGonum(t *testing.T) {
	t.Parallel()
	for n := 2; n <= 6; n++ {
		a := diagDominant(t, n, int64(n))
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = float64(i + 1)
		}
		rhs := MustVector(t, vals...)

		x, err := matrix.SolveSystem(a, rhs)
		require.NoError(t, err)

		ga, err := matrix.ToGonum(a)
		require.NoError(t, err)
		gb, err := matrix.VecToGonum(rhs)
		require.NoError(t, err)
		var want mat.VecDense
		require.NoError(t, want.SolveVec(ga, gb))

		wantV, err := matrix.VecFromGonum(&want)
		require.NoError(t, err)
		ok, err := matrix.VecAllClose(x, wantV, 1e-9)
		require.NoError(t, err)
		require.True(t, ok, "n=%d: got %v want %v", n, x, wantV)
	}
}

// TestGauss_PreservesDeterminant checks the diagonal product of the echelon
// form against mat.Det (no row swaps, so the sign is unchanged).
func TestGauss_PreservesDeterminant(t *testing.T) {
	a := diagDominant(t, 5, 42)

	g, err := matrix.Gauss(a)
	require.NoError(t, err)
	det := 1.0
	for i := 0; i < 5; i++ {
		det *= MustAt(t, g, i, i)
	}

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	require.InEpsilon(t, mat.Det(ga), det, 1e-9)
}
