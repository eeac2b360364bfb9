// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Matrix into a gonum Dense for cross-checking.
func toGonum(t testing.TB, m matrix.Matrix) *mat.Dense {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, MustAt(t, m, i, j))
		}
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts element-wise agreement within atol.
func requireMatchesGonum(t *testing.T, want *mat.Dense, got *matrix.Dense, atol float64) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.Rows())
	require.Equal(t, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), atol, "(%d,%d)", i, j)
		}
	}
}

// TestDeterminantAgainstGonum compares cofactor expansion with LU-based mat.Det.
func TestDeterminantAgainstGonum(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := MustDense(t, n, n)
			RandomFill(t, m, int64(500+n))

			got, err := m.Determinant()
			require.NoError(t, err)
			want := mat.Det(toGonum(t, m))
			require.InDelta(t, want, got, 1e-7*(1+abs(want)))
		})
	}
}

// TestInverseAgainstGonum compares the adjugate inverse with mat.Dense.Inverse.
func TestInverseAgainstGonum(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := MustDense(t, n, n)
			RandomFill(t, m, int64(900+n))

			got, err := m.Inverse()
			require.NoError(t, err)

			var want mat.Dense
			require.NoError(t, want.Inverse(toGonum(t, m)))
			requireMatchesGonum(t, &want, got, 1e-6)
		})
	}
}

// TestMultiplyTransposeAgainstGonum compares the product and transpose.
func TestMultiplyTransposeAgainstGonum(t *testing.T) {
	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 2)
	RandomFill(t, a, 31)
	RandomFill(t, b, 32)

	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(toGonum(t, a), toGonum(t, b))
	requireMatchesGonum(t, &want, got, 1e-12)

	requireMatchesGonum(t, mat.DenseCopyOf(toGonum(t, a).T()), a.Transpose(), 0)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
