// Package vector_test contains unit tests for the Vector type.
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimension ensures New rejects negative dimensions and accepts zero.
func TestNewInvalidDimension(t *testing.T) {
	_, err := vector.New(-1)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	v, err := vector.New(0) // empty vector is legal
	require.NoError(t, err)
	require.Equal(t, 0, v.Dimension())
	require.Equal(t, "[]", v.String())
}

// TestNewZeroFilled verifies a dimension-constructed vector is all zeros.
func TestNewZeroFilled(t *testing.T) {
	v, err := vector.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, v.Dimension())
	require.True(t, v.IsZero())
}

// TestComponentOutOfRange ensures Component/SetComponent reject bad indices.
func TestComponentOutOfRange(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2, 3})

	_, err := v.Component(-1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.Component(3)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	require.ErrorIs(t, v.SetComponent(3, 9), vector.ErrIndexOutOfRange)
	require.ErrorIs(t, v.SetComponent(-1, 9), vector.ErrIndexOutOfRange)

	require.NoError(t, v.SetComponent(2, 9))
	c, err := v.Component(2)
	require.NoError(t, err)
	require.Equal(t, 9.0, c)
}

// TestFromSliceDeepCopy checks that neither the input slice nor Components alias storage.
func TestFromSliceDeepCopy(t *testing.T) {
	src := []float64{1, 2, 3}
	v := vector.FromSlice(src)
	src[0] = 100 // must not leak into v

	c, err := v.Component(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, c)

	snap := v.Components()
	snap[1] = 100 // must not leak into v
	c, _ = v.Component(1)
	require.Equal(t, 2.0, c)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2})
	cl := v.Clone()
	require.True(t, vector.Equal(v, cl))

	require.NoError(t, cl.SetComponent(0, 7))
	c, _ := v.Component(0)
	require.Equal(t, 1.0, c)
	require.False(t, vector.Equal(v, cl))
}

// TestLength verifies the Euclidean norm.
func TestLength(t *testing.T) {
	require.Equal(t, 5.0, vector.FromSlice([]float64{3, 4}).Length())
	require.InDelta(t, math.Sqrt(35), vector.FromSlice([]float64{1, 3, 5}).Length(), 1e-12)
	require.Equal(t, 0.0, vector.FromSlice(nil).Length())
}

// TestArithmetic covers in-place MultiplyByScalar, Add and Subtract.
func TestArithmetic(t *testing.T) {
	v1 := vector.FromSlice([]float64{1, 3, 5})
	v2 := vector.FromSlice([]float64{2, 4, 15})

	require.NoError(t, v1.Add(v2))
	require.Equal(t, "[3, 7, 20]", v1.String())

	v2.MultiplyByScalar(2)
	require.Equal(t, "[4, 8, 30]", v2.String())

	require.NoError(t, v1.Subtract(v2))
	require.Equal(t, "[-1, -1, -10]", v1.String())
}

// TestArithmeticMismatchLeavesReceiver ensures failed in-place ops do not mutate.
func TestArithmeticMismatchLeavesReceiver(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2, 3})
	w := vector.FromSlice([]float64{1, 2})

	require.ErrorIs(t, v.Add(w), vector.ErrDimensionMismatch)
	require.ErrorIs(t, v.Subtract(w), vector.ErrDimensionMismatch)
	require.ErrorIs(t, v.Add(nil), vector.ErrInvalidArgument)
	require.Equal(t, "[1, 2, 3]", v.String())
}

// TestDotAndCross checks the concrete dot/cross scenario.
func TestDotAndCross(t *testing.T) {
	v1 := vector.FromSlice([]float64{1, 3, 5})
	v2 := vector.FromSlice([]float64{2, 4, 15})

	dot, err := vector.Dot(v1, v2)
	require.NoError(t, err)
	require.Equal(t, 89.0, dot)

	cross, err := vector.Cross(v1, v2)
	require.NoError(t, err)
	require.True(t, vector.Equal(vector.FromSlice([]float64{25, -5, -2}), cross))
}

// TestDotCrossMismatch ensures incompatible dimensions are rejected.
func TestDotCrossMismatch(t *testing.T) {
	v2d := vector.FromSlice([]float64{1, 2})
	v3d := vector.FromSlice([]float64{1, 2, 3})

	_, err := vector.Dot(v2d, v3d)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Cross(v2d, v2d) // equal but not 3
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Cross(v3d, nil)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
}

// TestUnitVector covers the normal case and the documented NaN case.
func TestUnitVector(t *testing.T) {
	u := vector.FromSlice([]float64{3, 0, 4}).UnitVector()
	require.InDelta(t, 1.0, u.Length(), 1e-12)
	c, _ := u.Component(0)
	require.InDelta(t, 0.6, c, 1e-12)

	z := vector.FromSlice([]float64{0, 0}).UnitVector()
	for i := 0; i < z.Dimension(); i++ {
		c, _ = z.Component(i)
		require.True(t, math.IsNaN(c))
	}
}

// TestAngleBetween checks degrees output and error propagation.
func TestAngleBetween(t *testing.T) {
	x := vector.FromSlice([]float64{1, 0})
	y := vector.FromSlice([]float64{0, 2})

	deg, err := x.AngleBetween(y)
	require.NoError(t, err)
	require.InDelta(t, 90.0, deg, 1e-9)

	deg, err = x.AngleBetween(x)
	require.NoError(t, err)
	require.InDelta(t, 0.0, deg, 1e-9)

	_, err = x.AngleBetween(vector.FromSlice([]float64{1, 2, 3}))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestStandardUnitVectors verifies the canonical basis and its guard.
func TestStandardUnitVectors(t *testing.T) {
	_, err := vector.StandardUnitVectors(0)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	basis, err := vector.StandardUnitVectors(3)
	require.NoError(t, err)
	require.Len(t, basis, 3)
	require.Equal(t, "[1, 0, 0]", basis[0].String())
	require.Equal(t, "[0, 1, 0]", basis[1].String())
	require.Equal(t, "[0, 0, 1]", basis[2].String())

	// Basis vectors are pairwise orthogonal.
	for i := range basis {
		for j := range basis {
			dot, err := vector.Dot(basis[i], basis[j])
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, dot)
			} else {
				require.Equal(t, 0.0, dot)
			}
		}
	}
}

// TestIsZero uses exact comparison.
func TestIsZero(t *testing.T) {
	require.True(t, vector.FromSlice([]float64{0, 0, 0}).IsZero())
	require.False(t, vector.FromSlice([]float64{0, 1e-300, 0}).IsZero())
}
