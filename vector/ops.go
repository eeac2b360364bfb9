// SPDX-License-Identifier: MIT

// Package vector - arithmetic and geometric kernels.
//
// Purpose:
//   - In-place arithmetic (MultiplyByScalar, Add, Subtract) that validates before the first write.
//   - Pure geometric queries (Length, Dot, Cross, UnitVector, AngleBetween) and the canonical basis.
//
// Notes:
//   - No floating-point mitigation: UnitVector of a zero vector yields NaN components.

package vector

import (
	"fmt"
	"math"
)

// degreesPerRadian converts radians to degrees.
const degreesPerRadian = 180 / math.Pi

// Length returns the Euclidean norm √(Σ cᵢ²).
// Complexity: O(n).
func (v *Vector) Length() float64 {
	var sum float64
	for _, c := range v.components {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// MultiplyByScalar multiplies every component by s in place.
// Complexity: O(n).
func (v *Vector) MultiplyByScalar(s float64) {
	for i := range v.components {
		v.components[i] *= s
	}
}

// Add adds other to v elementwise, in place.
// MAIN DESCRIPTION:
//   - v[i] += other[i] for every i.
//
// Implementation:
//   - Stage 1: validate other is non-nil and dimensions match.
//   - Stage 2: single flat loop.
//
// Errors:
//   - ErrInvalidArgument (nil other), ErrDimensionMismatch.
//
// Behavior highlights:
//   - v is unchanged when an error is returned.
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector) Add(other *Vector) error {
	if err := validateSameDimension(v, other); err != nil {
		return vectorErrorf(opAdd, err)
	}
	for i := range v.components {
		v.components[i] += other.components[i]
	}

	return nil
}

// Subtract subtracts other from v elementwise, in place.
// Same contract as Add.
func (v *Vector) Subtract(other *Vector) error {
	if err := validateSameDimension(v, other); err != nil {
		return vectorErrorf(opSubtract, err)
	}
	for i := range v.components {
		v.components[i] -= other.components[i]
	}

	return nil
}

// Dot returns Σ v1ᵢ·v2ᵢ.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(v1, v2 *Vector) (float64, error) {
	if err := validateSameDimension(v1, v2); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	var sum float64
	for i := range v1.components {
		sum += v1.components[i] * v2.components[i]
	}

	return sum, nil
}

// Cross returns the 3D cross product v1 × v2 as a new vector.
// Both operands must have dimension exactly 3; otherwise ErrDimensionMismatch.
func Cross(v1, v2 *Vector) (*Vector, error) {
	if err := validateNotNil(v1, v2); err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	if len(v1.components) != crossDimension || len(v2.components) != crossDimension {
		return nil, fmt.Errorf("Vector.%s: dimensions %d and %d, want %d: %w",
			opCross, len(v1.components), len(v2.components), crossDimension, ErrDimensionMismatch)
	}
	a, b := v1.components, v2.components

	return &Vector{components: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// UnitVector returns v divided componentwise by its Length.
// A zero-length vector yields NaN components; this is not guarded.
// Complexity: O(n).
func (v *Vector) UnitVector() *Vector {
	length := v.Length()
	out := make([]float64, len(v.components))
	for i, c := range v.components {
		out[i] = c / length
	}

	return &Vector{components: out}
}

// AngleBetween returns arccos(v·other / (|v|·|other|)) in degrees.
//
// Errors:
//   - propagated from Dot (ErrInvalidArgument, ErrDimensionMismatch).
//
// Notes:
//   - A zero-length operand yields NaN, same as UnitVector.
func (v *Vector) AngleBetween(other *Vector) (float64, error) {
	dot, err := Dot(v, other)
	if err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	cos := dot / (v.Length() * other.Length())

	return math.Acos(cos) * degreesPerRadian, nil
}

// StandardUnitVectors returns the canonical basis e₀..e_{dimension-1}:
// the i-th vector has 1 at index i and 0 elsewhere.
//
// Errors:
//   - ErrInvalidArgument when dimension < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func StandardUnitVectors(dimension int) ([]*Vector, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("Vector.%s(%d): %w", opStdUnitVec, dimension, ErrInvalidArgument)
	}
	basis := make([]*Vector, dimension)
	for i := range basis {
		components := make([]float64, dimension)
		components[i] = 1.0
		basis[i] = &Vector{components: components}
	}

	return basis, nil
}
