// SPDX-License-Identifier: MIT

// Package vector - owned storage, constructors & safe accessors.
//
// Purpose:
//   - Keep one contiguous []float64 per instance, never shared across handles.
//   - Guarantee safety at the public surface: Component/SetComponent return errors instead of panicking.
//   - Render as "[c0, c1, ..., cn-1]" for diagnostics and the demo driver.

package vector

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-dimension sequence of float64 components.
// The zero value is a valid 0-dimensional vector.
type Vector struct {
	components []float64 // owned storage; len == dimension
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New creates a zero-filled vector of the given dimension.
// MAIN DESCRIPTION:
//   - Public constructor by dimension; dimension 0 is legal and yields an empty vector.
//
// Implementation:
//   - Stage 1: validate dimension >= 0; else ErrInvalidArgument.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidArgument (negative dimension).
//
// Complexity:
//   - Time O(n), Space O(n).
func New(dimension int) (*Vector, error) {
	if dimension < 0 {
		return nil, fmt.Errorf("Vector.%s(%d): %w", opNew, dimension, ErrInvalidArgument)
	}

	return &Vector{components: make([]float64, dimension)}, nil
}

// FromSlice creates a vector holding a copy of components.
// The caller keeps ownership of the input slice; later writes to it are not observed.
// Complexity: O(n).
func FromSlice(components []float64) *Vector {
	cp := make([]float64, len(components))
	copy(cp, components)

	return &Vector{components: cp}
}

// Clone returns a deep copy of v.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return FromSlice(v.components)
}

// Dimension returns the number of components.
func (v *Vector) Dimension() int { return len(v.components) }

// Components returns a copy of the component slice.
func (v *Vector) Components() []float64 {
	cp := make([]float64, len(v.components))
	copy(cp, v.components)

	return cp
}

// checkIndex reports ErrIndexOutOfRange when i is outside [0, Dimension()-1].
func (v *Vector) checkIndex(i int) error {
	if i < 0 || i >= len(v.components) {
		return ErrIndexOutOfRange
	}

	return nil
}

// Component returns the i-th component or ErrIndexOutOfRange.
// Complexity: O(1).
func (v *Vector) Component(i int) (float64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, fmt.Errorf("Vector.%s(%d): %w", opComponent, i, err)
	}

	return v.components[i], nil
}

// SetComponent assigns value to the i-th component or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (v *Vector) SetComponent(i int, value float64) error {
	if err := v.checkIndex(i); err != nil {
		return fmt.Errorf("Vector.%s(%d): %w", opSet, i, err)
	}
	v.components[i] = value

	return nil
}

// IsZero reports whether every component equals exactly 0.
// A 0-dimensional vector is a zero vector.
func (v *Vector) IsZero() bool {
	for _, c := range v.components {
		if c != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have the same dimension and identical components.
// Two nil vectors are equal; a nil and a non-nil vector are not.
func Equal(a, b *Vector) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.components) != len(b.components) {
		return false
	}
	for i := range a.components {
		if a.components[i] != b.components[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[c0, c1, ..., cn-1]" using %g per component.
// An empty vector renders as "[]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, c := range v.components {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", c))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
