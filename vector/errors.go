// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every algorithm in this package returns one of these sentinels, wrapped with
// an operation tag via fmt.Errorf("%w"). Tests MUST check them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed constructor input
	// (negative dimension, basis dimension < 1) and nil operands.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrIndexOutOfRange indicates a component index outside [0, Dimension()-1].
	ErrIndexOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates operands whose dimensions are incompatible
	// for the requested binary operation (Add, Subtract, Dot, Cross).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opComponent  = "Component"
	opSet        = "SetComponent"
	opAdd        = "Add"
	opSubtract   = "Subtract"
	opDot        = "Dot"
	opCross      = "Cross"
	opAngle      = "AngleBetween"
	opStdUnitVec = "StandardUnitVectors"
)

// vectorErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}
