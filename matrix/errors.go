// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & KINDS
// ----------------------
// The failure taxonomy has four kinds. Three of them are shared with the
// vector package and are aliases of its sentinels, so a failure raised by a
// vector kernel during a matrix operation (e.g., vector.Dot inside Multiply)
// matches both matrix.ErrX and vector.ErrX.
//
// The fourth kind, ErrInvalidOperation, is matrix-only. Its refinements
// (ErrNonSquare, ErrSingular, ErrOrderTooLarge) wrap it, so
// errors.Is(err, ErrInvalidOperation) holds for each of them.

var (
	// ErrInvalidArgument marks malformed constructor input (shape < 1,
	// ragged rows), a zero row-scaling factor, invalid tolerances and nil operands.
	ErrInvalidArgument = vector.ErrInvalidArgument

	// ErrIndexOutOfRange indicates a row or column index outside its valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add/Subtract different shapes, or Multiply where neither order conforms.
	ErrDimensionMismatch = vector.ErrDimensionMismatch
)

var (
	// ErrInvalidOperation is a semantic/state error: the operation is not
	// defined for this matrix (as opposed to a malformed argument).
	ErrInvalidOperation = errors.New("linalg: invalid operation")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidOperation)

	// ErrSingular is returned by Inverse when the determinant is exactly 0.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrInvalidOperation)

	// ErrOrderTooLarge is returned when a cofactor routine is asked to recurse
	// over a matrix larger than the configured WithMaxOrder guard.
	ErrOrderTooLarge = fmt.Errorf("%w: order exceeds configured limit", ErrInvalidOperation)

	// ErrLastLine is returned when RemoveRow/RemoveColumn would leave a
	// matrix with zero rows or zero columns.
	ErrLastLine = fmt.Errorf("%w: cannot remove the last row or column", ErrInvalidOperation)
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Keep method tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
