// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return plain or tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - In-place kernels run every validator they need BEFORE their first write.

package matrix

import (
	"fmt"
	"math"
)

// minExtent is the smallest legal row or column count.
const minExtent = 1

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape rejects rows < 1 or cols < 1 with ErrInvalidArgument.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < minExtent || cols < minExtent {
		return validatorErrorf("validateShape", ErrInvalidArgument)
	}

	return nil
}

// validateRows checks a raw 2D table is non-empty and rectangular.
//
// Errors: ErrInvalidArgument on empty table, empty first row, or a row whose
// length differs from the first row's.
// Complexity: O(r).
func validateRows(rows [][]float64) error {
	if len(rows) < minExtent || len(rows[0]) < minExtent {
		return validatorErrorf("validateRows: empty", ErrInvalidArgument)
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf(fmt.Sprintf("validateRows: row %d has %d elements, want %d", i, len(rows[i]), want), ErrInvalidArgument)
		}
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Also catches a typed-nil *Dense stored in the interface.
// Returns ErrInvalidArgument if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidArgument)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidArgument)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrInvalidArgument and ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare (an ErrInvalidOperation) if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// validateRowIndex reports ErrIndexOutOfRange unless 0 ≤ r < m.r.
func (m *Dense) validateRowIndex(r int) error {
	if r < 0 || r >= m.r {
		return validatorErrorf(fmt.Sprintf("row %d", r), ErrIndexOutOfRange)
	}

	return nil
}

// validateColIndex reports ErrIndexOutOfRange unless 0 ≤ c < m.c.
func (m *Dense) validateColIndex(c int) error {
	if c < 0 || c >= m.c {
		return validatorErrorf(fmt.Sprintf("column %d", c), ErrIndexOutOfRange)
	}

	return nil
}

// validateTol normalizes a tolerance to |tol| and rejects NaN/±Inf with ErrInvalidArgument.
func validateTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf("validateTol", ErrInvalidArgument)
	}

	return math.Abs(tol), nil
}
