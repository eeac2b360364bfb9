// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Single source of truth for operand checks shared by Add/Subtract/Dot/Cross.
//  - Return plain sentinels (no wrapping) so call sites wrap with their own tag.

package vector

// crossDimension is the only dimension for which the cross product is defined.
const crossDimension = 3

// validateNotNil rejects nil operands with ErrInvalidArgument.
// Complexity: O(1).
func validateNotNil(vs ...*Vector) error {
	for _, v := range vs {
		if v == nil {
			return ErrInvalidArgument
		}
	}

	return nil
}

// validateSameDimension is the composite NotNil(a) → NotNil(b) → equal dimension check.
//
// Errors: ErrInvalidArgument, ErrDimensionMismatch.
// Complexity: O(1).
func validateSameDimension(a, b *Vector) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if len(a.components) != len(b.components) {
		return ErrDimensionMismatch
	}

	return nil
}
