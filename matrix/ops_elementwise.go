// SPDX-License-Identifier: MIT
// Package matrix - elementwise comparison kernels.
//
// Purpose:
//   - Equal: exact elementwise equality (used for round-trip properties).
//   - AllClose: tolerance comparison (used for M·M⁻¹ ≈ I style checks).

package matrix

import "math"

// Equal reports whether a and b have the same shape and identical elements.
// Nil operands are never equal.
// Time: O(r*c). Space: O(1).
func Equal(a, b Matrix) bool {
	ok, err := ewAllClose(a, b, 0, 0)

	return err == nil && ok
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrInvalidArgument.
//   - A NaN element never compares close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ok, err := ewAllClose(a, b, rtol, atol)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	return ok, nil
}

// ewAllClose is the shared kernel for Equal and AllClose.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = validateTol(rtol); err != nil {
		return false, err
	}
	if atol, err = validateTol(atol); err != nil {
		return false, err
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol reports |a-b| ≤ atol + rtol*|b|. Equal infinities are close.
func withinTol(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
