// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY; the _test.go suffix keeps
//     them out of production builds.

var (
	// ExportedHasZeroLine exposes the zero row/column short-circuit predicate.
	ExportedHasZeroLine = hasZeroLine
	// ExportedValidateRows exposes the ragged-table validator.
	ExportedValidateRows = validateRows
	// ExportedValidateTol exposes tolerance normalization.
	ExportedValidateTol = validateTol
)

