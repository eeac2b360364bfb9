// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface binary operations accept. *Dense is the
// only implementation in this module; tests wrap it to exercise the generic
// (non-*Dense) code paths of Add, Subtract, Multiply and AllClose.
//
// Contract:
//   - Rows() >= 1 and Cols() >= 1 for any valid value.
//   - At/Set accept 0 <= i < Rows(), 0 <= j < Cols() and fail with
//     ErrIndexOutOfRange otherwise; one past the end is out of range.
//   - Clone is deep: writes to the copy never reach the receiver.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads element (i, j).
	At(i, j int) (float64, error)

	// Set writes v to element (i, j).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. O(rows*cols).
	Clone() Matrix
}
