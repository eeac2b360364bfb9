// Package matrix offers a dense, owning Matrix value type and its algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols float64 matrix (rows, cols ≥ 1) with
//     bounds-checked At/Set, deep Copy/Clone and a "|a, b|" row rendering.
//   - Arithmetic: in-place Add, Subtract, MultiplyByScalar; pure Multiply
//     (with a one-time operand swap when only the reversed order conforms)
//     and Transpose.
//   - Structure: RemoveRow, RemoveColumn, Minor and the elementary row
//     operations InterchangeRows, ScaleRow, AddScaledRow.
//   - Determinant by recursive first-column cofactor expansion and Inverse
//     by the adjugate method. Both are intentionally O(n!).
//
// Rows and columns are handed out as vector.Vector copies; Multiply and the
// zero-line test of Determinant delegate to the vector package.
//
// Errors are sentinels matched with errors.Is: ErrInvalidArgument,
// ErrIndexOutOfRange, ErrDimensionMismatch (shared with package vector) and
// ErrInvalidOperation (refined by ErrNonSquare, ErrSingular,
// ErrOrderTooLarge, ErrLastLine).
package matrix
