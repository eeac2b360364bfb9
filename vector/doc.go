// Package vector provides a fixed-dimension, real-valued Vector type.
//
// What & Why:
//
//	Vector is the leaf value type of the linalg module. The matrix package
//	extracts rows and columns as Vectors and delegates dot products to this
//	package, so Vector never depends on matrix.
//
// Ownership:
//
//	Every constructor and Clone performs a deep copy. Two live *Vector values
//	never share backing storage; mutating one never affects another.
//
// Errors:
//
//	All failures are sentinel errors (ErrInvalidArgument, ErrIndexOutOfRange,
//	ErrDimensionMismatch) wrapped with operation context. Match them with
//	errors.Is. No method panics on user input.
//
// Complexity:
//
//	Component/SetComponent/Dimension are O(1); every other operation is O(n)
//	in the dimension n.
package vector
