// Package linalg is a small dense linear-algebra library: vector and matrix
// value types with arithmetic, structural transforms, a recursive
// cofactor determinant and an adjugate inverse.
//
// What is inside?
//
//	vector/          fixed-dimension Vector: add, subtract, scale, length,
//	                 dot and cross products, unit vector, angle, standard basis
//	matrix/          row-major Dense matrix: Add, Subtract, Multiply (with
//	                 operand-order correction), Transpose, Minor, row
//	                 operations, Determinant, Inverse
//	cmd/linalgdemo/  prints a walk-through of every operation on fixed inputs
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{12, 4, 4}, {7, 0, 1}, {4, 0, 9}})
//	det, _ := m.Determinant() // -236
//
// Determinant and Inverse are O(n!) on purpose: expansion runs down the first
// column with no pivoting. Bound the order with matrix.WithMaxOrder when the
// input size is not under your control.
//
//	go get github.com/katalvlaran/linalg
package linalg
