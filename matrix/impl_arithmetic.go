// SPDX-License-Identifier: MIT
// Package matrix - arithmetic kernels: in-place Add/Subtract/MultiplyByScalar,
// pure Multiply and Transpose.
//
// Purpose:
//   - In-place kernels validate every precondition before their first write,
//     so a failed call leaves the receiver unchanged.
//   - Multiply delegates each cell to vector.Dot over an extracted row and column.
//
// Notes:
//   - *Dense operands take flat-slice fast paths; any other Matrix is read via At.

package matrix

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/linalg/vector"
)

var log = logging.Logger("matrix")

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSubtract = "Subtract"
	opMultiply = "Multiply"
)

// DimensionsMatch reports whether a and b have pairwise equal row and column counts.
// A nil operand never matches.
func DimensionsMatch(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}

	return ValidateSameShape(a, b) == nil
}

// addSub computes m = m + sign*other in place for sign ∈ {+1, -1}.
// Internal helper for Add/Subtract to share validation and the fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, other).
//   - Stage 2: *Dense other → single flat loop straight into m.data.
//     Otherwise read every element of other into a scratch buffer first,
//     then commit; an At failure midway leaves m untouched.
//
// Errors:
//   - ErrInvalidArgument (nil other), ErrDimensionMismatch, errors from other.At.
//
// Complexity:
//   - Time O(r*c); Space O(1) on the fast path, O(r*c) scratch otherwise.
func (m *Dense) addSub(other Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf("Dense."+opTag, err)
	}

	if od, ok := other.(*Dense); ok {
		for idx := range m.data { // deterministic 0..n-1
			m.data[idx] += sign * od.data[idx]
		}

		return nil
	}

	scratch := make([]float64, len(m.data))
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = other.At(i, j); err != nil {
				return matrixErrorf("Dense."+opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			scratch[i*m.c+j] = m.data[i*m.c+j] + sign*v
		}
	}
	copy(m.data, scratch)

	return nil
}

// Add adds other to m elementwise, in place.
//
// Errors:
//   - ErrInvalidArgument (nil other), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c).
func (m *Dense) Add(other Matrix) error { return m.addSub(other, +1, opAdd) }

// Subtract subtracts other from m elementwise, in place.
// Same contract as Add.
func (m *Dense) Subtract(other Matrix) error { return m.addSub(other, -1, opSubtract) }

// MultiplyByScalar multiplies every element by s in place.
// Complexity: O(r*c).
func (m *Dense) MultiplyByScalar(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// rowOf extracts row i of any Matrix as an independent Vector.
func rowOf(m Matrix, i int) (*vector.Vector, error) {
	if d, ok := m.(*Dense); ok {
		return d.RowVector(i)
	}
	row := make([]float64, m.Cols())
	var err error
	for j := range row {
		if row[j], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return vector.FromSlice(row), nil
}

// colOf extracts column j of any Matrix as an independent Vector.
func colOf(m Matrix, j int) (*vector.Vector, error) {
	if d, ok := m.(*Dense); ok {
		return d.ColumnVector(j)
	}
	col := make([]float64, m.Rows())
	var err error
	for i := range col {
		if col[i], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return vector.FromSlice(col), nil
}

// Multiply returns the matrix product of a and b.
// MAIN DESCRIPTION:
//   - Standard product C = A × B with one operand-order correction.
//
// Implementation:
//   - Stage 1: validate non-nil operands.
//   - Stage 2: if a.Cols != b.Rows but a.Rows == b.Cols, swap a and b
//     (the call is treated as B × A); if neither order conforms,
//     fail with ErrDimensionMismatch.
//   - Stage 3: allocate C (a.Rows × b.Cols after any swap) and fill
//     C[i,j] = vector.Dot(row_i(A), col_j(B)). Columns of B are extracted
//     once up front.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - The swap is silent to the caller and traced at debug level.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c).
func Multiply(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	if a.Cols() != b.Rows() {
		if a.Rows() != b.Cols() {
			return nil, matrixErrorf(opMultiply, fmt.Errorf("%dx%d by %dx%d: %w",
				a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
		}
		log.Debugf("Multiply: %dx%d by %dx%d does not conform, swapping operands",
			a.Rows(), a.Cols(), b.Rows(), b.Cols())
		a, b = b, a
	}

	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	cols := make([]*vector.Vector, b.Cols())
	for j := range cols {
		if cols[j], err = colOf(b, j); err != nil {
			return nil, matrixErrorf(opMultiply, err)
		}
	}

	var row *vector.Vector
	var dot float64
	for i := 0; i < res.r; i++ {
		if row, err = rowOf(a, i); err != nil {
			return nil, matrixErrorf(opMultiply, err)
		}
		for j := 0; j < res.c; j++ {
			if dot, err = vector.Dot(row, cols[j]); err != nil {
				return nil, matrixErrorf(opMultiply, err)
			}
			res.data[i*res.c+j] = dot
		}
	}

	return res, nil
}

// Transpose returns a new matrix T with T(j,i) = m(i,j), shape (Cols × Rows).
// The receiver is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j] // data[i*cols + j] → res.data[j*rows + i]
		}
	}

	return res
}
