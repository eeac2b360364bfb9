// SPDX-License-Identifier: MIT

// Package matrix - structural mutation and elementary row operations.
//
// Purpose:
//   - RemoveRow/RemoveColumn reallocate the backing buffer one line smaller,
//     preserving the relative order of the remaining lines.
//   - Minor materializes a copy with one row and one column removed.
//   - InterchangeRows, ScaleRow, AddScaledRow are the three elementary row
//     operations used in manual row-reduction workflows.
//
// Notes:
//   - Every method validates all indices/arguments before its first write.

package matrix

import "fmt"

// Method tags for error wrappers.
const (
	ctxRemoveRow    = "RemoveRow"
	ctxRemoveColumn = "RemoveColumn"
	ctxMinor        = "Minor"
	ctxInterchange  = "InterchangeRows"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
)

// RemoveRow deletes row r, shrinking the matrix to (Rows()-1) × Cols().
//
// Implementation:
//   - Stage 1: validate r; refuse to remove the only row (ErrLastLine).
//   - Stage 2: allocate a new buffer and copy rows [0,r) and (r,Rows()).
//
// Errors:
//   - ErrIndexOutOfRange, ErrLastLine (an ErrInvalidOperation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) RemoveRow(r int) error {
	if err := m.validateRowIndex(r); err != nil {
		return matrixErrorf("Dense."+ctxRemoveRow, err)
	}
	if m.r == minExtent {
		return matrixErrorf("Dense."+ctxRemoveRow, ErrLastLine)
	}
	buf := make([]float64, 0, (m.r-1)*m.c)
	buf = append(buf, m.data[:r*m.c]...)
	buf = append(buf, m.data[(r+1)*m.c:]...)
	m.r--
	m.data = buf

	return nil
}

// RemoveColumn deletes column c, shrinking the matrix to Rows() × (Cols()-1).
// Same contract as RemoveRow, applied to columns.
func (m *Dense) RemoveColumn(c int) error {
	if err := m.validateColIndex(c); err != nil {
		return matrixErrorf("Dense."+ctxRemoveColumn, err)
	}
	if m.c == minExtent {
		return matrixErrorf("Dense."+ctxRemoveColumn, ErrLastLine)
	}
	nc := m.c - 1
	buf := make([]float64, m.r*nc)
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		copy(buf[i*nc:], m.data[base:base+c])
		copy(buf[i*nc+c:], m.data[base+c+1:base+m.c])
	}
	m.c = nc
	m.data = buf

	return nil
}

// Minor returns a copy of m with row r and column c removed.
// The receiver is never mutated.
//
// Errors:
//   - ErrIndexOutOfRange; ErrLastLine when m has a single row or column.
func (m *Dense) Minor(r, c int) (*Dense, error) {
	minor := m.Copy()
	if err := minor.RemoveRow(r); err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}
	if err := minor.RemoveColumn(c); err != nil {
		return nil, matrixErrorf(ctxMinor, err)
	}

	return minor, nil
}

// InterchangeRows swaps the contents of rows r1 and r2 in place.
// r1 == r2 is a no-op.
//
// Errors:
//   - ErrIndexOutOfRange for either index.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) InterchangeRows(r1, r2 int) error {
	if err := m.validateRowIndex(r1); err != nil {
		return matrixErrorf("Dense."+ctxInterchange, err)
	}
	if err := m.validateRowIndex(r2); err != nil {
		return matrixErrorf("Dense."+ctxInterchange, err)
	}
	a, b := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}

	return nil
}

// ScaleRow multiplies every element of row r by k in place.
//
// Errors:
//   - ErrIndexOutOfRange for a bad row (checked first).
//   - ErrInvalidArgument when k == 0: zero scaling is not an invertible
//     elementary operation.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(r int, k float64) error {
	if err := m.validateRowIndex(r); err != nil {
		return matrixErrorf("Dense."+ctxScaleRow, err)
	}
	if k == 0 {
		return matrixErrorf("Dense."+ctxScaleRow, fmt.Errorf("zero factor: %w", ErrInvalidArgument))
	}
	base := r * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= k
	}

	return nil
}

// AddScaledRow performs target ← target + k·source in place.
// source == target is allowed and yields (1+k)·row.
//
// Errors:
//   - ErrIndexOutOfRange for either row index.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(source, target int, k float64) error {
	if err := m.validateRowIndex(source); err != nil {
		return matrixErrorf("Dense."+ctxAddScaledRow, err)
	}
	if err := m.validateRowIndex(target); err != nil {
		return matrixErrorf("Dense."+ctxAddScaledRow, err)
	}
	s, t := source*m.c, target*m.c
	for j := 0; j < m.c; j++ {
		m.data[t+j] += k * m.data[s+j]
	}

	return nil
}
