// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Every copy (Copy, Clone, NewFromRows, NewFromMatrix) is deep; no two
//     live *Dense values share storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy/Clone: O(r*c);
//     RowVector: O(c); ColumnVector: O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"           // method tag used in error wrappers
	ctxSet       = "Set"          // method tag used in error wrappers
	ctxRowVector = "RowVector"    // method tag used in error wrappers
	ctxColVector = "ColumnVector" // method tag used in error wrappers
	ctxFromRows  = "NewFromRows"  // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "|"
	_fmtRowClose = "|\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=1 && cols>=1; else ErrInvalidArgument.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidArgument (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense holding a deep copy of a 2D table.
// MAIN DESCRIPTION:
//   - Copy construction from raw row data; every row must share the same length.
//
// Implementation:
//   - Stage 1: validate the table is non-empty, the first row is non-empty,
//     and every row has the first row's length (validateRows).
//   - Stage 2: allocate the flat buffer and copy row by row.
//
// Behavior highlights:
//   - Ragged input is rejected before the backing buffer is allocated.
//   - The caller keeps ownership of rows; later writes to it are not observed.
//
// Errors:
//   - ErrInvalidArgument (empty or ragged table).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if err := validateRows(rows); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)
	for i, row := range rows {
		copy(buf[i*c:(i+1)*c], row)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// NewFromMatrix deep-copies any Matrix into a new Dense.
// A *Dense source takes the flat-copy fast path; other implementations are read via At.
func NewFromMatrix(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("NewFromMatrix", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Copy(), nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("NewFromMatrix", err)
	}
	var v float64
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("NewFromMatrix", err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// NewIdentity returns an n×n identity matrix (1 on the main diagonal, 0 elsewhere).
// Fails with ErrInvalidArgument when n < 1.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// The bound is strict on both axes: 0 ≤ row < r, 0 ≤ col < c.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Copy returns a deep copy with the concrete *Dense type.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Clone returns a deep copy (new buffer) as a Matrix.
// The returned dynamic type is *Dense.
func (m *Dense) Clone() Matrix { return m.Copy() }

// RowVector returns row r as an independent Vector.
//
// Errors:
//   - ErrIndexOutOfRange when r is outside [0, Rows()-1].
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) RowVector(r int) (*vector.Vector, error) {
	if r < 0 || r >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRowVector, r, ErrIndexOutOfRange)
	}

	return vector.FromSlice(m.data[r*m.c : (r+1)*m.c]), nil
}

// ColumnVector returns column c as an independent Vector.
//
// Errors:
//   - ErrIndexOutOfRange when c is outside [0, Cols()-1].
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) ColumnVector(c int) (*vector.Vector, error) {
	if c < 0 || c >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxColVector, c, ErrIndexOutOfRange)
	}
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+c]
	}

	return vector.FromSlice(col), nil
}

// String renders one line per row as "|e0, e1, ..., en-1|".
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values formatted with %g into a strings.Builder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
