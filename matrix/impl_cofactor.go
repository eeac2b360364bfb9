// SPDX-License-Identifier: MIT

// Package matrix - cofactor routines: recursive Determinant and adjugate Inverse.
//
// Purpose:
//   - Determinant by Laplace (cofactor) expansion along the first column,
//     with an all-zero row/column short-circuit before each recursion step.
//   - Inverse by the adjugate: inv(i,j) = (-1)^(i+j) · det(Minor(j,i)) / det.
//
// Complexity:
//   - Determinant is O(n!) time and O(n) recursion depth; Inverse calls it
//     once per entry, O(n²·(n-1)!). Use WithMaxOrder to bound n.
//
// Notes:
//   - No pivoting and no tolerance: the singular test is det == 0 exactly.

package matrix

import "fmt"

// Method tags for error wrappers.
const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// expansionColumn is the column the cofactor expansion runs along.
const expansionColumn = 0

// Determinant returns det(m) by recursive cofactor expansion.
// MAIN DESCRIPTION:
//   - Naive Laplace expansion, first column, signs alternating from + at row 0.
//
// Implementation:
//   - Stage 1: ValidateSquare; apply the WithMaxOrder guard.
//   - Stage 2: recurse via cofactorDeterminant:
//     1×1 → the sole element; any all-zero row, then any all-zero column → 0;
//     else Σᵢ (-1)^i · m(i,0) · det(Minor(i,0)) for i ascending.
//
// Errors:
//   - ErrNonSquare, ErrOrderTooLarge (both ErrInvalidOperation).
//
// Determinism:
//   - Fixed expansion order; identical inputs give bit-identical results.
//
// Complexity:
//   - Time O(n!), Space O(n²) per live frame, depth n.
func (m *Dense) Determinant(opts ...Option) (float64, error) {
	if err := m.checkCofactorInput(gatherOptions(opts...)); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := cofactorDeterminant(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// checkCofactorInput is the shared guard for Determinant and Inverse.
func (m *Dense) checkCofactorInput(o Options) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !o.allows(m.r) {
		return fmt.Errorf("order %d, limit %d: %w", m.r, o.maxOrder, ErrOrderTooLarge)
	}

	return nil
}

// cofactorDeterminant is the recursive kernel. m must be square.
func cofactorDeterminant(m *Dense) (float64, error) {
	if m.r == 1 {
		return m.data[0], nil
	}
	zero, err := hasZeroLine(m)
	if err != nil {
		return 0, err
	}
	if zero {
		return 0, nil
	}

	var det, term, sub float64
	var minor *Dense
	for i := 0; i < m.r; i++ {
		if minor, err = m.Minor(i, expansionColumn); err != nil {
			return 0, err
		}
		if sub, err = cofactorDeterminant(minor); err != nil {
			return 0, err
		}
		term = m.data[i*m.c+expansionColumn] * sub
		if (i+expansionColumn)%2 == 1 {
			term = -term
		}
		det += term
	}

	return det, nil
}

// hasZeroLine reports whether any row, then any column, of m is entirely zero.
// Rows and columns are extracted as vectors and tested with Vector.IsZero.
func hasZeroLine(m *Dense) (bool, error) {
	for i := 0; i < m.r; i++ {
		row, err := m.RowVector(i)
		if err != nil {
			return false, err
		}
		if row.IsZero() {
			return true, nil
		}
	}
	for j := 0; j < m.c; j++ {
		col, err := m.ColumnVector(j)
		if err != nil {
			return false, err
		}
		if col.IsZero() {
			return true, nil
		}
	}

	return false, nil
}

// Inverse returns m⁻¹ computed as adj(m) / det(m).
// MAIN DESCRIPTION:
//   - inv(i,j) = (1/det) · (-1)^(i+j) · det(Minor(j,i)); the (j,i) minor
//     index swap produces the transpose of the cofactor matrix directly.
//
// Implementation:
//   - Stage 1: ValidateSquare; apply the WithMaxOrder guard.
//   - Stage 2: det = Determinant; det == 0 → ErrSingular.
//   - Stage 3: 1×1 → [1/det]; otherwise fill every entry from its cofactor.
//
// Errors:
//   - ErrNonSquare, ErrSingular, ErrOrderTooLarge (all ErrInvalidOperation).
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	if err := m.checkCofactorInput(gatherOptions(opts...)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := cofactorDeterminant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		inv.data[0] = 1 / det

		return inv, nil
	}

	var i, j int
	var value, sub float64
	var minor *Dense
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if minor, err = m.Minor(j, i); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			if sub, err = cofactorDeterminant(minor); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			value = 1 / det * sub
			if (i+j)%2 == 1 {
				value = -value
			}
			inv.data[i*n+j] = value
		}
	}

	return inv, nil
}
