// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in place).
//
// These are the building blocks of elimination-style algorithms. All of them
// validate every row index first and fail with ErrOutOfRange before touching
// the buffer.

package matrix

// validRow reports whether i addresses an existing row.
func (m *Dense) validRow(i int) bool { return i >= 0 && i < m.r }

// SwapRows exchanges the contents of rows r1 and r2.
// Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange if either index is invalid.
// Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) error {
	if !m.validRow(r1) || !m.validRow(r2) {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}
	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// MultiplyRow scales every element of row i by scalar.
// MAIN DESCRIPTION:
//   - Elementary "scale row" operation, in place.
//
// Implementation:
//   - Stage 1: validate i.
//   - Stage 2: walk the Cols() elements of the row segment.
//
// Errors:
//   - ErrOutOfRange if i is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
//
// Notes:
//   - Exactly Cols() elements are scaled regardless of the row count, so
//     non-square matrices behave like square ones.
func (m *Dense) MultiplyRow(i int, scalar float64) error {
	if !m.validRow(i) {
		return denseErrorf(ctxMulRow, i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= scalar
	}

	return nil
}

// AddRows adds row from into row to, column by column (to += from).
// from == to doubles the row.
// Errors: ErrOutOfRange if either index is invalid.
// Complexity: O(c).
func (m *Dense) AddRows(from, to int) error {
	if !m.validRow(from) || !m.validRow(to) {
		return denseErrorf(ctxAddRows, from, to, ErrOutOfRange)
	}
	src := m.data[from*m.c : (from+1)*m.c]
	dst := m.data[to*m.c : (to+1)*m.c]
	for j := range dst {
		dst[j] += src[j]
	}

	return nil
}
