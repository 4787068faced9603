// SPDX-License-Identifier: MIT

// Package matrix - row/column/bulk accessors on Dense.
//
// Every getter returns a freshly allocated slice (no aliasing with the grid).
// Every setter validates length, indices and numeric policy BEFORE the first
// write, so a failed call leaves the matrix untouched.

package matrix

import "fmt"

// Row returns a copy of row i (length Cols()).
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j (length Rows()).
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with values, element-wise in index order.
// Implementation:
//   - Stage 1: validate i, len(values)==Cols() and the numeric policy.
//   - Stage 2: copy into the row segment of the flat buffer.
//
// Errors:
//   - ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf. Nothing is written on error.
func (m *Dense) SetRow(i int, values []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(values, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if m.validateNaNInf {
		if err := ValidateFinite(values); err != nil {
			return denseErrorf(ctxSetRow, i, 0, err)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)

	return nil
}

// SetColumn overwrites column j with values, element-wise in index order.
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf. Nothing is written on error.
func (m *Dense) SetColumn(j int, values []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetColumn, 0, j, ErrOutOfRange)
	}
	if err := ValidateVecLen(values, m.r); err != nil {
		return denseErrorf(ctxSetColumn, 0, j, err)
	}
	if m.validateNaNInf {
		if err := ValidateFinite(values); err != nil {
			return denseErrorf(ctxSetColumn, 0, j, err)
		}
	}
	for i, v := range values {
		m.data[i*m.c+j] = v
	}

	return nil
}

// SetValues fills the matrix row-major from a flat slice of exactly Size() values.
// Errors: ErrDimensionMismatch, ErrNaNInf. Nothing is written on error.
func (m *Dense) SetValues(flat []float64) error {
	if err := ValidateVecLen(flat, len(m.data)); err != nil {
		return fmt.Errorf("Dense.SetValues: %w", err)
	}
	if m.validateNaNInf {
		if err := ValidateFinite(flat); err != nil {
			return fmt.Errorf("Dense.SetValues: %w", err)
		}
	}
	copy(m.data, flat)

	return nil
}

// SetGrid copies a rows×cols grid element-wise into the matrix.
// MAIN DESCRIPTION:
//   - Bulk 2-D overwrite; the grid must match BOTH dimensions exactly.
//
// Implementation:
//   - Stage 1: len(grid) must equal Rows(); every row must have Cols() values.
//   - Stage 2: numeric policy over the whole grid.
//   - Stage 3: copy row by row.
//
// Errors:
//   - ErrDimensionMismatch when either dimension differs (ragged grids included).
//   - ErrNaNInf under the finite-only policy.
//
// Notes:
//   - A grid matching only one dimension is rejected, never partially copied.
func (m *Dense) SetGrid(grid [][]float64) error {
	if len(grid) != m.r {
		return fmt.Errorf("Dense.SetGrid: rows %d != %d: %w", len(grid), m.r, ErrDimensionMismatch)
	}
	for i, row := range grid {
		if len(row) != m.c {
			return fmt.Errorf("Dense.SetGrid: row %d has %d values, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		if m.validateNaNInf {
			if err := ValidateFinite(row); err != nil {
				return fmt.Errorf("Dense.SetGrid: row %d: %w", i, err)
			}
		}
	}
	for i, row := range grid {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return nil
}

// Values returns a flat row-major copy of all elements.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Grid returns a copy of the matrix as a slice of rows.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clear sets every element to 0.
func (m *Dense) Clear() {
	clear(m.data)
}
