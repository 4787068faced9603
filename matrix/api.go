// SPDX-License-Identifier: MIT
// Package matrix - public constructors and facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices.
//   - Avoid logic duplication: every constructor funnels into newDenseWithPolicy.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Constructors honor the numeric policy resolved from options.
//   - Validation happens before any allocation or write.

package matrix

import "fmt"

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// New builds a zero matrix from options. Without shape options it returns a
// DefaultSize×DefaultSize (4×4) matrix.
// Implementation:
//   - Stage 1: gatherOptions (shape defaults to DefaultSize, policy to defaults).
//   - Stage 2: allocate via the strict constructor.
//
// Errors:
//   - ErrInvalidDimensions when WithShape/WithSize carried a non-positive value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	return newDenseWithPolicy(o.rows, o.cols, o.validateNaNInf)
}

// NewSquare returns a zero n×n matrix.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewFromRows builds a matrix from a literal grid, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and decoded documents.
//
// Implementation:
//   - Stage 1: rows = len(grid), cols = len(grid[0]); all rows must share cols.
//   - Stage 2: enforce the numeric policy on every value before writing.
//   - Stage 3: copy row by row into a fresh buffer (no aliasing with grid).
//
// Errors:
//   - ErrInvalidDimensions (empty grid or empty first row).
//   - ErrDimensionMismatch (ragged grid).
//   - ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	out, err := newDenseWithPolicy(len(grid), len(grid[0]), o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	for i, row := range grid {
		if err = ValidateVecLen(row, out.c); err != nil {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, err)
		}
		if out.validateNaNInf {
			if err = ValidateFinite(row); err != nil {
				return nil, fmt.Errorf("NewFromRows: row %d: %w", i, err)
			}
		}
		copy(out.data[i*out.c:(i+1)*out.c], row)
	}

	return out, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Alias of Identity kept for discoverability next to NewZeros.
func NewIdentity(n int) (*Dense, error) {
	return Identity(n)
}

// Identity returns a freshly allocated n×n identity matrix.
// Determinism: fixed i-loop; single write per diagonal cell.
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// Identity returns the identity matrix of the same order as m.
// It is only applicable to square matrices: ErrNonSquare otherwise.
func (m *Dense) Identity() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Dense.Identity: %w", err)
	}
	id := m.derive(m.r, m.c)
	for i := 0; i < m.r; i++ {
		id.data[i*m.c+i] = 1.0
	}

	return id, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}
