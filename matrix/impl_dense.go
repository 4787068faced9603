// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a fixed-shape row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Copy: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // Dense.Row
	ctxColumn    = "Column"    // Dense.Column
	ctxSetRow    = "SetRow"    // Dense.SetRow
	ctxSetColumn = "SetColumn" // Dense.SetColumn
	ctxSwapRows  = "SwapRows"  // Dense.SwapRows
	ctxMulRow    = "MultiplyRow"
	ctxAddRows   = "AddRows"
)

// ---------- Formatting literals ----------

const (
	_fmtSep    = ", " // between values of one row
	_fmtRowSep = "\n" // between rows; never after the last one
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
//
// A *Dense is not safe for concurrent mutation; concurrent reads of an
// instance nobody writes to need no coordination.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
}

// newDenseWithPolicy is the single allocation point: every derived matrix
// goes through here so the numeric policy of its source is preserved.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validateNaNInf,
	}, nil
}

// derive allocates a zero matrix of the given shape that inherits m's policy.
// Shapes passed here are always derived from an existing positive shape.
func (m *Dense) derive(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns rows*cols.
func (m *Dense) Size() int { return m.r * m.c }

// IsSquare reports whether rows == cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns a bare ErrOutOfRange; public methods wrap it with their own context.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkFinite enforces the instance numeric policy for a single value.
func (m *Dense) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// ensureFinite applies the numeric policy to a freshly computed result, so
// overflow in a kernel (Inf, or NaN from Inf-Inf) is reported instead of stored.
// Complexity: O(r*c) when the policy is on, O(1) otherwise.
func (m *Dense) ensureFinite() error {
	if !m.validateNaNInf {
		return nil
	}

	return ValidateFinite(m.data)
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
// Use Copy when the concrete *Dense is wanted.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns an independent *Dense with identical shape, data and policy.
// Mutations of either side never affect the other.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	out := m.derive(m.r, m.c)
	copy(out.data, m.data)

	return out
}

// String renders values comma-separated within a row and rows separated by
// newlines; there is no trailing separator after the last value or row.
// Values use the shortest representation that round-trips ('g', -1).
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy built
// through the interface (the generic fallback path).
// Errors: ErrNilMatrix; At errors from the foreign implementation.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
