// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and element mapping. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical arithmetic kernels used across the package.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Operands that are not *Dense are materialized once via asDense and then
//     take the same flat-slice kernel; results are always fresh *Dense values.
//   - Inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMap         = "Map"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSubMatrix   = "SubMatrix"
	opMinor       = "Minor"
	opApproxEqual = "ApproxEqual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); materialize non-Dense operands.
//   - Stage 2: single flat loop 0..n-1 into a fresh result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//   - ErrNaNInf when a sum overflows under the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := da.derive(da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}
	if err = res.ensureFinite(); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch), ErrNaNInf (overflow).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch), ErrNaNInf (overflow).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped
//     while both operands are finite-only (with NaN/Inf allowed, 0·Inf must
//     still yield NaN).
//   - Stage 3: numeric policy over the result.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c), C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - ErrNaNInf when a dot product overflows under the finite-only policy.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := da.derive(aRows, bCols)
	skipZero := da.validateNaNInf && db.validateNaNInf
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 && skipZero {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}
	if err = res.ensureFinite(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns a new c×r matrix with result[i,j] = m[j,i].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return d.T(), nil
}

// T returns the transposed copy of m (the receiver is untouched).
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	res := m.derive(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Scale returns alpha·m as a fresh matrix (scalar on the left).
// Scalar multiplication is commutative: Scale(alpha, m) equals m.Scaled(alpha).
// Errors: ErrNilMatrix; ErrNaNInf when a product overflows under the
// finite-only policy (with WithNoValidateNaNInf it always succeeds).
// Complexity: O(r*c).
func Scale(alpha float64, m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return d.Scaled(alpha)
}

// Scaled returns m·alpha as a fresh matrix (scalar on the right).
// Errors: ErrNaNInf, as for Scale.
func (m *Dense) Scaled(alpha float64) (*Dense, error) {
	res := m.derive(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}
	if err := res.ensureFinite(); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Map returns a same-shape matrix whose every element is f(original element).
// MAIN DESCRIPTION:
//   - Pure transformation into a new matrix; m is left untouched.
//
// Implementation:
//   - Stage 1: allocate the result with m's policy.
//   - Stage 2: row-major walk; enforce the numeric policy on each produced value.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value under the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(v float64) float64) (*Dense, error) {
	res := m.derive(m.r, m.c)
	var nv float64
	for idx, v := range m.data {
		nv = f(v)
		if err := res.checkFinite(nv); err != nil {
			return nil, matrixErrorf(opMap, denseErrorf(ctxSet, idx/m.c, idx%m.c, err))
		}
		res.data[idx] = nv
	}

	return res, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare.
// Complexity: O(n).
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
