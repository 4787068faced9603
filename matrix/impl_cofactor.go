// SPDX-License-Identifier: MIT

// Package matrix - submatrix extraction, cofactor expansion and adjugate inverse.
//
// Purpose:
//   - SubMatrix: copy a matrix with some rows and columns excluded.
//   - Determinant: recursive Laplace (cofactor) expansion along the first row.
//   - Inverse: adjugate (transposed cofactor matrix) scaled by 1/det.
//
// Numeric contract:
//   - No pivoting, no tolerance. IsSingular and Inverse test det == 0 exactly,
//     so a near-singular matrix yields a finite inverse with large, unreliable
//     entries. Callers that care must check conditioning themselves.
//   - Cost grows factorially with the order; intended for small matrices
//     (transform math, teaching), not for numerical workloads.

package matrix

// ZeroDeterminant is the exact value that marks a matrix as singular.
const ZeroDeterminant = 0.0

// SubMatrix returns a new matrix equal to m without the listed rows and columns.
// MAIN DESCRIPTION:
//   - General exclusion used by minors and cofactors, exposed for callers.
//
// Implementation:
//   - Stage 1: validate both removal lists (in range, strictly increasing) and
//     that at least one row and one column survive.
//   - Stage 2: single pass with one moving cursor per axis (see exclude).
//   - Stage 3: report every copied value to the WithTrace hook, if installed.
//
// Inputs:
//   - m: source matrix (not modified).
//   - rowsOut, colsOut: ascending removal lists; either may be empty.
//   - opts: WithTrace installs the per-element diagnostic hook.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrIndexOrder, ErrInvalidDimensions
//     (everything removed along an axis).
//
// Complexity:
//   - Time O(r*c), Space O(r'*c').
func SubMatrix(m Matrix, rowsOut, colsOut []int, opts ...Option) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err = validateRemovalList("row", rowsOut, d.r); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err = validateRemovalList("column", colsOut, d.c); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if len(rowsOut) == d.r || len(colsOut) == d.c {
		return nil, matrixErrorf(opSubMatrix, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return exclude(d, rowsOut, colsOut, o.trace), nil
}

// exclude copies d without the given rows/columns.
// Each removal list is consumed by a single cursor that only moves forward,
// which is why the lists must be strictly increasing. Callers validate.
func exclude(d *Dense, rowsOut, colsOut []int, trace TraceFunc) *Dense {
	res := d.derive(d.r-len(rowsOut), d.c-len(colsOut))
	var (
		i, j, ri, ci, dst int
		v                 float64
	)
	for i = 0; i < d.r; i++ {
		if ri < len(rowsOut) && rowsOut[ri] == i {
			ri++
			continue
		}
		ci = 0
		for j = 0; j < d.c; j++ {
			if ci < len(colsOut) && colsOut[ci] == j {
				ci++
				continue
			}
			v = d.data[i*d.c+j]
			res.data[dst] = v
			if trace != nil {
				trace(dst/res.c, dst%res.c, v)
			}
			dst++
		}
	}

	return res
}

// minorMatrix is exclude for exactly one row and one column.
func minorMatrix(d *Dense, row, col int) *Dense {
	return exclude(d, []int{row}, []int{col}, nil)
}

// Determinant returns det(m) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: recursive expansion (see determinant).
//
// Errors:
//   - ErrNonSquare: the determinant is not defined.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level, depth n.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(m), nil
}

// determinant assumes d is square.
// Base cases: 1×1 returns the element, 2×2 returns ad - bc. Otherwise for
// each column i of row 0 the minor M(0,i) is expanded recursively and the
// terms d[0,i]·M(0,i) are accumulated with alternating sign (+ for even i).
// Zero weights skip their minor only under the finite-only policy; when
// NaN/Inf are allowed every term is evaluated so 0·Inf propagates as NaN.
func determinant(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det := ZeroDeterminant
	var term float64
	for i := 0; i < d.c; i++ {
		if d.data[i] == 0 && d.validateNaNInf {
			continue // finite zero weight: the minor cannot contribute
		}
		term = d.data[i] * determinant(minorMatrix(d, 0, i))
		if i%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// Minor returns the determinant of m with row i and column j removed.
// Errors: ErrNonSquare, ErrOutOfRange, ErrInvalidDimensions (1×1 has no minors).
func (m *Dense) Minor(i, j int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if _, err := m.indexOf(i, j); err != nil {
		return 0, matrixErrorf(opMinor, denseErrorf(opMinor, i, j, err))
	}
	if m.r == 1 {
		return 0, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return determinant(minorMatrix(m, i, j)), nil
}

// Cofactor returns (-1)^(i+j)·Minor(i, j).
func (m *Dense) Cofactor(i, j int) (float64, error) {
	minor, err := m.Minor(i, j)
	if err != nil {
		return 0, err
	}

	return cofactorSign(i, j) * minor, nil
}

// cofactorSign is the checkerboard sign (-1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 != 0 {
		return -1
	}

	return 1
}

// IsSingular reports whether det(m) is exactly zero.
// No tolerance is applied: 1e-300 is NOT singular.
// Errors: ErrNonSquare.
func (m *Dense) IsSingular() (bool, error) {
	det, err := m.Determinant()
	if err != nil {
		return false, err
	}

	return det == ZeroDeterminant, nil
}

// Inverse returns m⁻¹ computed with the adjugate (classical cofactor) method.
// MAIN DESCRIPTION:
//   - Closed forms for orders 1 and 2; cofactor matrix for larger orders.
//
// Implementation:
//   - Stage 1: ValidateSquare; compute det, fail with ErrSingular when det == 0.
//   - Stage 2 (n==1): [[1/a]].
//   - Stage 2 (n==2): [[d, -b], [-c, a]] / det.
//   - Stage 2 (n>2): C[i,j] = (-1)^(i+j)·det(minor(i,j)); adj = Cᵀ; inv = adj / det.
//   - Stage 3: numeric policy over the result.
//
// Errors:
//   - ErrNonSquare, ErrSingular.
//   - ErrNaNInf when an entry overflows (tiny det) under the finite-only policy.
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
//
// Notes:
//   - Every entry is divided by det rather than multiplied by 1/det: for a
//     tiny det, 1/det alone overflows and turns exact zeros into 0·Inf = NaN.
//   - Singularity is tested by exact comparison only; see package notes.
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := determinant(m)
	if det == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	res := m.derive(n, n)
	switch n {
	case 1:
		res.data[0] = 1 / det
	case 2:
		res.data[0] = m.data[3] / det
		res.data[1] = -m.data[1] / det
		res.data[2] = -m.data[2] / det
		res.data[3] = m.data[0] / det
	default:
		// Write each cofactor C[i,j] straight into its transposed slot [j,i]:
		// that is the adjugate, already scaled.
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				res.data[j*n+i] = cofactorSign(i, j) * determinant(minorMatrix(m, i, j)) / det
			}
		}
	}
	if err := res.ensureFinite(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// Inverse is the free-function form of (*Dense).Inverse for any Matrix.
func Inverse(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.Inverse()
}

// Determinant is the free-function form of (*Dense).Determinant for any Matrix.
func Determinant(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return d.Determinant()
}
