// SPDX-License-Identifier: MIT

// Package matrix - structural equality, hashing and tolerance comparison.
//
// Equal is exact: same shape and every element numerically equal (==).
// ApproxEqual is the separate, tolerance-based comparison; it never changes
// what Equal or IsSingular report.

package matrix

import (
	"fmt"
	"math"
)

// Equal reports structural equality with other.
// MAIN DESCRIPTION:
//   - other may be any Matrix implementation (including *Dense).
//   - Comparing against a value that is not a matrix is a contract violation
//     and returns ErrTypeMismatch instead of a silent false.
//
// Implementation:
//   - Stage 1: type switch on other; nil operands report ErrNilMatrix.
//   - Stage 2: shape check (different shape => false, nil).
//   - Stage 3: element-wise == in row-major order; first difference => false.
//
// Errors:
//   - ErrNilMatrix (nil receiver or nil other), ErrTypeMismatch (not a Matrix).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense, O(r*c) for foreign Matrix values.
//
// Notes:
//   - NaN != NaN, so a matrix holding NaN is not equal to itself.
func (m *Dense) Equal(other any) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("Dense.Equal: %w", ErrNilMatrix)
	}
	if other == nil {
		return false, fmt.Errorf("Dense.Equal: %w", ErrNilMatrix)
	}
	om, ok := other.(Matrix)
	if !ok {
		return false, fmt.Errorf("Dense.Equal: %T: %w", other, ErrTypeMismatch)
	}
	od, err := asDense(om)
	if err != nil {
		return false, fmt.Errorf("Dense.Equal: %w", err)
	}
	if od.r != m.r || od.c != m.c {
		return false, nil
	}
	for idx, v := range m.data {
		if v != od.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// Hash returns the sum of all elements truncated toward zero.
// Equal matrices always hash alike; unequal matrices may collide.
// A NaN or infinite sum hashes to 0; a finite sum outside the int range
// saturates at math.MaxInt / math.MinInt.
// Complexity: O(r*c).
func (m *Dense) Hash() int {
	sum := ZeroSum
	for _, v := range m.data {
		sum += v
	}
	switch {
	case math.IsNaN(sum) || math.IsInf(sum, 0):
		return 0
	case sum >= float64(math.MaxInt): // float64(MaxInt) rounds up to the first overflowing value
		return math.MaxInt
	case sum <= float64(math.MinInt):
		return math.MinInt
	}

	return int(sum)
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ eps + eps·|b| (eps from WithEpsilon, default
// DefaultEpsilon).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on first violation.
func ApproxEqual(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	eps := gatherOptions(opts...).eps
	for idx, av := range da.data {
		bv := db.data[idx]
		if !(math.Abs(av-bv) <= eps+eps*math.Abs(bv)) { // NaN never compares close
			return false, nil
		}
	}

	return true, nil
}
