// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the Dense implementation, the free
// operations and the traversal utilities. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// The free operations (Add, Sub, Mul, Scale, Transpose, ApproxEqual) accept
// any implementation; *Dense operands take a flat-slice fast path.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Cell addresses one element of a matrix by zero-based row and column.
type Cell struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Predicate reports whether a single element satisfies a condition.
// Used by Exists, TrueForAll, Find and FindAll.
type Predicate func(v float64) bool

// TraceFunc observes every element SubMatrix copies into its result.
// row and col are coordinates in the result matrix; v is the copied value.
type TraceFunc func(row, col int, v float64)
