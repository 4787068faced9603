// Package matrix provides a small, self-contained dense matrix value type.
//
// The matrix package provides:
//
//   - Dense: a fixed-shape, row-major float64 grid with bounds-checked
//     accessors (At/Set, Row/Column, SetRow/SetColumn, SetValues/SetGrid).
//   - Arithmetic: Add, Sub, Scale (scalar on either side), Mul, Transpose.
//   - Elementary row operations: SwapRows, MultiplyRow, AddRows.
//   - Derived values: Identity, SubMatrix, Minor/Cofactor, Determinant
//     (cofactor expansion), Inverse (adjugate method), Trace.
//   - Traversal: All/Cells iterators, ForEach, Exists, TrueForAll, Find,
//     FindAll, IndexOf.
//   - Exact structural Equal plus a separate tolerance-based ApproxEqual.
//
// Matrices are meant to be small (transform math, teaching). Determinant and
// Inverse cost grows factorially with the order and no pivoting is done;
// singularity is an exact det == 0 test.
//
// Every derived matrix is a fresh allocation: no result ever aliases its
// source. A single *Dense must not be mutated from several goroutines
// without external synchronization.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ErrTypeMismatch, ...) wrapped with call-site
// context; match them with errors.Is.
package matrix
