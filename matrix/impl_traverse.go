// SPDX-License-Identifier: MIT

// Package matrix - iteration and search utilities.
//
// All traversals are row-major (row 0 left to right, then row 1, ...) and
// deterministic. All() / Cells() are lazy, restartable sequences; the search
// helpers are built on top of them and stop at the first decisive element.

package matrix

import "iter"

// All returns a lazy sequence of every element in row-major order.
// The sequence may be ranged over any number of times; each range observes
// the matrix contents at the moment the element is reached.
func (m *Dense) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells returns a lazy sequence of (Cell, value) pairs in row-major order.
func (m *Dense) Cells() iter.Seq2[Cell, float64] {
	return func(yield func(Cell, float64) bool) {
		for idx, v := range m.data {
			if !yield(Cell{Row: idx / m.c, Col: idx % m.c}, v) {
				return
			}
		}
	}
}

// ForEach invokes action once per element in row-major order.
func (m *Dense) ForEach(action func(v float64)) {
	for _, v := range m.data {
		action(v)
	}
}

// Exists reports whether any element satisfies pred. A nil matrix has none.
// Stops at the first match.
func Exists(m *Dense, pred Predicate) bool {
	if m == nil {
		return false
	}
	for v := range m.All() {
		if pred(v) {
			return true
		}
	}

	return false
}

// TrueForAll reports whether every element satisfies pred.
// Stops at the first failure.
func TrueForAll(m *Dense, pred Predicate) bool {
	if m == nil {
		return true
	}
	for v := range m.All() {
		if !pred(v) {
			return false
		}
	}

	return true
}

// Find returns the first element (row-major) that satisfies pred.
// ok is false when no element matches.
func Find(m *Dense, pred Predicate) (v float64, ok bool) {
	if m == nil {
		return 0, false
	}
	for x := range m.All() {
		if pred(x) {
			return x, true
		}
	}

	return 0, false
}

// FindAll returns every element satisfying pred, in row-major order, as a
// newly allocated slice (empty, never nil, when nothing matches).
func FindAll(m *Dense, pred Predicate) []float64 {
	out := make([]float64, 0)
	if m == nil {
		return out
	}
	for v := range m.All() {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// IndexOf returns the position of the first element exactly equal to value.
// ok is false when value is absent. NaN never matches.
func IndexOf(m *Dense, value float64) (c Cell, ok bool) {
	if m == nil {
		return Cell{}, false
	}
	for cell, v := range m.Cells() {
		if v == value {
			return cell, true
		}
	}

	return Cell{}, false
}
