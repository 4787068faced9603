// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// tol is the tolerance used where floating-point round-off is expected
// (inverse products, gonum cross-checks).
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a *Dense from a literal grid or fails the test.
// Prefer for small exact-equality tests with integer-valued fixtures.
func MustRows(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	require.NoError(t, err, "NewFromRows(%v)", grid)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Deterministic per seed; use identical seeds to compare paths.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	require.NoError(t, m.SetValues(vals))

	return m
}

// RequireEqual ASSERTS exact structural equality (same shape, == per element).
func RequireEqual(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	if diff := cmp.Diff(want.Grid(), got.Grid()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RequireClose ASSERTS same shape and element-wise closeness within tol.
// Reports every differing element via cmp.Diff instead of only the first.
func RequireClose(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	if diff := cmp.Diff(want.Grid(), got.Grid(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix not close (-want +got):\n%s", diff)
	}
}
