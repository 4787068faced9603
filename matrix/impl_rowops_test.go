package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestSwapRowsIdentity(t *testing.T) {
	m := MustIdentity(t, 3)
	require.NoError(t, m.SwapRows(0, 2))
	RequireEqual(t, MustRows(t, [][]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}), m)

	require.NoError(t, m.SwapRows(1, 1)) // no-op
	RequireEqual(t, MustRows(t, [][]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}), m)
}

func TestRowOpsOutOfRange(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	want := m.Copy()

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.MultiplyRow(2, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRows(0, 9), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddRows(-1, 1), matrix.ErrOutOfRange)
	RequireEqual(t, want, m)
}

// TestMultiplyRowNonSquare checks that exactly one full row is scaled,
// for wide and tall shapes alike.
func TestMultiplyRowNonSquare(t *testing.T) {
	wide := MustRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.NoError(t, wide.MultiplyRow(0, 2))
	RequireEqual(t, MustRows(t, [][]float64{{2, 4, 6, 8}, {5, 6, 7, 8}}), wide)

	tall := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, tall.MultiplyRow(2, -1))
	RequireEqual(t, MustRows(t, [][]float64{{1, 2}, {3, 4}, {-5, -6}}), tall)
}

func TestAddRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	require.NoError(t, m.AddRows(0, 1))
	RequireEqual(t, MustRows(t, [][]float64{{1, 2, 3}, {11, 22, 33}}), m)

	require.NoError(t, m.AddRows(0, 0)) // doubles row 0
	RequireEqual(t, MustRows(t, [][]float64{{2, 4, 6}, {11, 22, 33}}), m)
}

// TestEliminationByRowOps reduces a 2×2 system to the identity with the
// elementary operations only.
func TestEliminationByRowOps(t *testing.T) {
	m := MustRows(t, [][]float64{{0, 2}, {1, 0}})
	require.NoError(t, m.SwapRows(0, 1))
	require.NoError(t, m.MultiplyRow(1, 0.5))
	RequireEqual(t, MustIdentity(t, 2), m)
}
