package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExcludeCursor exercises the single-cursor scan directly, including
// removal of the first and last index on each axis.
func TestExcludeCursor(t *testing.T) {
	d, err := NewDense(4, 4)
	require.NoError(t, err)
	for i := range d.data {
		d.data[i] = float64(i)
	}

	res := exclude(d, []int{0, 3}, []int{0, 3}, nil)
	require.Equal(t, 2, res.r)
	require.Equal(t, 2, res.c)
	require.Equal(t, []float64{5, 6, 9, 10}, res.data)

	res = minorMatrix(d, 2, 1)
	require.Equal(t, []float64{0, 2, 3, 4, 6, 7, 12, 14, 15}, res.data)
}

func TestCofactorSign(t *testing.T) {
	want := [][]float64{
		{1, -1, 1, -1},
		{-1, 1, -1, 1},
		{1, -1, 1, -1},
		{-1, 1, -1, 1},
	}
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], cofactorSign(i, j), "sign(%d,%d)", i, j)
		}
	}
}

func TestDerivedKeepsPolicy(t *testing.T) {
	d, err := newDenseWithPolicy(3, 3, false)
	require.NoError(t, err)
	require.False(t, d.T().validateNaNInf)
	scaled, err := d.Scaled(2)
	require.NoError(t, err)
	require.False(t, scaled.validateNaNInf)
	require.False(t, exclude(d, []int{0}, nil, nil).validateNaNInf)
}
