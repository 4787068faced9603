package gonumx_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/matrix/gonumx"
)

const tol = 1e-9

func randDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*2 - 1
		}
		grid[i][i] += float64(n) // diagonally dominant keeps it invertible
	}
	m, err := matrix.NewFromRows(grid)
	require.NoError(t, err)

	return m
}

// TestDeterminantAgainstLU cross-checks cofactor expansion with gonum's LU.
func TestDeterminantAgainstLU(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a := randDense(t, n, int64(100+n))
		want, err := gonumx.Det(a)
		require.NoError(t, err)
		got, err := a.Determinant()
		require.NoError(t, err)
		require.InDelta(t, want, got, tol*math.Max(1, math.Abs(want)), "n=%d", n)
	}
}

// TestInverseAgainstGonum compares the adjugate inverse with mat.Dense.Inverse.
func TestInverseAgainstGonum(t *testing.T) {
	for n := 1; n <= 5; n++ {
		a := randDense(t, n, int64(7*n))
		var want mat.Dense
		require.NoError(t, want.Inverse(gonumx.NewView(a)))

		got, err := a.Inverse()
		require.NoError(t, err)
		g, err := gonumx.ToGonum(got)
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(&want, g, tol), "n=%d\nwant %v\ngot  %v", n,
			mat.Formatted(&want), mat.Formatted(g))
	}
}

func TestRoundTrip(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	g, err := gonumx.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// ToGonum copies.
	require.NoError(t, a.Set(0, 0, 42))
	require.Equal(t, 1.0, g.At(0, 0))

	back, err := gonumx.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, back.Grid())
}

func TestViewSharesStorage(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	v := gonumx.NewView(a)

	r, c := v.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	require.NoError(t, a.Set(2, 1, 60))
	require.Equal(t, 60.0, v.At(2, 1))

	tr := v.T()
	r, c = tr.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 60.0, tr.At(1, 2))

	want, err := gonumx.FromGonum(tr)
	require.NoError(t, err)
	ok, err := want.Equal(a.T())
	require.NoError(t, err)
	require.True(t, ok)

	require.PanicsWithValue(t, mat.ErrIndexOutOfRange, func() { v.At(3, 0) })
}

func TestErrors(t *testing.T) {
	_, err := gonumx.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = gonumx.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = gonumx.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = gonumx.Det(wide)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	nan := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = gonumx.FromGonum(nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := gonumx.FromGonum(nan, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := loose.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}
