// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestParseInline(t *testing.T) {
	m, err := ParseInline(" 1, 2 ; 3,4 ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Grid())

	m, err = ParseInline("5")
	require.NoError(t, err)
	require.Equal(t, 1, m.Size())

	_, err = ParseInline("   ")
	require.ErrorIs(t, err, errEmptyOperand)

	_, err = ParseInline("1,x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[0,1]")

	_, err = ParseInline("1,2;3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ParseInline("1,NaN")
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEncodeDecode(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, -0.5}, {1e-3, 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, ShortestPrecision))
	require.True(t, strings.HasPrefix(buf.String(), "rows: [["), buf.String())

	back, err := Decode(&buf)
	require.NoError(t, err)
	ok, err := back.Equal(m)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEncodeRounds(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1.23456, -0.0001}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m, 2))
	back, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.23, 0}}, back.Grid())

	v, err := back.At(0, 1)
	require.NoError(t, err)
	require.False(t, math.Signbit(v))
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode(strings.NewReader("rows: [[1, 2], [3]]\n"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = Decode(strings.NewReader("rows: {a: 1}\n"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("other: 1\n"))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLoadOperand(t *testing.T) {
	path := writeFile(t, "a.yaml", "rows: [[2, 0], [0, 2]]\n")
	m, err := LoadOperand("@" + path)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 2}}, m.Grid())

	m, err = LoadOperand("7,8")
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8}, m.Values())

	_, err = LoadOperand("@" + filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "load operand")
}

func TestFormatScalar(t *testing.T) {
	require.Equal(t, "-2", FormatScalar(-2, ShortestPrecision))
	require.Equal(t, "0.333", FormatScalar(1.0/3, 3))
	require.Equal(t, "1e+21", FormatScalar(1e21, ShortestPrecision))
}

func TestFormatScalarLocale(t *testing.T) {
	require.Equal(t, "0,25", FormatScalarLocale(0.25, 2, language.German))
	require.Equal(t, "0.25", FormatScalarLocale(0.25, 2, language.English))
}
