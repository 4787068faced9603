// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// errEmptyOperand is returned for an inline literal with no values.
var errEmptyOperand = errors.New("matcalc: empty matrix literal")

// Document is the YAML form of a matrix. The library mandates no format;
// this codec is built on Grid/NewFromRows.
type Document struct {
	Rows [][]float64 `yaml:"rows,flow"`
}

// Decode reads one YAML Document from r.
func Decode(r io.Reader) (*matrix.Dense, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	m, err := matrix.NewFromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return m, nil
}

// Encode writes m as a YAML Document, rounding to precision decimals
// unless precision is ShortestPrecision.
func Encode(w io.Writer, m *matrix.Dense, precision int) error {
	doc := Document{Rows: m.Grid()}
	for _, row := range doc.Rows {
		for j, v := range row {
			row[j] = round(v, precision)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode matrix: %w", err)
	}

	return enc.Close()
}

// ParseInline parses "1,2;3,4" (values by comma, rows by semicolon).
func ParseInline(s string) (*matrix.Dense, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyOperand
	}
	lines := strings.Split(s, ";")
	grid := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("parse matrix literal at [%d,%d]: %w", i, j, err)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		return nil, fmt.Errorf("parse matrix literal: %w", err)
	}

	return m, nil
}

// LoadOperand resolves an operand: "@path" reads a YAML file, anything else
// is an inline literal.
func LoadOperand(operand string) (*matrix.Dense, error) {
	path, isFile := strings.CutPrefix(operand, "@")
	if !isFile {
		return ParseInline(operand)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load operand: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// FormatScalar renders v with the configured precision.
func FormatScalar(v float64, precision int) string {
	if precision == ShortestPrecision {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatScalarLocale renders v with the decimal and grouping separators of tag.
// Matrix output stays locale-neutral so it can be decoded again.
func FormatScalarLocale(v float64, precision int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	if precision == ShortestPrecision {
		return p.Sprint(v)
	}

	return p.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

func round(v float64, precision int) float64 {
	if precision == ShortestPrecision {
		return v
	}
	p := math.Pow10(precision)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // drop the sign of -0
	}

	return r
}
