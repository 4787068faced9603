// SPDX-License-Identifier: MIT

// Package gonumx bridges matrix.Dense and gonum's mat package.
//
// View exposes a *matrix.Dense through gonum's mat.Matrix interface without
// copying, so gonum routines (mat.Det, mat.Dense.Inverse, mat.Formatted, ...)
// can read it directly. ToGonum and FromGonum copy in either direction.
//
// gonum signals bad indices by panicking; View follows that convention,
// while the conversions return errors like the rest of this module.
package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// View adapts a *matrix.Dense to mat.Matrix (read-only, shared storage).
type View struct {
	m *matrix.Dense
}

var _ mat.Matrix = View{}

// NewView wraps m. Writes made to m later are visible through the view.
func NewView(m *matrix.Dense) View { return View{m: m} }

// Dims returns the dimensions of the wrapped matrix.
func (v View) Dims() (r, c int) { return v.m.Shape() }

// At returns the element at (i, j). Panics with mat.ErrIndexOutOfRange on
// invalid indices, as mat.Matrix implementations do.
func (v View) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns the implicit transpose of the view.
func (v View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumx.ToGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Values()), nil
}

// FromGonum copies any mat.Matrix into a new *matrix.Dense.
// Non-finite values are rejected under the default numeric policy unless
// opts disable it (matrix.WithNoValidateNaNInf).
func FromGonum(a mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("gonumx.FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := matrix.New(append([]matrix.Option{matrix.WithShape(r, c)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gonumx.FromGonum: %w", err)
	}
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat = append(flat, a.At(i, j))
		}
	}
	if err = out.SetValues(flat); err != nil {
		return nil, fmt.Errorf("gonumx.FromGonum: %w", err)
	}

	return out, nil
}

// Det computes the determinant with gonum's LU-based mat.Det. It is a
// reference for cross-checking matrix.Dense.Determinant on larger orders,
// where cofactor expansion is slow.
func Det(m *matrix.Dense) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("gonumx.Det: %w", matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return 0, fmt.Errorf("gonumx.Det: %w", matrix.ErrNonSquare)
	}

	return mat.Det(NewView(m)), nil
}
