// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// operands loads every positional argument as a matrix.
func (a *app) operands(args []string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(args))
	for _, arg := range args {
		m, err := LoadOperand(arg)
		if err != nil {
			return nil, err
		}
		a.log.Debug("operand loaded", slog.String("operand", arg), slog.Int("rows", m.Rows()), slog.Int("cols", m.Cols()))
		out = append(out, m)
	}

	return out, nil
}

func (a *app) printMatrix(cmd *cobra.Command, m *matrix.Dense) error {
	return Encode(cmd.OutOrStdout(), m, a.cfg.Precision)
}

func (a *app) printScalar(cmd *cobra.Command, v float64) error {
	s := FormatScalar(v, a.cfg.Precision)
	if a.cfg.Locale != "" {
		s = FormatScalarLocale(v, a.cfg.Precision, language.Make(a.cfg.Locale))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)

	return err
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det MATRIX",
		Short: "Determinant (cofactor expansion)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}
			det, err := ms[0].Determinant()
			if err != nil {
				return err
			}

			return a.printScalar(cmd, det)
		},
	}
}

func (a *app) invCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv MATRIX",
		Short: "Inverse (adjugate method)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}
			inv, err := ms[0].Inverse()
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, inv)
		},
	}
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose MATRIX",
		Short: "Transpose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, ms[0].T())
		},
	}
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order %q: %w", args[0], err)
			}
			id, err := matrix.Identity(n)
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, id)
		},
	}
}

// binaryCmd builds add, sub and mul, which share arity and output.
func (a *app) binaryCmd(name, short string) *cobra.Command {
	ops := map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"add": matrix.Add,
		"sub": matrix.Sub,
		"mul": matrix.Mul,
	}
	op := ops[name]

	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}
			res, err := op(ms[0], ms[1])
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale ALPHA MATRIX",
		Short: "Scalar multiple alpha·M",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("scalar %q: %w", args[0], err)
			}
			ms, err := a.operands(args[1:])
			if err != nil {
				return err
			}
			res, err := matrix.Scale(alpha, ms[0])
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, res)
		},
	}
}

func (a *app) minorCmd() *cobra.Command {
	var rows, cols []int
	c := &cobra.Command{
		Use:   "minor MATRIX",
		Short: "Submatrix without the given (ascending) rows and columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}
			var opts []matrix.Option
			if a.cfg.Trace {
				opts = append(opts, matrix.WithTrace(func(row, col int, v float64) {
					a.log.Info("copy", slog.Int("row", row), slog.Int("col", col), slog.Float64("value", v))
				}))
			}
			sub, err := matrix.SubMatrix(ms[0], rows, cols, opts...)
			if err != nil {
				return err
			}

			return a.printMatrix(cmd, sub)
		},
	}
	c.Flags().IntSliceVar(&rows, "rows", nil, "rows to remove, ascending")
	c.Flags().IntSliceVar(&cols, "cols", nil, "columns to remove, ascending")

	return c
}

func (a *app) equalCmd() *cobra.Command {
	var approx bool
	c := &cobra.Command{
		Use:   "equal A B",
		Short: "Exact (or --approx) structural equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.operands(args)
			if err != nil {
				return err
			}
			var eq bool
			if approx {
				eq, err = matrix.ApproxEqual(ms[0], ms[1], matrix.WithEpsilon(a.cfg.Epsilon))
			} else {
				eq, err = ms[0].Equal(ms[1])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)

			return err
		},
	}
	c.Flags().BoolVar(&approx, "approx", false, "compare within the configured epsilon")

	return c
}
