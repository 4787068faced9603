// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the resolved configuration and logger for one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	precision int
	locale    string

	cfg Config
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree. Tests build their own so no state
// leaks between runs.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Dense matrix calculator",
		Long: `matcalc evaluates small dense-matrix operations.

Operands are inline literals ("1,2;3,4") or YAML files given as @path
containing "rows: [[1, 2], [3, 4]]". Matrix results are printed as YAML,
scalars as plain numbers.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().IntVar(&a.precision, "precision", ShortestPrecision, "output decimals (-1 = shortest)")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "BCP 47 tag for scalar output (e.g. de, fr-CH)")

	root.AddCommand(
		a.detCmd(),
		a.invCmd(),
		a.transposeCmd(),
		a.identityCmd(),
		a.binaryCmd("add", "A + B"),
		a.binaryCmd("sub", "A - B"),
		a.binaryCmd("mul", "A × B"),
		a.scaleCmd(),
		a.minorCmd(),
		a.equalCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = a.precision
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = a.locale
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	a.cfg = cfg
	a.log.Debug("configuration resolved",
		slog.String("config", a.cfgFile),
		slog.Int("precision", cfg.Precision),
		slog.Float64("epsilon", cfg.Epsilon),
		slog.Bool("trace", cfg.Trace),
		slog.String("locale", cfg.Locale))

	return nil
}
