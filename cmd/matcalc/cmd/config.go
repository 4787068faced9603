// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ShortestPrecision prints every float with the shortest round-trip form.
const ShortestPrecision = -1

// errInvalidConfig marks a config file that decoded but holds unusable values.
var errInvalidConfig = errors.New("matcalc: invalid config")

// Config is the optional TOML configuration (--config). Flags override it.
//
//	precision = 4      # decimals in output, -1 = shortest round-trip form
//	epsilon   = 1e-9   # tolerance for "equal --approx"
//	trace     = false  # log every element copied by "minor"
//	locale    = "de"   # BCP 47 tag for scalar output, empty = plain
type Config struct {
	Precision int     `toml:"precision"`
	Epsilon   float64 `toml:"epsilon"`
	Trace     bool    `toml:"trace"`
	Locale    string  `toml:"locale"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Precision: ShortestPrecision,
		Epsilon:   matrix.DefaultEpsilon,
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the library would refuse (or panic on).
func (c Config) Validate() error {
	if c.Precision < ShortestPrecision {
		return fmt.Errorf("precision %d: %w", c.Precision, errInvalidConfig)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon %g: %w", c.Epsilon, errInvalidConfig)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("locale %q: %v: %w", c.Locale, err, errInvalidConfig)
		}
	}

	return nil
}
