// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, ShortestPrecision, cfg.Precision)
	require.Equal(t, matrix.DefaultEpsilon, cfg.Epsilon)
	require.False(t, cfg.Trace)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "matcalc.toml", "precision = 3\ntrace = true\nlocale = \"de\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Precision)
	require.True(t, cfg.Trace)
	require.Equal(t, "de", cfg.Locale)
	require.Equal(t, matrix.DefaultEpsilon, cfg.Epsilon) // untouched keys keep defaults
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative epsilon", "epsilon = -1.0\n"},
		{"precision below shortest", "precision = -2\n"},
		{"nan epsilon", "epsilon = nan\n"},
		{"malformed locale", "locale = \"no such tag!\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "bad.toml", tc.body))
			require.ErrorIs(t, err, errInvalidConfig)
		})
	}

	_, err := LoadConfig(writeFile(t, "broken.toml", "precision = \n"))
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
