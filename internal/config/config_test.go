package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ewk/errors"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Log:    LogConfig{Level: "warn", Format: LogConsole},
		Output: OutputTable,
	}, cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("EWK_LOG_LEVEL", "DEBUG")
	t.Setenv("EWK_OUTPUT", "json")

	cfg, err := Load(newViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ewk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\noutput: yaml\n"), 0o600))

	cfg, err := Load(newViper(), path)
	require.NoError(t, err)

	assert.Equal(t, LogJSON, cfg.Log.Format)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(newViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestValidate(t *testing.T) {
	valid := Config{Log: LogConfig{Level: "info", Format: LogConsole}, Output: OutputTable}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad output", func(c *Config) { c.Output = "csv" }, "output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}

			var structured errors.Error
			require.True(t, errors.As(err, &structured))
			assert.Equal(t, errors.CodeInvalidConfig, structured.Code())
			assert.Equal(t, tt.wantKey, structured.Context()["key"])
		})
	}
}
