// Package config holds the ewkerror command configuration.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/jmgilman/go/ewk/errors"
)

// EnvPrefix is prepended to every environment variable, e.g. EWK_LOG_LEVEL.
const EnvPrefix = "EWK"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config is the resolved command configuration.
type Config struct {
	Log    LogConfig `mapstructure:"log"`
	Output string    `mapstructure:"output"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// SetDefaults registers default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", LogConsole)
	v.SetDefault("output", OutputTable)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads an optional config file, then unmarshals and validates v.
// An empty path skips the file.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"),
				"path", path,
			)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode config")
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its accepted values.
func (c Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown log level %q", c.Log.Level),
			"key", "log.level",
		)
	}

	switch c.Log.Format {
	case LogConsole, LogJSON:
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown log format %q", c.Log.Format),
			"key", "log.format",
		)
	}

	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown output format %q", c.Output),
			"key", "output",
		)
	}

	return nil
}
