// Package logging builds the zap logger used by the ewkerror command.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmgilman/go/ewk/errors"
	"github.com/jmgilman/go/ewk/internal/config"
)

// New returns a logger writing to w at the configured level and format.
func New(cfg config.LogConfig, w zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level"),
			"level", cfg.Level,
		)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case config.LogJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case config.LogConsole, "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "unknown log format %q", cfg.Format),
			"format", cfg.Format,
		)
	}

	return zap.New(zapcore.NewCore(encoder, w, level)), nil
}
