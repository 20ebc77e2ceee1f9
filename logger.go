package ewk

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var globalLogger atomic.Pointer[zap.Logger]

func init() {
	globalLogger.Store(zap.NewNop())
}

// SetLogger sets the logger receiving invalid-handle diagnostics.
// A nil logger restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	globalLogger.Store(l.Named("ewk"))
}

// Logger returns the logger receiving invalid-handle diagnostics.
func Logger() *zap.Logger {
	return globalLogger.Load()
}

// critical reports a contract violation by the caller.
func critical(op, reason string) {
	Logger().Error(reason, zap.String("op", op))
}
