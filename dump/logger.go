package dump

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger for dump diagnostics: one debug entry per
// completed field and one warning per decode error. Diagnostics are
// discarded until SetLogger installs a real logger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs the logger used for dump diagnostics. Call it
// before the first Write.
func SetLogger(l *zap.Logger) {
	logger = l
}
