package workbook

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger builds a named zap logger for use with Options.Logger. The
// returned func flushes buffered entries and should be deferred by the
// caller.
func SetupLogger(name string, level zapcore.Level, dev bool) (*zap.Logger, func(), error) {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, func() {}, err
	}
	logger = logger.Named(name)
	return logger, func() { _ = logger.Sync() }, nil
}
