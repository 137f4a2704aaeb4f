package histcmp

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo logs progress and warnings.
	LogLevelInfo = "info"
	// LogLevelDebug also logs skipped objects.
	LogLevelDebug = "debug"
	// LogLevelNone disables logging.
	LogLevelNone = "none"
)

// NewLogger returns a console logger writing to stderr at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	if level == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	return cfg.Build()
}
