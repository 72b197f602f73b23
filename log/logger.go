package log

import "go.uber.org/zap"

// Package-level logger shared by the toolbox. Defaults to a no-op so the
// library stays silent until the host installs a real sink.
var logger = zap.NewNop()

func SetLogger(lg *zap.Logger) {
	if lg != nil {
		logger = lg
	}
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() error {
	return logger.Sync()
}
