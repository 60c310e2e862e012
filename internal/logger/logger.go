// Package logger holds the process-wide logger used by thindst packages.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger. It discards everything until Set is called.
func L() *zap.Logger {
	return current.Load()
}

// Set installs l as the process-wide logger. A nil l restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Debug logs a debug message with structured fields.
func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }

// Warn logs a warning message with structured fields.
func Warn(msg string, fields ...zap.Field) { L().Warn(msg, fields...) }

// Error logs an error message with structured fields.
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
