package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// OffLevel disables all diagnostics.
const OffLevel = zapcore.FatalLevel + 1

// ParseLevel converts a string to a zap level. Unknown names map to
// InfoLevel.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "TRACE":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "OFF", "NONE", "SILENT":
		return OffLevel
	default:
		return zapcore.InfoLevel
	}
}
