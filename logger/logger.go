package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Builder provides a fluent API for building diagnostic loggers
type Builder struct {
	writer io.Writer
	level  zapcore.Level
	color  bool
	fields []zap.Field
}

// NewBuilder creates a new logger builder writing warnings to stderr
func NewBuilder() *Builder {
	return &Builder{
		writer: os.Stderr,
		level:  zapcore.WarnLevel,
	}
}

// WithWriter sets the destination
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level zapcore.Level) *Builder {
	b.level = level
	return b
}

// WithColor enables colored level names
func (b *Builder) WithColor(enabled bool) *Builder {
	b.color = enabled
	return b
}

// WithFields adds default fields to all diagnostics
func (b *Builder) WithFields(fields ...zap.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the zap logger
func (b *Builder) Build() *zap.Logger {
	if b.level >= OffLevel {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.CallerKey = zapcore.OmitKey
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if b.color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(b.writer), b.level)
	return zap.New(core, zap.Fields(b.fields...))
}
