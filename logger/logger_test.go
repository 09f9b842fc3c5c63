package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"Warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"off", OffLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuilder_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().WithWriter(&buf).WithLevel(zapcore.WarnLevel).Build()

	log.Info("hidden")
	log.Warn("shown", zap.Int("line", 3))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %s", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") || !strings.Contains(out, `"line": 3`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestBuilder_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().WithWriter(&buf).WithFields(zap.String("input", "app.log")).Build()

	log.Error("boom")
	if !strings.Contains(buf.String(), `"input": "app.log"`) {
		t.Errorf("default field missing: %s", buf.String())
	}
}

func TestBuilder_Off(t *testing.T) {
	var buf bytes.Buffer
	log := NewBuilder().WithWriter(&buf).WithLevel(OffLevel).Build()

	log.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("Off logger wrote %q", buf.String())
	}
}
