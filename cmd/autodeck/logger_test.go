package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quiet, verbose bool
		want           zapcore.Level
	}{
		{false, false, zapcore.WarnLevel},
		{true, false, zapcore.ErrorLevel},
		{false, true, zapcore.DebugLevel},
		{true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := logLevel(tt.quiet, tt.verbose); got != tt.want {
			t.Errorf("logLevel(%v, %v) = %v, want %v", tt.quiet, tt.verbose, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, false, false)
	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at default level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q, want console warning", out)
	}
}
