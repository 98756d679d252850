package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	quiet := NewLogger(false)
	defer quiet.Sync()
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Error("default logger should not emit debug entries")
	}
	if !quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Error("default logger should emit info entries")
	}

	loud := NewLogger(true)
	defer loud.Sync()
	if !loud.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should emit debug entries")
	}
}
