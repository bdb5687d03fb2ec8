package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("debug mode returns development logger", func(t *testing.T) {
		logger, err := New(true)
		if err != nil {
			t.Fatalf("New(true) error: %v", err)
		}
		if logger == nil {
			t.Fatal("New(true) returned nil logger")
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("development logger should enable debug level")
		}
		_ = logger.Sync()
	})

	t.Run("production mode returns production logger", func(t *testing.T) {
		logger, err := New(false)
		if err != nil {
			t.Fatalf("New(false) error: %v", err)
		}
		if logger == nil {
			t.Fatal("New(false) returned nil logger")
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("production logger should not enable debug level")
		}
		_ = logger.Sync()
	})
}

func TestNewOrNop(t *testing.T) {
	if NewOrNop(false) == nil {
		t.Fatal("NewOrNop(false) returned nil logger")
	}
}
