package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{Level(42), "UNKNOWN"},
	}

	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tc.level), got, tc.want)
		}
	}
}

func TestDefaultLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Errorf("error message")
	logger.Warnf("warn message")
	logger.Infof("info message")
	logger.Debugf("debug message")

	out := buf.String()
	if !strings.Contains(out, "ERROR error message") {
		t.Errorf("output missing error message: %q", out)
	}
	if !strings.Contains(out, "WARN warn message") {
		t.Errorf("output missing warn message: %q", out)
	}
	if strings.Contains(out, "info message") {
		t.Errorf("info message logged at LevelWarn: %q", out)
	}
	if strings.Contains(out, "debug message") {
		t.Errorf("debug message logged at LevelWarn: %q", out)
	}
}

func TestDefaultLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelDebug)

	logger.Debugf(NSCompact+"removing record for key %q", "k")

	out := buf.String()
	if !strings.Contains(out, `DEBUG [compact] removing record for key "k"`) {
		t.Errorf("unexpected debug output: %q", out)
	}
}

func TestDiscardLoggerDoesNothing(t *testing.T) {
	// Must not panic.
	Discard.Errorf("e %d", 1)
	Discard.Warnf("w")
	Discard.Infof("i")
	Discard.Debugf("d")
}

func TestIsNil(t *testing.T) {
	if !IsNil(nil) {
		t.Error("IsNil(nil) = false")
	}

	var typedNil *DefaultLogger
	var iface Logger = typedNil
	if !IsNil(iface) {
		t.Error("IsNil(typed-nil) = false")
	}

	if IsNil(Discard) {
		t.Error("IsNil(Discard) = true")
	}
}
