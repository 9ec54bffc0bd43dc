package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("low-level messages should be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error should appear, got:\n%s", out)
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "termkey"})

	l.Info("decoded %d bytes", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO] termkey: decoded 3 bytes") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf}).
		WithComponent("decode").
		WithField("seq", "[1;5A")

	l.Debug("matched")

	out := buf.String()
	if !strings.Contains(out, "component=decode") {
		t.Errorf("missing component field: %q", out)
	}
	if !strings.Contains(out, "seq=[1;5A") {
		t.Errorf("missing seq field: %q", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	_ = parent.WithField("child", true)

	parent.Info("plain")

	if strings.Contains(buf.String(), "child=") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must stay silent.
	Null.Error("nothing to see")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelError, Output: &buf})

	l.Info("before")
	l.SetLevel(LevelDebug)
	l.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("info should be filtered at error level: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("info should appear after SetLevel: %q", out)
	}
}
