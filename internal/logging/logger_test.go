package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf})

	logger.Debug("debug suppressed")
	if got := buf.Len(); got != 0 {
		t.Fatalf("expected debug output to be suppressed, got %d bytes", got)
	}

	logger.Info("visible message")
	if out := buf.String(); !strings.Contains(out, "visible message") {
		t.Fatalf("expected info log to contain message, got %q", out)
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Verbose: true, Writer: &buf})

	logger.Debug("debug visible")
	if out := buf.String(); !strings.Contains(out, "debug visible") {
		t.Fatalf("expected debug output when verbose, got %q", out)
	}
}

func TestNewAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf}).With("component", "pipeline")

	logger.Info("message", "count", 42)

	out := buf.String()
	if !strings.Contains(out, "component=pipeline") {
		t.Errorf("output = %q, want to contain 'component=pipeline'", out)
	}
	if !strings.Contains(out, "count=42") {
		t.Errorf("output = %q, want to contain 'count=42'", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("discarded")
	logger.With("key", "value").Error("also discarded")
}
