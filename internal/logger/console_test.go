package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logFunc   func(*ConsoleLogger)
		wantShown bool
	}{
		{"debug hidden at info", "info", func(cl *ConsoleLogger) { cl.LogDebug("msg") }, false},
		{"info shown at info", "info", func(cl *ConsoleLogger) { cl.LogInfo("msg") }, true},
		{"warn shown at info", "info", func(cl *ConsoleLogger) { cl.LogWarn("msg") }, true},
		{"trace shown at trace", "trace", func(cl *ConsoleLogger) { cl.LogTrace("msg") }, true},
		{"info hidden at error", "error", func(cl *ConsoleLogger) { cl.LogInfo("msg") }, false},
		{"error shown at error", "error", func(cl *ConsoleLogger) { cl.LogError("msg") }, true},
		{"invalid level defaults to info", "bogus", func(cl *ConsoleLogger) { cl.LogDebug("msg") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.logLevel)
			tt.logFunc(cl)

			if got := buf.Len() > 0; got != tt.wantShown {
				t.Errorf("message shown = %v, want %v (output %q)", got, tt.wantShown, buf.String())
			}
		})
	}
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.LogInfo("resolving checker")

	// Non-TTY writers get plain text: "[HH:MM:SS] [INFO] <message>"
	matched, err := regexp.MatchString(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] resolving checker\n$`, buf.String())
	if err != nil {
		t.Fatalf("regexp error: %v", err)
	}
	if !matched {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	// Must not panic.
	cl.LogInfo("discarded")
	cl.LogCellResult("doc.md", 1, "mypy", 0, time.Second)
}

func TestConsoleLogger_LogCellResult(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogCellResult("notes.md", 2, "mypy", 0, 120*time.Millisecond)
	out := buf.String()
	if !strings.Contains(out, "notes.md#2") {
		t.Errorf("output should reference the cell, got %q", out)
	}
	if !strings.Contains(out, "clean") {
		t.Errorf("status 0 should log clean, got %q", out)
	}

	buf.Reset()
	cl.LogCellResult("notes.md", 3, "mypy", 1, 80*time.Millisecond)
	out = buf.String()
	if !strings.Contains(out, "findings") {
		t.Errorf("non-zero status should log findings, got %q", out)
	}
	if !strings.Contains(out, "status 1") {
		t.Errorf("exit status should be logged, got %q", out)
	}
}
