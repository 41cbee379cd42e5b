package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

type captureWriter struct {
	lines []string
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, string(p))
	return len(p), nil
}

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	writer := &captureWriter{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)

	logger := slog.New(newConsoleHandler(writer, levelVar))
	logger = NewComponentLogger(logger, "engine")
	logger.Info("moved file", String("path", "/tmp/a.pdf"), Int("attempt", 2))

	if len(writer.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(writer.lines))
	}
	line := writer.lines[0]
	if !strings.Contains(line, "INFO engine: moved file") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "path=/tmp/a.pdf") || !strings.Contains(line, "attempt=2") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	writer := &captureWriter{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	logger := slog.New(newConsoleHandler(writer, levelVar))
	logger.Warn("collision", String("name", "my report.pdf"))

	if len(writer.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(writer.lines))
	}
	if !strings.Contains(writer.lines[0], `name="my report.pdf"`) {
		t.Fatalf("expected quoted value, got %q", writer.lines[0])
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	writer := &captureWriter{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	logger := slog.New(newConsoleHandler(writer, levelVar))
	logger.Debug("ignored file")

	if len(writer.lines) != 0 {
		t.Fatalf("debug record should be suppressed, got %v", writer.lines)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNoopHandler(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop logger should report disabled")
	}
	logger.Error("discarded", Error(nil))
}
