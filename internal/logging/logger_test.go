package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelInfo))
	logger.With("component", "check").Info("loaded script", "events", 412, "path", "my file.ass")

	line := buf.String()
	if !strings.Contains(line, " INFO check: loaded script") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "events=412") {
		t.Fatalf("expected events attr, got %q", line)
	}
	if !strings.Contains(line, `path="my file.ass"`) {
		t.Fatalf("expected quoted path, got %q", line)
	}
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelWarn))
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("expected info suppressed, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn emitted, got %q", buf.String())
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelInfo))
	logger.WithGroup("doc").Info("stats", "styles", 3)
	if !strings.Contains(buf.String(), "doc.styles=3") {
		t.Fatalf("expected dotted group key, got %q", buf.String())
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newJSONHandler(&buf, slog.LevelInfo))
	logger.Info("loaded", "events", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if record["msg"] != "loaded" {
		t.Fatalf("unexpected msg %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("unexpected level %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts field")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug") != slog.LevelDebug {
		t.Fatal("expected debug")
	}
	if parseLevel(" WARN ") != slog.LevelWarn {
		t.Fatal("expected warn")
	}
	if parseLevel("nonsense") != slog.LevelInfo {
		t.Fatal("expected info fallback")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere")
}
