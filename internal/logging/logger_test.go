package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filesorter/internal/config"
	"filesorter/internal/logging"
	"filesorter/internal/services"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Level = "debug"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello from test", logging.String("k", "v"))

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "filesorter.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerPrefixesComponent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "component.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "organizer").Info("file moved", logging.String("file", "a b.txt"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "INFO organizer: file moved") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, `file="a b.txt"`) {
		t.Fatalf("expected quoted value, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not repeat as a key, got %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "invalid", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "hidden") {
		t.Fatalf("debug output leaked at info level: %q", content)
	}
	if !strings.Contains(string(content), "visible") {
		t.Fatalf("expected info output, got %q", content)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-xyz")
	ctx = services.WithDirectory(ctx, "/data/inbox")
	ctx = services.WithOperation(ctx, "undo")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.WithContext(ctx, logger).Info("contextual log")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	want := map[string]string{
		logging.FieldRunID:     "run-xyz",
		logging.FieldDirectory: "/data/inbox",
		logging.FieldOperation: "undo",
	}
	for key, value := range want {
		if record[key] != value {
			t.Fatalf("field %s = %v, want %q", key, record[key], value)
		}
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.WarnWithContext(logger, "something odd", "odd_event")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected %s in warning, got %v", key, record)
		}
	}
	if record[logging.FieldEventType] != "odd_event" {
		t.Fatalf("unexpected event type: %v", record[logging.FieldEventType])
	}
}

func TestWithContextNilLoggerIsSafe(t *testing.T) {
	logging.WithContext(context.Background(), nil).Info("discarded")
}

func TestErrorWithContextKeepsCallerHint(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.ErrorWithContext(logger, "move failed", "organize_move_failed",
		logging.String(logging.FieldErrorHint, "free some space"),
	)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record[logging.FieldErrorHint] != "free some space" {
		t.Fatalf("caller hint replaced: %v", record)
	}
	if record[logging.FieldEventType] != "organize_move_failed" || record["level"] != "ERROR" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record[logging.FieldImpact]; ok {
		t.Fatalf("errors carry no default impact: %v", record)
	}
}
