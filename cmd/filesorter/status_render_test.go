package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Undo", statusError, "conflict", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Undo:", "[ERROR] conflict")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Organized", statusOK, "done", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestTruncateNames(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	if got := truncateNames(names, 5); got != "a, b, c, d" {
		t.Fatalf("truncateNames = %q", got)
	}
	if got := truncateNames(names, 2); got != "a, b (+2 more)" {
		t.Fatalf("truncateNames = %q", got)
	}
}

func TestRenderStatusLineTags(t *testing.T) {
	tests := []struct {
		kind statusKind
		tag  string
	}{
		{statusInfo, "[INFO]"},
		{statusOK, "[OK]"},
		{statusWarn, "[WARN]"},
		{statusError, "[ERROR]"},
		{statusKind(42), "[INFO]"},
	}
	for _, tt := range tests {
		got := renderStatusLine("Label", tt.kind, "", false)
		if !strings.HasSuffix(got, tt.tag) {
			t.Fatalf("kind %d rendered %q, want suffix %q", tt.kind, got, tt.tag)
		}
	}
}
