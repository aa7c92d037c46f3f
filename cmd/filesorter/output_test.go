package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"filesorter/internal/organizer"
)

func TestNewUndoReport(t *testing.T) {
	report := newUndoReport("run-1", organizer.UndoResult{
		Outcome:  organizer.OutcomeConflict,
		Restored: 2,
		Err:      errors.New("occupied"),
	})
	if report.Outcome != "conflict" || report.Restored != 2 || report.Error != "occupied" || report.RunID != "run-1" {
		t.Fatalf("unexpected report %+v", report)
	}
	if newUndoReport("run-2", organizer.UndoResult{Outcome: organizer.OutcomeUndone}).Error != "" {
		t.Fatal("successful undo should carry no error")
	}
}

func TestWriteJSONKeepsFilenamesLiteral(t *testing.T) {
	var buf bytes.Buffer
	summary := organizer.Summary{"Documents": {Count: 1, Filenames: []string{"Q&A <draft>.pdf"}}}
	if err := writeJSON(&buf, organizeReport{RunID: "r", Categories: summary}); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	requireContains(t, buf.String(), `"Q&A <draft>.pdf"`, `"preview": false`)
	if strings.Contains(buf.String(), `\u0026`) || strings.Contains(buf.String(), `\u003c`) {
		t.Fatalf("expected unescaped output, got %s", buf.String())
	}
}
