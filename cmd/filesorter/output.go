package main

import (
	"encoding/json"
	"io"

	"filesorter/internal/organizer"
)

// organizeReport is the --json form of organize and preview.
type organizeReport struct {
	Preview    bool              `json:"preview"`
	RunID      string            `json:"run_id"`
	Directory  string            `json:"directory"`
	Categories organizer.Summary `json:"categories"`
}

// undoReport is the --json form of undo.
type undoReport struct {
	RunID    string `json:"run_id"`
	Outcome  string `json:"outcome"`
	Restored int    `json:"restored"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

func newUndoReport(runID string, result organizer.UndoResult) undoReport {
	report := undoReport{
		RunID:    runID,
		Outcome:  result.Outcome.String(),
		Restored: result.Restored,
		Skipped:  result.Skipped,
	}
	if result.Err != nil {
		report.Error = result.Err.Error()
	}
	return report
}

// writeJSON writes v indented. Filenames keep characters such as & and <
// unescaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
