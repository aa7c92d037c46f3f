package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"filesorter/internal/history"
	"filesorter/internal/logging"
	"filesorter/internal/services"
)

const stageUndo = "undo"

// Outcome classifies how an undo ended.
type Outcome int

const (
	// OutcomeUndone means every recorded file was restored and the history removed.
	OutcomeUndone Outcome = iota
	// OutcomeNoHistory means the directory had nothing to undo.
	OutcomeNoHistory
	// OutcomeCorrupt means the history file exists but could not be parsed.
	OutcomeCorrupt
	// OutcomeConflict means an original path was occupied; nothing was overwritten.
	OutcomeConflict
	// OutcomeFailed means a filesystem operation failed part way through.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUndone:
		return "undone"
	case OutcomeNoHistory:
		return "no_history"
	case OutcomeCorrupt:
		return "corrupt_history"
	case OutcomeConflict:
		return "conflict"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// UndoResult reports what an undo did. Err carries the cause for every
// outcome except OutcomeUndone and OutcomeNoHistory.
type UndoResult struct {
	Outcome  Outcome
	Restored int
	// Skipped counts ledger entries whose destination no longer exists.
	Skipped int
	Err     error
}

// OK reports whether the undo completed.
func (r UndoResult) OK() bool {
	return r.Outcome == OutcomeUndone
}

// Undo moves every file recorded by the last organize run of directory back
// to its original path and deletes the history. Entries whose destination has
// disappeared are skipped. On any failure the history is kept so the undo
// can be retried; files restored before the failure stay restored and are
// skipped on the next attempt.
func (e *Engine) Undo(ctx context.Context, directory string) UndoResult {
	started := time.Now()
	dir, err := filepath.Abs(strings.TrimSpace(directory))
	if err != nil || strings.TrimSpace(directory) == "" {
		return UndoResult{
			Outcome: OutcomeNoHistory,
			Err:     services.Wrap(services.ErrNotFound, stageUndo, "resolve directory", fmt.Sprintf("Cannot resolve %q", directory), err),
		}
	}
	ctx = withRun(ctx, dir, stageUndo)
	logger := logging.WithContext(ctx, e.logger)

	ledger, err := e.history.Load(dir)
	switch {
	case errors.Is(err, history.ErrNoHistory):
		logger.Info("nothing to undo", logging.String("history", history.Path(dir)))
		return UndoResult{Outcome: OutcomeNoHistory}
	case errors.Is(err, history.ErrCorrupt):
		wrapped := services.Wrap(services.ErrHistoryCorrupt, stageUndo, "read history", "History file cannot be parsed", err)
		logging.ErrorWithContext(logger, "undo failed", "undo_history_corrupt",
			logging.Error(wrapped),
			logging.String("history", history.Path(dir)),
			logging.String(logging.FieldErrorHint, "inspect or delete the history file; no files were moved"),
		)
		return UndoResult{Outcome: OutcomeCorrupt, Err: wrapped}
	case err != nil:
		wrapped := services.Wrap(services.ErrIO, stageUndo, "read history", "History file cannot be read", err)
		logging.ErrorWithContext(logger, "undo failed", "undo_history_unreadable", logging.Error(wrapped))
		return UndoResult{Outcome: OutcomeFailed, Err: wrapped}
	}

	logger.Info("starting undo", logging.Int("entries", ledger.Len()))

	result := UndoResult{Outcome: OutcomeUndone}
	for _, rec := range ledger.Records() {
		if _, err := lstat(e.fs, rec.Destination); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Skipped++
				logging.WarnWithContext(logger, "organized file is gone; skipping", "undo_destination_missing",
					logging.String("original", rec.Original),
					logging.String("destination", rec.Destination),
					logging.String(logging.FieldImpact, "file cannot be restored"),
					logging.String(logging.FieldErrorHint, "restore it from backup if it was not deleted on purpose"),
				)
				continue
			}
			return undoFailed(logger, result, OutcomeFailed, services.Wrap(services.ErrIO, stageUndo, "stat destination", rec.Destination, err))
		}

		if err := e.fs.MkdirAll(filepath.Dir(rec.Original), 0o755); err != nil {
			return undoFailed(logger, result, OutcomeFailed, services.Wrap(services.ErrIO, stageUndo, "recreate folder", filepath.Dir(rec.Original), err))
		}

		if err := e.rename(rec.Destination, rec.Original); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return undoFailed(logger, result, OutcomeConflict, services.Wrap(services.ErrConflict, stageUndo, "restore file",
					fmt.Sprintf("Original path %s is occupied", rec.Original), err))
			}
			return undoFailed(logger, result, OutcomeFailed, services.Wrap(services.ErrIO, stageUndo, "restore file",
				fmt.Sprintf("Failed to move %s back", rec.Destination), err))
		}
		result.Restored++
		logger.Debug("file restored", logging.String("original", rec.Original), logging.String("from", rec.Destination))
	}

	if err := e.history.Remove(dir); err != nil {
		return undoFailed(logger, result, OutcomeFailed, services.Wrap(services.ErrIO, stageUndo, "remove history", "Failed to delete history file", err))
	}

	logger.Info("undo completed",
		logging.Int("restored", result.Restored),
		logging.Int("skipped", result.Skipped),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result
}

func undoFailed(logger *slog.Logger, result UndoResult, outcome Outcome, err error) UndoResult {
	result.Outcome = outcome
	result.Err = err
	hint := "fix the cause and run undo again; restored files are skipped on retry"
	if outcome == OutcomeConflict {
		hint = "move the file occupying the original path aside and run undo again"
	}
	logging.ErrorWithContext(logger, "undo aborted; history kept", "undo_"+outcome.String(),
		logging.String(logging.FieldErrorHint, hint),
		logging.Int("restored_before_failure", result.Restored),
		logging.Error(err),
	)
	return result
}
