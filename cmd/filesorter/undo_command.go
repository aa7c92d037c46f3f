package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filesorter/internal/organizer"
	"filesorter/internal/services"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "undo DIR",
		Short: "Move files from the last organize run back where they were",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			dir := strings.TrimSpace(args[0])
			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)
			engine := organizer.NewEngine(logger)

			var result organizer.UndoResult
			if err := ctx.withDirLock(dir, func() error {
				result = engine.Undo(runCtx, dir)
				return nil
			}); err != nil {
				return err
			}

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), newUndoReport(runID, result)); err != nil {
					return err
				}
			} else {
				printUndo(cmd, result)
			}
			return undoError(dir, result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	return cmd
}

func printUndo(cmd *cobra.Command, result organizer.UndoResult) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	switch result.Outcome {
	case organizer.OutcomeUndone:
		message := fmt.Sprintf("%d file(s) restored", result.Restored)
		if result.Skipped > 0 {
			message += fmt.Sprintf(", %d missing and skipped", result.Skipped)
		}
		fmt.Fprintln(out, renderStatusLine("Undo", statusOK, message, colorize))
	case organizer.OutcomeNoHistory:
		fmt.Fprintln(out, renderStatusLine("Undo", statusWarn, "Nothing to undo", colorize))
	default:
		fmt.Fprintln(out, renderStatusLine("Undo", statusError, result.Outcome.String(), colorize))
		if result.Restored > 0 {
			fmt.Fprintln(out, renderStatusLine("Restored", statusInfo, fmt.Sprintf("%d file(s) before stopping", result.Restored), colorize))
		}
	}
}

// undoError turns a non-undone outcome into the command's error so the
// process exits non-zero.
func undoError(dir string, result organizer.UndoResult) error {
	if result.OK() {
		return nil
	}
	if result.Err != nil {
		return result.Err
	}
	return services.Wrap(services.ErrNotFound, "undo", "read history", fmt.Sprintf("No organization history in %s", dir), nil)
}
