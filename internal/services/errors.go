package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrIO             = errors.New("filesystem failure")
	ErrValidation     = errors.New("validation error")
	ErrConfiguration  = errors.New("configuration error")
	ErrHistoryCorrupt = errors.New("history corrupt")
	ErrConflict       = errors.New("path conflict")
	ErrLocked         = errors.New("directory locked")
)

// Wrap builds an error message that includes operation context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error returned by the engine to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrNotFound):
		return 3
	case errors.Is(err, ErrLocked):
		return 4
	default:
		return 1
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
