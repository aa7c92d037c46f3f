package logging

import (
	"context"
	"log/slog"

	"filesorter/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized key for the correlation identifier of one run.
	FieldRunID = "run_id"
	// FieldDirectory is the standardized key for the directory being organized.
	FieldDirectory = "directory"
	// FieldOperation is the standardized key for the engine operation.
	FieldOperation = "operation"
	// FieldEventType classifies warnings and errors for log filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if dir, ok := services.DirectoryFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldDirectory, dir))
	}
	if op, ok := services.OperationFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperation, op))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return slog.New(logger.Handler().WithAttrs(fields))
}
