package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	directoryKey contextKey = "directory"
	operationKey contextKey = "operation"
)

// WithRunID annotates context with the correlation identifier of one organize or undo run.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDirectory annotates context with the directory being organized.
func WithDirectory(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, directoryKey, dir)
}

// DirectoryFromContext returns the target directory if present.
func DirectoryFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(directoryKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithOperation annotates context with the engine operation (organize, preview, undo).
func WithOperation(ctx context.Context, op string) context.Context {
	if op == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKey, op)
}

// OperationFromContext returns the operation name if present.
func OperationFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(operationKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
