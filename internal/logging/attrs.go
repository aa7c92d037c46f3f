package logging

import (
	"context"
	"log/slog"
	"time"
)

type Attr = slog.Attr

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// HasAttrKey returns true if any attribute in attrs has the given key.
func HasAttrKey(attrs []Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// defaultHint is used when a warning or error names no next step.
const defaultHint = "check logs for details"

// WarnWithContext logs a warning that always carries event_type, error_hint,
// and impact. Fields the caller omits get defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	logWithDefaults(logger, slog.LevelWarn, msg, attrs,
		String(FieldEventType, eventType),
		String(FieldErrorHint, defaultHint),
		String(FieldImpact, "operation completed with warnings"),
	)
}

// ErrorWithContext logs an error that always carries event_type and error_hint.
func ErrorWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	logWithDefaults(logger, slog.LevelError, msg, attrs,
		String(FieldEventType, eventType),
		String(FieldErrorHint, defaultHint),
	)
}

func logWithDefaults(logger *slog.Logger, level slog.Level, msg string, attrs []Attr, defaults ...Attr) {
	if logger == nil {
		return
	}
	for _, d := range defaults {
		if !HasAttrKey(attrs, d.Key) {
			attrs = append(attrs, d)
		}
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
