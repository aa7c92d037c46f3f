// Package logging assembles structured slog loggers and formatting helpers used
// by the organizer engine and the filesorter CLI.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so engine code automatically tags log lines
// with the run ID, target directory, and operation. A no-op logger is provided
// for tests and for callers that do not care about diagnostics.
package logging
