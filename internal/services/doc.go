// Package services defines shared utilities consumed by the organizer engine
// and the command-line front-end.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, target directories, and operation
//     names for logging.
//   - Structured error markers plus the Wrap helper that let callers classify
//     failures with errors.Is instead of parsing messages.
//
// Use these helpers when wiring new engine paths so error handling and
// observability stay uniform.
package services
