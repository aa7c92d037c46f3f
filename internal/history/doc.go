// Package history persists the Run Ledger of the most recent organize run.
//
// The ledger is a single JSON object stored as .organizer_historial.json in the
// organized directory. Keys are original absolute paths and values are the
// destinations they were moved to, written in move order with four-space
// indentation. Only one ledger exists per directory; saving replaces it.
package history
