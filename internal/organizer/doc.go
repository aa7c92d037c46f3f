// Package organizer sorts the top-level files of a directory into category
// subfolders and reverses the most recent run.
//
// Organize lists the directory once, classifies each regular file against an
// immutable classify.Table, buckets Images and Videos by modification date
// (DD-MM-YYYY), and moves files with collision-safe renaming: an occupied
// target becomes name_1.ext, name_2.ext, and so on, and nothing is ever
// overwritten. Every move is recorded in a history.Ledger that is written to
// the directory at the end of the run. Preview runs compute the same summary
// without touching the filesystem.
//
// Undo replays the ledger backwards: each file still present at its
// destination is moved back to its original path, then the ledger is
// deleted. Undo never clobbers a file that reappeared at an original path;
// it stops with a Conflict outcome and keeps the ledger instead.
//
// The engine is synchronous and takes no locks. Callers that may race on the
// same directory must serialize runs themselves (the CLI uses dirlock).
package organizer
