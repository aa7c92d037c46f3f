// Package classify maps filenames onto the fixed category taxonomy used by the
// organizer.
//
// A Table is an immutable value holding the ordered categories and the
// exclusion set. It is built once (DefaultTable) and passed explicitly to the
// engine; nothing in this package keeps global state. Matching is a
// case-insensitive suffix test, categories are tried in declared order, and
// the first match wins. Files that match nothing fall through to Other.
package classify
