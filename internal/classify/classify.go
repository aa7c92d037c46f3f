package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the outcome class of a classification.
type Kind int

const (
	// Unmatched means no allowed category claimed the file and Other is not allowed.
	Unmatched Kind = iota
	// Excluded means the file is a system artifact and must be left alone.
	Excluded
	// Matched means an allowed category claimed the file by extension.
	Matched
	// CatchAll means nothing matched and the file falls through to Other.
	CatchAll
)

func (k Kind) String() string {
	switch k {
	case Excluded:
		return "excluded"
	case Matched:
		return "matched"
	case CatchAll:
		return "catch-all"
	default:
		return "unmatched"
	}
}

// Result is the classification of one filename.
type Result struct {
	Kind     Kind
	Category string
}

// Placed reports whether the file should be moved into Category.
func (r Result) Placed() bool {
	return r.Kind == Matched || r.Kind == CatchAll
}

// Allowed is the set of category names a run may place files into. A nil set
// allows every category.
type Allowed map[string]struct{}

// Allow builds an Allowed set from names.
func Allow(names ...string) Allowed {
	set := make(Allowed, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (a Allowed) permits(name string) bool {
	if a == nil {
		return true
	}
	_, ok := a[name]
	return ok
}

// Classify resolves filename against the table. Exclusion is checked first;
// then categories are tried in declared order and the first extension match
// wins. A non-excluded file that matched nothing lands in Other when Other is
// allowed, whether or not Other carries extensions of its own.
func (t Table) Classify(filename string, allowed Allowed) Result {
	if t.IsExcluded(filename) {
		return Result{Kind: Excluded}
	}
	lowered := lower(filename)
	for _, c := range t.categories {
		if !allowed.permits(c.Name) {
			continue
		}
		for _, ext := range c.Extensions {
			if strings.HasSuffix(lowered, ext) {
				return Result{Kind: Matched, Category: c.Name}
			}
		}
	}
	if t.Has(Other) && allowed.permits(Other) {
		return Result{Kind: CatchAll, Category: Other}
	}
	return Result{Kind: Unmatched}
}

// lower folds a name with Unicode-aware lowercasing. A fresh Caser is used per
// call because Casers carry state and are not safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
