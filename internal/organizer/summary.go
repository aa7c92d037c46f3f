package organizer

import (
	"maps"
	"slices"

	"filesorter/internal/classify"
)

// CategorySummary is what one run placed (or would place) into a category.
type CategorySummary struct {
	Count     int      `json:"count"`
	Filenames []string `json:"filenames"`
}

// Summary maps category names to their results. Categories with no files are
// absent. Filenames keep directory listing order.
type Summary map[string]*CategorySummary

func (s Summary) add(category, filename string) {
	entry, ok := s[category]
	if !ok {
		entry = &CategorySummary{}
		s[category] = entry
	}
	entry.Count++
	entry.Filenames = append(entry.Filenames, filename)
}

// Total is the number of files placed across all categories.
func (s Summary) Total() int {
	total := 0
	for _, entry := range s {
		total += entry.Count
	}
	return total
}

// Names lists the categories present in the summary in table order, followed
// by any category the table does not know, sorted by name.
func (s Summary) Names(table classify.Table) []string {
	names := make([]string, 0, len(s))
	for _, name := range table.Names() {
		if _, ok := s[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for _, name := range slices.Sorted(maps.Keys(s)) {
		if !table.Has(name) {
			unknown = append(unknown, name)
		}
	}
	return append(names, unknown...)
}
