package classify

import (
	"maps"
	"slices"
	"strings"
)

// Category names in declared order.
const (
	Documents   = "Documents"
	Images      = "Images"
	Videos      = "Videos"
	Audio       = "Audio"
	Archives    = "Archives"
	Other       = "Other"
	Executables = "Executables"
)

// Category is a named bucket of extensions. DateBucketed categories get an
// extra DD-MM-YYYY subfolder derived from each file's modification time.
type Category struct {
	Name         string
	Extensions   []string
	DateBucketed bool
}

// Table is the immutable category and exclusion configuration for one run.
// The zero value classifies nothing; use DefaultTable or NewTable.
type Table struct {
	categories    []Category
	excludedNames map[string]struct{}
	excludedExts  []string
}

var (
	defaultCategories = []Category{
		{Name: Documents, Extensions: []string{".pdf", ".docx", ".txt", ".xlsx", ".pptx"}},
		{Name: Images, Extensions: []string{".jpg", ".jpeg", ".png", ".gif"}, DateBucketed: true},
		{Name: Videos, Extensions: []string{".mp4", ".avi", ".mov"}, DateBucketed: true},
		{Name: Audio, Extensions: []string{".mp3", ".wav"}},
		{Name: Archives, Extensions: []string{".zip", ".rar"}},
		{Name: Other},
	}
	executablesCategory = Category{Name: Executables, Extensions: []string{".exe", ".msi"}}

	defaultExcludedNames      = []string{"Thumbs.db", "desktop.ini", ".DS_Store"}
	defaultExcludedExtensions = []string{".lnk", ".ini", ".sys", ".dll", ".bat", ".cmd", ".reg"}
)

// DefaultTable returns the standard taxonomy. Executables is appended after
// Other only when includeExecutables is set.
func DefaultTable(includeExecutables bool) Table {
	categories := slices.Clone(defaultCategories)
	if includeExecutables {
		categories = append(categories, executablesCategory)
	}
	return NewTable(categories, defaultExcludedNames, defaultExcludedExtensions)
}

// NewTable builds a table from explicit categories and exclusions. Inputs are
// copied and extensions lowercased so later mutation by the caller has no
// effect on the table.
func NewTable(categories []Category, excludedNames, excludedExtensions []string) Table {
	t := Table{
		categories:    make([]Category, 0, len(categories)),
		excludedNames: make(map[string]struct{}, len(excludedNames)),
	}
	for _, c := range categories {
		exts := make([]string, 0, len(c.Extensions))
		for _, ext := range c.Extensions {
			exts = append(exts, lower(ext))
		}
		t.categories = append(t.categories, Category{Name: c.Name, Extensions: exts, DateBucketed: c.DateBucketed})
	}
	for _, name := range excludedNames {
		t.excludedNames[name] = struct{}{}
	}
	for _, ext := range excludedExtensions {
		t.excludedExts = append(t.excludedExts, lower(ext))
	}
	return t
}

// IsZero reports whether the table has no categories at all.
func (t Table) IsZero() bool {
	return len(t.categories) == 0
}

// Categories returns a copy of the categories in declared order.
func (t Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: slices.Clone(c.Extensions), DateBucketed: c.DateBucketed}
	}
	return out
}

// Names lists category names in declared order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return names
}

// Lookup returns the category with the given name.
func (t Table) Lookup(name string) (Category, bool) {
	for _, c := range t.categories {
		if c.Name == name {
			return Category{Name: c.Name, Extensions: slices.Clone(c.Extensions), DateBucketed: c.DateBucketed}, true
		}
	}
	return Category{}, false
}

// Has reports whether name is a category of this table.
func (t Table) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// ExcludedNames lists the exact filenames that are never organized, sorted.
func (t Table) ExcludedNames() []string {
	return slices.Sorted(maps.Keys(t.excludedNames))
}

// ExcludedExtensions lists the excluded extensions in declared order.
func (t Table) ExcludedExtensions() []string {
	return slices.Clone(t.excludedExts)
}

// IsExcluded reports whether a file is a system artifact that must never be
// organized. Names match exactly; extensions match case-insensitively.
func (t Table) IsExcluded(filename string) bool {
	if _, ok := t.excludedNames[filename]; ok {
		return true
	}
	lowered := lower(filename)
	for _, ext := range t.excludedExts {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}
