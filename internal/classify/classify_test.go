package classify_test

import (
	"slices"
	"testing"

	"filesorter/internal/classify"
)

func TestClassifyDefaultTable(t *testing.T) {
	table := classify.DefaultTable(false)

	tests := []struct {
		name     string
		filename string
		kind     classify.Kind
		category string
	}{
		{"pdf", "report.pdf", classify.Matched, classify.Documents},
		{"uppercase extension", "SCAN.PDF", classify.Matched, classify.Documents},
		{"mixed case image", "Photo.JpEg", classify.Matched, classify.Images},
		{"video", "clip.mov", classify.Matched, classify.Videos},
		{"audio", "song.wav", classify.Matched, classify.Audio},
		{"archive", "bundle.zip", classify.Matched, classify.Archives},
		{"exe without executables", "setup.exe", classify.CatchAll, classify.Other},
		{"no extension", "README", classify.CatchAll, classify.Other},
		{"unknown extension", "notes.md", classify.CatchAll, classify.Other},
		{"suffix not extension", "mytxt", classify.CatchAll, classify.Other},
		{"excluded name", "Thumbs.db", classify.Excluded, ""},
		{"excluded dotfile", ".DS_Store", classify.Excluded, ""},
		{"excluded extension", "driver.SYS", classify.Excluded, ""},
		{"excluded shortcut", "Game.lnk", classify.Excluded, ""},
		{"excluded ini beats name", "desktop.ini", classify.Excluded, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Classify(tt.filename, nil)
			if got.Kind != tt.kind || got.Category != tt.category {
				t.Fatalf("Classify(%q) = %+v, want kind=%s category=%q", tt.filename, got, tt.kind, tt.category)
			}
		})
	}
}

func TestExcludedNameIsCaseSensitive(t *testing.T) {
	table := classify.DefaultTable(false)
	if got := table.Classify("thumbs.db", nil); got.Kind == classify.Excluded {
		t.Fatalf("expected lowercase thumbs.db to be organized, got %+v", got)
	}
}

func TestClassifyExecutablesWhenEnabled(t *testing.T) {
	table := classify.DefaultTable(true)
	got := table.Classify("installer.MSI", nil)
	if got.Kind != classify.Matched || got.Category != classify.Executables {
		t.Fatalf("expected Executables, got %+v", got)
	}
	names := table.Names()
	if names[len(names)-1] != classify.Executables {
		t.Fatalf("expected Executables after Other, got %v", names)
	}
}

func TestClassifyRespectsAllowedSet(t *testing.T) {
	table := classify.DefaultTable(false)

	got := table.Classify("photo.jpg", classify.Allow(classify.Documents, classify.Other))
	if got.Kind != classify.CatchAll || got.Category != classify.Other {
		t.Fatalf("expected disallowed image to fall through to Other, got %+v", got)
	}

	got = table.Classify("photo.jpg", classify.Allow(classify.Documents))
	if got.Kind != classify.Unmatched || got.Placed() {
		t.Fatalf("expected unmatched without Other, got %+v", got)
	}

	got = table.Classify("Thumbs.db", classify.Allow(classify.Other))
	if got.Kind != classify.Excluded {
		t.Fatalf("exclusion must win regardless of allowed set, got %+v", got)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := classify.NewTable([]classify.Category{
		{Name: "Compressed", Extensions: []string{".gz"}},
		{Name: "Tarballs", Extensions: []string{".tar.gz"}},
		{Name: classify.Other},
	}, nil, nil)

	got := table.Classify("backup.tar.gz", nil)
	if got.Category != "Compressed" {
		t.Fatalf("expected first declared category to win, got %+v", got)
	}

	got = table.Classify("backup.tar.gz", classify.Allow("Tarballs", classify.Other))
	if got.Category != "Tarballs" {
		t.Fatalf("expected next allowed category, got %+v", got)
	}
}

func TestTableIsImmutable(t *testing.T) {
	exts := []string{".ABC"}
	table := classify.NewTable([]classify.Category{{Name: "Custom", Extensions: exts}}, nil, nil)
	exts[0] = ".xyz"

	if got := table.Classify("file.abc", nil); got.Category != "Custom" {
		t.Fatalf("expected table to keep its own lowered copy, got %+v", got)
	}

	cats := table.Categories()
	cats[0].Extensions[0] = ".zzz"
	if got := table.Classify("file.abc", nil); got.Category != "Custom" {
		t.Fatalf("Categories must return a copy, got %+v", got)
	}
}

func TestDefaultTableOrderAndBuckets(t *testing.T) {
	want := []string{classify.Documents, classify.Images, classify.Videos, classify.Audio, classify.Archives, classify.Other}
	if got := classify.DefaultTable(false).Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for _, name := range want {
		cat, ok := classify.DefaultTable(false).Lookup(name)
		if !ok {
			t.Fatalf("missing category %s", name)
		}
		wantBucket := name == classify.Images || name == classify.Videos
		if cat.DateBucketed != wantBucket {
			t.Fatalf("%s DateBucketed = %v, want %v", name, cat.DateBucketed, wantBucket)
		}
	}
	if classify.DefaultTable(false).Has(classify.Executables) {
		t.Fatal("Executables must be opt-in")
	}
}

func TestExclusionAccessors(t *testing.T) {
	table := classify.DefaultTable(false)
	if got, want := table.ExcludedNames(), []string{".DS_Store", "Thumbs.db", "desktop.ini"}; !slices.Equal(got, want) {
		t.Fatalf("ExcludedNames() = %v, want %v", got, want)
	}
	exts := table.ExcludedExtensions()
	exts[0] = ".pdf"
	if table.IsExcluded("a.pdf") {
		t.Fatal("ExcludedExtensions must return a copy")
	}
}
