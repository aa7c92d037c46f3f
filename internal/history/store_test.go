package history_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"filesorter/internal/history"
)

func TestStoreSaveLoadRemove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/inbox"
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	store := history.NewStore(fsys)

	ledger := history.NewLedger()
	mustAdd(t, ledger, "/inbox/a.pdf", "/inbox/Documents/a.pdf")
	if err := store.Save(dir, ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if exists, err := store.Exists(dir); err != nil || !exists {
		t.Fatalf("expected history to exist, exists=%v err=%v", exists, err)
	}
	if ok, _ := afero.Exists(fsys, filepath.Join(dir, history.FileName+".tmp")); ok {
		t.Fatal("temporary ledger left behind")
	}

	loaded, err := store.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dest, ok := loaded.Destination("/inbox/a.pdf"); !ok || dest != "/inbox/Documents/a.pdf" {
		t.Fatalf("unexpected destination %q (%v)", dest, ok)
	}

	if err := store.Remove(dir); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Load(dir); !errors.Is(err, history.ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory after remove, got %v", err)
	}
	if err := store.Remove(dir); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}
}

func TestStoreSaveReplacesPreviousLedger(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := history.NewStore(fsys)
	dir := "/inbox"
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	first := history.NewLedger()
	mustAdd(t, first, "/inbox/old.txt", "/inbox/Documents/old.txt")
	if err := store.Save(dir, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(dir, history.NewLedger()); err != nil {
		t.Fatalf("Save empty: %v", err)
	}

	loaded, err := store.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 0 {
		t.Fatalf("expected empty ledger to replace previous one, got %d records", loaded.Len())
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/inbox"
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := afero.WriteFile(fsys, history.Path(dir), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := history.NewStore(fsys).Load(dir)
	if !errors.Is(err, history.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	store := history.NewStore(nil)
	ledger := history.NewLedger()
	mustAdd(t, ledger, filepath.Join(dir, "a.zip"), filepath.Join(dir, "Archives", "a.zip"))
	if err := store.Save(dir, ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected one record, got %d", loaded.Len())
	}
}

func TestIsArtifact(t *testing.T) {
	if !history.IsArtifact(".organizer_historial.json") {
		t.Fatal("ledger file must be reserved")
	}
	if !history.IsArtifact(".organizer_historial.json.tmp") {
		t.Fatal("temporary ledger must be reserved")
	}
	if history.IsArtifact("history.json") {
		t.Fatal("ordinary files must not be reserved")
	}
}
