package testsupport

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// WriteFile creates path (and its parents) on fsys with the given content and
// modification time. A zero mtime leaves the filesystem's default.
func WriteFile(t testing.TB, fsys afero.Fs, path, content string, mtime time.Time) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if !mtime.IsZero() {
		if err := fsys.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes %s: %v", path, err)
		}
	}
}

// Date returns noon local time on the given day so DD-MM-YYYY formatting
// does not depend on the machine's time zone.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// Snapshot maps every regular file under root (relative, slash separated) to
// its content. Directories are listed with a trailing slash and empty content.
func Snapshot(t testing.TB, fsys afero.Fs, root string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			out[rel+"/"] = ""
			return nil
		}
		if info.Mode()&fs.ModeType != 0 {
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return out
}

// Files filters a snapshot down to regular files.
func Files(snapshot map[string]string) map[string]string {
	out := make(map[string]string, len(snapshot))
	for path, content := range snapshot {
		if len(path) > 0 && path[len(path)-1] == '/' {
			continue
		}
		out[path] = content
	}
	return out
}
