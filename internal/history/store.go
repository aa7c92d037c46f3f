package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// FileName is the hidden ledger file kept in the organized directory.
	FileName = ".organizer_historial.json"
	tempName = FileName + ".tmp"
)

var (
	// ErrNoHistory reports that the directory has no ledger to undo.
	ErrNoHistory = errors.New("no organize history")
	// ErrCorrupt reports a ledger that exists but cannot be parsed.
	ErrCorrupt = errors.New("organize history is corrupt")
)

// IsArtifact reports whether name is one of the files this package writes into
// an organized directory. The engine never classifies these.
func IsArtifact(name string) bool {
	return name == FileName || name == tempName
}

// Path returns the ledger location for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Store reads and writes ledgers through an afero filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a store backed by fsys. A nil fsys uses the OS filesystem.
func NewStore(fsys afero.Fs) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys}
}

// Save replaces the ledger for dir. The file is written next to its final
// name and renamed into place so a crash never leaves a half-written ledger.
func (s *Store) Save(dir string, ledger *Ledger) error {
	if ledger == nil {
		ledger = NewLedger()
	}
	// MarshalJSON is called directly because json.Marshal would compact it.
	data, err := ledger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp := filepath.Join(dir, tempName)
	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write history: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("sync history: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("close history: %w", err)
	}
	if err := s.fs.Rename(tmp, Path(dir)); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("install history: %w", err)
	}
	return nil
}

// Load reads the ledger for dir. It returns ErrNoHistory when there is none
// and an error wrapping ErrCorrupt when the file cannot be parsed.
func (s *Store) Load(dir string) (*Ledger, error) {
	data, err := afero.ReadFile(s.fs, Path(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	ledger := NewLedger()
	if err := ledger.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return ledger, nil
}

// Exists reports whether dir has a ledger.
func (s *Store) Exists(dir string) (bool, error) {
	return afero.Exists(s.fs, Path(dir))
}

// Remove deletes the ledger for dir. A missing ledger is not an error.
func (s *Store) Remove(dir string) error {
	if err := s.fs.Remove(Path(dir)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove history: %w", err)
	}
	return nil
}
