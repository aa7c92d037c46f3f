package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"

	"filesorter/internal/fileutil"
)

const (
	// dateBucketLayout formats modification dates as DD-MM-YYYY.
	dateBucketLayout  = "02-01-2006"
	maxSuffixAttempts = 100000
)

// placeFile moves src into destDir under its own name, or under the first
// free <stem>_N<ext> when that name is taken. It returns the final path.
func (e *Engine) placeFile(src, destDir string) (string, error) {
	name := filepath.Base(src)
	stem, ext := splitName(name)
	for attempt := 0; attempt <= maxSuffixAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, attempt, ext)
		}
		target := filepath.Join(destDir, candidate)
		err := e.rename(src, target)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted collision suffixes for %s in %s", name, destDir)
}

// splitName separates a filename into stem and extension at the last dot.
// Leading dots belong to the stem, so ".bashrc" has no extension.
func splitName(name string) (string, string) {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return name, ""
	}
	cut := len(name) - len(trimmed) + idx
	return name[:cut], name[cut:]
}

// renameNoClobber moves src to dst without ever replacing dst. On the OS
// filesystem it uses an atomic no-replace rename where the kernel supports
// one and falls back to a verified copy across devices.
func (e *Engine) renameNoClobber(src, dst string) error {
	if _, ok := e.fs.(*afero.OsFs); ok {
		err := renameNoReplace(src, dst)
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			return fileutil.MoveAcrossDevices(src, dst)
		}
		return err
	}
	return checkedRename(e.fs, src, dst)
}

// checkedRename is the portable path: probe dst, then rename. It is not
// atomic; a file appearing between the probe and the rename can be replaced.
func checkedRename(fsys afero.Fs, src, dst string) error {
	if _, err := lstat(fsys, dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return fsys.Rename(src, dst)
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}
