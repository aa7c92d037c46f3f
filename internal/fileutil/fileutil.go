// Package fileutil holds low-level file helpers shared by the organizer's
// move paths.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
)

// CopyFileVerified streams src to dst with SHA256 + size integrity
// verification. dst is created exclusively, so an existing file is never
// truncated; the error then satisfies errors.Is(err, fs.ErrExist). The copy
// keeps the source's permission bits and modification time. dst is removed on
// any failure after creation.
func CopyFileVerified(src, dst string) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	if written != srcInfo.Size() {
		err = fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
		return err
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		err = errors.New("copy hash mismatch: file corrupted during copy")
		return err
	}

	if err = os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("preserve modification time: %w", err)
	}
	return nil
}

// MoveAcrossDevices relocates src to dst when a rename cannot cross
// filesystems: verified copy first, then removal of the source. dst must not
// exist.
func MoveAcrossDevices(src, dst string) error {
	if err := CopyFileVerified(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}
