package profiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	backupPrefix = "backup_"
	newPrefix    = "new_"
)

// prefixedPath returns a sibling of path whose file name carries prefix.
func prefixedPath(path, prefix string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, prefix+base)
}

// isWritable reports whether path is a regular file that can be opened for append.
func isWritable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// writeDocument persists doc over e.path:
//  1. check the target is writable
//  2. copy the current file to backup_<name>
//  3. write the new content to new_<name>
//  4. copy new_<name> over the target
//
// new_<name> is removed after a successful replace or a failed write to it.
// A failure part way leaves the artifacts of the completed steps on disk.
func (e *Editor) writeDocument(doc document) error {
	if !isWritable(e.fs, e.path) {
		return fmt.Errorf("%w: %s", ErrNotWritable, e.path)
	}

	info, err := e.fs.Stat(e.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotWritable, err)
	}

	data, err := doc.marshal()
	if err != nil {
		return fmt.Errorf("%w: encode document: %w", ErrWriteFailed, err)
	}

	backupPath := e.BackupPath()
	if err := e.copyFile(e.path, backupPath); err != nil {
		return fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}
	e.logger.Debug("backed up launcher profiles", "path", e.path, "backup", backupPath)

	newPath := prefixedPath(e.path, newPrefix)
	f, err := e.fs.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = e.fs.Remove(newPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		_ = e.fs.Remove(newPath)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	e.logger.Debug("wrote new launcher profiles", "path", newPath, "bytes", len(data))

	// new_<name> stays on disk if the replace fails; it may be the only
	// complete copy of the new content.
	if err := e.copyFile(newPath, e.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrWriteFailed, e.path, err)
	}
	e.logger.Debug("replaced launcher profiles", "path", e.path)

	if err := e.fs.Remove(newPath); err != nil {
		e.logger.Debug("failed to remove new launcher profiles", "path", newPath, "error", err)
	}

	return nil
}

// copyFile copies src to dst, overwriting dst. With removeBeforeCopy set the
// destination is deleted first for filesystems that will not overwrite in place.
func (e *Editor) copyFile(src, dst string) error {
	if e.removeBeforeCopy {
		_ = e.fs.Remove(dst)
	}

	in, err := e.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := e.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	return nil
}
