package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for new files.
const DefaultFileMode fs.FileMode = 0o644

// WriteAtomic writes content to a temporary file next to path and renames it
// over path. On failure path is left untouched. A zero mode means
// DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte, mode fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode.Perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	done = true
	return nil
}

// ReplaceOptions controls Replace.
type ReplaceOptions struct {
	// Backup keeps the previous content in a sidecar file.
	Backup bool
}

// Replace writes content over the file described by info, keeping its mode.
// It fails with ErrModified if the file changed after info was taken.
func Replace(ctx context.Context, info *FileInfo, content []byte, opts ReplaceOptions) error {
	modified, err := Modified(info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrModified, info.Path)
	}

	if opts.Backup {
		if _, err := CreateBackup(ctx, info.Path); err != nil {
			return err
		}
	}
	return WriteAtomic(ctx, info.Path, content, info.Mode)
}
