package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/gomdparse/internal/logging"
)

// watchDebounce collapses the bursts of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// watchFile calls onChange each time path is written, created or renamed
// into place, until ctx is done. The parent directory is watched so that
// editors replacing the file are seen too.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func(context.Context)) error {
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Error("close file watcher", logging.FieldError, err)
		}
	}()

	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching for changes", logging.FieldPath, path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("change detected", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())
				pending = time.After(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", logging.FieldError, err)

		case <-pending:
			pending = nil
			onChange(ctx)
		}
	}
}
