package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it changes and passes every valid result
// to onChange. Invalid edits are logged and skipped, so a half-saved file
// never reaches the game. It blocks until ctx is done.
//
// The parent directory is watched rather than the file, because most
// editors save by renaming a temporary file over the original.
func Watch(ctx context.Context, path string, onChange func(Config), logger *log.Logger) error {
	path = filepath.Clean(ExpandHome(path))

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != path {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
				// Truncated mid-save; the next write brings the content.
				continue
			}
			cfg, err := LoadFile(path)
			if err != nil {
				if logger != nil {
					logger.Warn("config reload failed", "path", path, "err", err)
				}
				continue
			}
			if logger != nil {
				logger.Info("config reloaded", "path", path)
			}
			onChange(cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Error("config watch", "err", err)
			}
		}
	}
}
