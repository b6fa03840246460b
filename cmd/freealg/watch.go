package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFiles calls changed with the path of every watched file that is written
// or recreated, until ctx is done. Directories are watched rather than files so
// that editors which replace a file on save are still seen.
func watchFiles(ctx context.Context, logger *slog.Logger, paths []string, changed func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		watched[filepath.Clean(p)] = true
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
		logger.Debug("Watching directory", slog.String("path", dir))
	}
	logger.Info("Watching scenarios", slog.Int("files", len(watched)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if !watched[name] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			logger.Info("Scenario changed", slog.String("path", name))
			changed(name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", slog.String("error", err.Error()))
		}
	}
}
