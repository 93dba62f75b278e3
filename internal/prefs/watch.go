package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reports changes to the given files. It watches their parent
// directory so atomic renames and sqlite WAL files are seen. Bursts of
// events collapse into one pending signal. The returned channel is closed
// once ctx is done.
func Watch(ctx context.Context, log *zap.Logger, files ...string) (<-chan struct{}, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("watch: no files")
	}
	if log == nil {
		log = zap.NewNop()
	}
	dir := filepath.Dir(files[0])
	names := make(map[string]struct{}, len(files))
	for _, f := range files {
		if filepath.Dir(f) != dir {
			return nil, fmt.Errorf("watch: %s is not in %s", f, dir)
		}
		names[filepath.Base(f)] = struct{}{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("watch: mkdir %s: %w", dir, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching preferences", zap.String("dir", dir), zap.Strings("files", files))

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if _, match := names[filepath.Base(ev.Name)]; !match {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("preferences watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
