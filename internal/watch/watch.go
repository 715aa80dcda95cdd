// Package watch rebuilds the catalog when the source directory changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"travelog/internal/logging"
	"travelog/internal/scan"
)

// DefaultDebounce batches the event bursts produced by camera imports and
// bulk copies into a single rebuild.
const DefaultDebounce = 2 * time.Second

// Watch observes dir for media changes and invokes rebuild after each
// debounced burst. A failing rebuild is logged and watching continues, since
// changes often arrive mid-copy. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, dir string, debounce time.Duration, logger *slog.Logger, rebuild func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger = logging.NewComponentLogger(logger, "watch")
	logger.Info("watching source directory",
		logging.String("path", dir),
		logging.Duration("debounce", debounce),
	)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("source change",
				logging.String("op", event.Op.String()),
				logging.String("path", event.Name),
			)
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timerC:
				default:
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.Error(err))

		case <-timerC:
			timer = nil
			timerC = nil
			if err := rebuild(ctx); err != nil {
				logger.Warn("rebuild failed, still watching", logging.Error(err))
			}
		}
	}
}

// relevant filters events down to media file changes. Dotfiles and files of
// unrecognized kinds never affect the catalog.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return scan.KindForExt(filepath.Ext(base)) != scan.KindOther
}
