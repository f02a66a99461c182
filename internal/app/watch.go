package app

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/corey/wordscan/internal/ports"
)

// Watch scans paths once, then rescans each file whenever w reports a
// change, until ctx is done. report is called from a single goroutine.
// Rescan errors (e.g. a file removed mid-save) are logged and skipped.
func (a *App) Watch(ctx context.Context, w ports.Watcher, m ports.PatternMatcher, paths []string, report func(*FileResult)) error {
	initial, err := a.ScanFiles(ctx, m, paths)
	if err != nil {
		return err
	}
	for _, fr := range initial {
		report(fr)
	}

	// Map absolute paths reported by the watcher back to what the user typed.
	display := make(map[string]string, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		display[abs] = p
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]bool)
	)
	wake := make(chan struct{}, 1)
	if err := w.Watch(paths, func(path string) {
		mu.Lock()
		pending[path] = true
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	defer w.Stop()
	a.Log.Info("watching", "files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
		}

		mu.Lock()
		batch := make([]string, 0, len(pending))
		for abs := range pending {
			batch = append(batch, abs)
		}
		clear(pending)
		mu.Unlock()
		sort.Strings(batch)

		for _, abs := range batch {
			path, ok := display[abs]
			if !ok {
				path = abs
			}
			fr, err := a.ScanFile(m, path)
			if err != nil {
				a.Log.Warn("rescan failed", "file", path, "err", err)
				continue
			}
			report(fr)
		}
	}
}
