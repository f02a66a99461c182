package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/corey/wordscan/internal/adapters/textfile"
	"github.com/corey/wordscan/internal/domain/automaton"
	"github.com/corey/wordscan/internal/ports"
)

// FileResult is the outcome of scanning one file.
type FileResult struct {
	Path    string
	Runes   int
	Result  automaton.Result
	Elapsed time.Duration
}

// ScanFile reads path and searches it with m.
func (a *App) ScanFile(m ports.PatternMatcher, path string) (*FileResult, error) {
	text, err := textfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res := m.Search(text)
	fr := &FileResult{
		Path:    path,
		Runes:   len([]rune(text)),
		Result:  res,
		Elapsed: time.Since(start),
	}
	a.Log.Debug("scanned", "file", path, "runes", fr.Runes, "matches", res.Total(), "elapsed", fr.Elapsed)
	return fr, nil
}

// ScanFiles searches every path with the shared matcher, at most
// Config.Workers at a time. Results keep the order of paths. The first read
// error cancels the remaining work and is returned.
func (a *App) ScanFiles(ctx context.Context, m ports.PatternMatcher, paths []string) ([]*FileResult, error) {
	results := make([]*FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	workers := a.Config.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fr, err := a.ScanFile(m, path)
			if err != nil {
				return fmt.Errorf("scan %s: %w", path, err)
			}
			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
