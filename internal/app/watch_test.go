package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWatcher records the watched paths and lets the test fire changes.
type fakeWatcher struct {
	mu       sync.Mutex
	paths    []string
	onChange func(string)
	stopped  bool
	ready    chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{ready: make(chan struct{})}
}

func (f *fakeWatcher) Watch(paths []string, onChange func(string)) error {
	f.mu.Lock()
	f.paths = paths
	f.onChange = onChange
	f.mu.Unlock()
	close(f.ready)
	return nil
}

func (f *fakeWatcher) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

func (f *fakeWatcher) fire(path string) {
	f.mu.Lock()
	cb := f.onChange
	f.mu.Unlock()
	cb(path)
}

func TestWatch_RescansOnChange(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "text.txt", "no match here")

	m, err := NewMatcher(EngineNative, []string{"he"})
	require.NoError(t, err)

	reports := make(chan *FileResult, 10)
	fw := newFakeWatcher()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, fw, m, []string{path}, func(fr *FileResult) { reports <- fr })
	}()

	first := <-reports
	assert.Equal(t, []int{}, first.Result.Offsets(0))

	<-fw.ready
	writeFile(t, dir, "text.txt", "and he said")
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	fw.fire(abs)

	select {
	case fr := <-reports:
		assert.Equal(t, path, fr.Path)
		assert.Equal(t, []int{4}, fr.Result.Offsets(0))
	case <-time.After(2 * time.Second):
		t.Fatal("expected a rescan report")
	}

	cancel()
	require.NoError(t, <-done)
	fw.mu.Lock()
	assert.True(t, fw.stopped)
	fw.mu.Unlock()
}

func TestWatch_InitialScanError(t *testing.T) {
	a := newTestApp(t)
	m, err := NewMatcher(EngineNative, []string{"he"})
	require.NoError(t, err)

	err = a.Watch(context.Background(), newFakeWatcher(), m,
		[]string{filepath.Join(t.TempDir(), "missing.txt")}, func(*FileResult) {})
	assert.Error(t, err)
}

func TestWatch_RescansEveryFileInBurst(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()

	const n = 40
	paths := make([]string, n)
	for i := range paths {
		paths[i] = writeFile(t, dir, fmt.Sprintf("f%02d.txt", i), "no match here")
	}

	m, err := NewMatcher(EngineNative, []string{"he"})
	require.NoError(t, err)

	reports := make(chan *FileResult, 4*n)
	fw := newFakeWatcher()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, fw, m, paths, func(fr *FileResult) { reports <- fr })
	}()

	for i := 0; i < n; i++ {
		<-reports
	}
	<-fw.ready

	for i, p := range paths {
		writeFile(t, dir, fmt.Sprintf("f%02d.txt", i), "and he said")
		abs, err := filepath.Abs(p)
		require.NoError(t, err)
		fw.fire(abs)
	}

	rescanned := make(map[string]bool)
	deadline := time.After(5 * time.Second)
	for len(rescanned) < n {
		select {
		case fr := <-reports:
			if len(fr.Result.Offsets(0)) == 1 {
				rescanned[fr.Path] = true
			}
		case <-deadline:
			t.Fatalf("rescanned %d of %d changed files", len(rescanned), n)
		}
	}

	cancel()
	require.NoError(t, <-done)
	for _, p := range paths {
		assert.True(t, rescanned[p], "%s not rescanned", p)
	}
}
