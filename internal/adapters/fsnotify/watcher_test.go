package fsnotify

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/wordscan/internal/ports"
)

// =============================================================================
// fsnotify Watcher Adapter — detect changes to scanned text files
// Expectation: callback fires for the watched file only, bursts collapse,
// Stop is idempotent and silences further callbacks.
// =============================================================================

var _ ports.Watcher = (*Watcher)(nil)

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func newTarget(t *testing.T) (dir, file string) {
	t.Helper()
	dir = t.TempDir()
	file = filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(file, []byte("original"), 0644))
	return dir, file
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	_, file := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{file}, func(path string) { changed <- path }))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("modified"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for file change")
	assert.Equal(t, file, path)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir, file := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{file}, func(path string) { changed <- path }))

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "sibling file must not trigger a callback")
}

func TestWatcher_Debounce(t *testing.T) {
	_, file := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)
	w.debounce = time.Second
	defer w.Stop()

	changed := make(chan string, 100)
	require.NoError(t, w.Watch([]string{file}, func(path string) { changed <- path }))

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte{byte('a' + i)}, 0644))
	}

	_, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok)
	time.Sleep(200 * time.Millisecond)
	assert.Len(t, changed, 0, "burst should collapse into one callback")
}

func TestWatcher_RejectsMissingAndDirs(t *testing.T) {
	dir, _ := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch([]string{filepath.Join(dir, "nope.txt")}, func(string) {}))
	assert.ErrorContains(t, w.Watch([]string{dir}, func(string) {}), "is a directory")
}

func TestWatcher_StopIdempotent(t *testing.T) {
	_, file := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{file}, func(path string) { changed <- path }))

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	require.NoError(t, os.WriteFile(file, []byte("after stop"), 0644))
	_, ok := waitForCallback(changed, 200*time.Millisecond)
	assert.False(t, ok, "no callbacks after Stop")
}

func TestWatcher_StopWaitsForCallback(t *testing.T) {
	_, file := newTarget(t)

	w, err := NewWatcher()
	require.NoError(t, err)

	entered := make(chan struct{}, 1)
	var finished atomic.Bool
	require.NoError(t, w.Watch([]string{file}, func(string) {
		select {
		case entered <- struct{}{}:
		default:
		}
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
	}))

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("modified"), 0644))

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("expected callback for file change")
	}

	require.NoError(t, w.Stop())
	assert.True(t, finished.Load(), "Stop returned while a callback was still running")
}
