package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	p := NewPaths(filepath.Join("/project", ".wordscan"))
	assert.Equal(t, filepath.Join("/project", ".wordscan"), p.Root)
	assert.Equal(t, filepath.Join("/project", ".wordscan", "wordscan.db"), p.DB)
}

func TestEnsureDirs(t *testing.T) {
	p := NewPaths(filepath.Join(t.TempDir(), "nested", ".wordscan"))

	// First call creates directories.
	require.NoError(t, p.EnsureDirs())
	info, err := os.Stat(p.Root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is idempotent — no error.
	require.NoError(t, p.EnsureDirs())
}
