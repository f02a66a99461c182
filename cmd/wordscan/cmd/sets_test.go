package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/wordscan/internal/app"
	"github.com/corey/wordscan/internal/ports"
)

func TestSets_Lifecycle(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	file := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(file, []byte("alpha\nbeta\n"), 0644))

	require.NoError(t, saveSet(a, "greek", app.PatternSource{File: file, Inline: []string{"gamma"}}, &out))
	assert.Contains(t, out.String(), `saved "greek" (3 patterns)`)

	out.Reset()
	require.NoError(t, listSets(a, &out))
	assert.Contains(t, out.String(), "1 sets")
	assert.Contains(t, out.String(), "greek")

	out.Reset()
	require.NoError(t, showSet(a, "greek", &out))
	assert.Equal(t, "1\talpha\n2\tbeta\n3\tgamma\n", out.String())

	out.Reset()
	require.NoError(t, deleteSet(a, "greek", &out))
	err := showSet(a, "greek", &out)
	assert.True(t, errors.Is(err, ports.ErrSetNotFound))
}

func TestSets_SaveRequiresPatterns(t *testing.T) {
	a := newTestApp(t)
	assert.ErrorContains(t, saveSet(a, "x", app.PatternSource{}, &bytes.Buffer{}), "no patterns")
}

func TestShowConfig(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer
	require.NoError(t, showConfig(a, &out))
	assert.Contains(t, out.String(), "Engine:     native")
	assert.Contains(t, out.String(), "(not created)")
}
