package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no trailing newline", "ushers he saw", "ushers he saw\n"},
		{"trailing newline", "a\nb\n", "a\nb\n"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"blank lines kept", "a\n\nb", "a\n\nb\n"},
		{"lone cr", "a\rb\r", "a\nb\n"},
		{"lone cr no trailing", "a\rb", "a\nb\n"},
		{"mixed endings", "a\r\rb\nc\r\n", "a\n\nb\nc\n"},
		{"cr at eof", "he\r", "he\n"},
		{"unicode", "日本\r語", "日本\n語\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	got, err := Read(strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, long+"\n", got)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("he saw\nshe"), 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "he saw\nshe\n", got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}
