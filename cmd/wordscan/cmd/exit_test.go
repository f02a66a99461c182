package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	bolt "go.etcd.io/bbolt"

	"github.com/corey/wordscan/internal/domain/automaton"
	"github.com/corey/wordscan/internal/ports"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(scanExit{0}))
	assert.Equal(t, 1, ExitCode(scanExit{1}))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("wrapped: %w", scanExit{2})))
	assert.Equal(t, -1, ExitCode(errors.New("boom")))
	assert.Equal(t, "no match", scanExit{1}.Error())
}

func TestDescribeError(t *testing.T) {
	assert.Contains(t, describeError(fmt.Errorf("open store: bbolt open: %w", bolt.ErrTimeout)), "locked")
	assert.NotContains(t, describeError(errors.New("read patterns: i/o timeout")), "locked",
		"only the bbolt lock timeout is a lock error")
	assert.False(t, isDBLockError(nil))
	assert.Contains(t, describeError(fmt.Errorf("pattern 2: %w", automaton.ErrEmptyPattern)), "at least one character")
	assert.Contains(t, describeError(fmt.Errorf("%q: %w", "x", ports.ErrSetNotFound)), "sets list")
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}
