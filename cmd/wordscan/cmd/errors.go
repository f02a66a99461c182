package cmd

import (
	"errors"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/wordscan/internal/domain/automaton"
	"github.com/corey/wordscan/internal/ports"
)

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns ErrTimeout when it cannot acquire the file lock within the
// configured deadline.
func isDBLockError(err error) bool {
	return errors.Is(err, bolt.ErrTimeout)
}

// describeError turns well-known errors into actionable messages.
func describeError(err error) string {
	switch {
	case isDBLockError(err):
		return "pattern-set database is locked by another wordscan process\n" +
			"  → wait for it to finish (a --watch scan holds the lock while running)\n" +
			"  → find it:  ps aux | grep 'wordscan'"
	case errors.Is(err, automaton.ErrEmptyPattern):
		return err.Error() + " (patterns must contain at least one character)"
	case errors.Is(err, ports.ErrSetNotFound):
		return err.Error() + " (see: wordscan sets list)"
	default:
		return err.Error()
	}
}
