// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import (
	"errors"
	"time"
)

// ErrSetNotFound is returned by SetStore.LoadSet for an unknown name.
var ErrSetNotFound = errors.New("pattern set not found")

// SetStore persists named pattern sets so a scan can reuse them by name.
// Only the pattern strings are stored; automata are always rebuilt.
//
// Crash safety: SaveSet must be transactional. A crash mid-write must not
// corrupt previously committed sets.
type SetStore interface {
	// SaveSet stores patterns under name, overwriting any prior set.
	SaveSet(name string, set *PatternSet) error

	// LoadSet retrieves the set stored under name.
	// Returns ErrSetNotFound if no such set exists.
	LoadSet(name string) (*PatternSet, error)

	// ListSets returns all stored sets ordered by name.
	ListSets() ([]*PatternSet, error)

	// DeleteSet removes a set. Idempotent: deleting a nonexistent set is
	// not an error.
	DeleteSet(name string) error
}

// PatternSet is an ordered, named list of search patterns.
type PatternSet struct {
	Name        string    `json:"name"`
	Patterns    []string  `json:"patterns"`
	Fingerprint uint64    `json:"fingerprint"` // xxhash of the ordered patterns
	SavedAt     time.Time `json:"saved_at"`
}
