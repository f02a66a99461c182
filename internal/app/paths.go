package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the wordscan home directory.
// All fields are pre-computed strings.
type Paths struct {
	Root string // .wordscan/
	DB   string // .wordscan/wordscan.db
}

// NewPaths constructs all resolved paths from a home directory.
func NewPaths(home string) *Paths {
	return &Paths{
		Root: home,
		DB:   filepath.Join(home, "wordscan.db"),
	}
}

// EnsureDirs creates the home directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
