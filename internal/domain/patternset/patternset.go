// Package patternset loads, validates, and fingerprints ordered pattern
// lists. Order is preserved everywhere: a pattern's position is its identity
// in search results.
package patternset

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/corey/wordscan/internal/domain/automaton"
)

// MaxLineBytes is the longest line ParseLines accepts.
const MaxLineBytes = 1024 * 1024

// yamlSet is the mapping form of a YAML pattern file.
type yamlSet struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// Validate returns an error naming the first empty pattern, if any.
func Validate(patterns []string) error {
	for i, p := range patterns {
		if p == "" {
			return fmt.Errorf("pattern %d: %w", i+1, automaton.ErrEmptyPattern)
		}
	}
	return nil
}

// Fingerprint hashes the ordered pattern list. Two sets with the same
// patterns in a different order have different fingerprints.
func Fingerprint(patterns []string) uint64 {
	d := xxhash.New()
	for _, p := range patterns {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// LoadFile reads a pattern file. Files ending in .yaml or .yml are parsed as
// YAML (a list of strings, or a mapping with a "patterns" list); anything
// else is read as plain text with one pattern per line.
func LoadFile(fsys fs.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read patterns %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		patterns, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return patterns, nil
	default:
		patterns, err := ParseLines(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return patterns, nil
	}
}

// ParseYAML accepts either a top-level sequence of strings or a mapping with
// a "patterns" key.
func ParseYAML(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	top := doc.Content[0]
	switch top.Kind {
	case yaml.SequenceNode:
		var patterns []string
		if err := top.Decode(&patterns); err != nil {
			return nil, err
		}
		return patterns, nil
	case yaml.MappingNode:
		var set yamlSet
		if err := top.Decode(&set); err != nil {
			return nil, err
		}
		return set.Patterns, nil
	default:
		return nil, fmt.Errorf("expected a list of patterns, got %s", kindName(top.Kind))
	}
}

// ParseLines splits plain text into patterns, one per line. Blank lines are
// skipped; a trailing carriage return is dropped; other whitespace is kept.
// A line longer than MaxLineBytes is an error.
func ParseLines(data []byte) ([]string, error) {
	var patterns []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	lines := 0
	for sc.Scan() {
		lines++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lines+1, err)
	}
	return patterns, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
