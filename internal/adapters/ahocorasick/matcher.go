// Package ahocorasick provides a PatternMatcher backed by the
// petar-dambovaliev/aho-corasick library. It applies the same reverification
// and whole-word rules as the native automaton and reports rune offsets, so
// the two engines are interchangeable.
package ahocorasick

import (
	"fmt"
	"sort"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/corey/wordscan/internal/domain/automaton"
)

// LibraryMatcher wraps a DFA-compiled library automaton.
// The library is built over the distinct pattern strings; each distinct
// string fans out to every input index that carries it.
type LibraryMatcher struct {
	automaton aho.AhoCorasick
	patterns  [][]rune
	owners    [][]int // distinct pattern id -> input indices, ascending
	count     int
}

// NewLibraryMatcher compiles patterns. Empty patterns are rejected with
// automaton.ErrEmptyPattern, matching automaton.Build.
func NewLibraryMatcher(patterns []string) (*LibraryMatcher, error) {
	m := &LibraryMatcher{
		patterns: make([][]rune, len(patterns)),
		count:    len(patterns),
	}

	distinct := make([]string, 0, len(patterns))
	ids := make(map[string]int, len(patterns))
	for i, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("pattern %d: %w", i+1, automaton.ErrEmptyPattern)
		}
		m.patterns[i] = []rune(p)
		id, ok := ids[p]
		if !ok {
			id = len(distinct)
			ids[p] = id
			distinct = append(distinct, p)
			m.owners = append(m.owners, nil)
		}
		m.owners[id] = append(m.owners[id], i)
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(distinct)
	return m, nil
}

// PatternCount returns the number of input patterns, duplicates included.
func (m *LibraryMatcher) PatternCount() int {
	return m.count
}

// Search returns whole-word occurrences keyed by input pattern index.
func (m *LibraryMatcher) Search(text string) automaton.Result {
	res := make(automaton.Result, m.count)
	for i := 0; i < m.count; i++ {
		res[i] = []int{}
	}
	if m.count == 0 || text == "" {
		return res
	}

	runes, runeAt := runeIndex(text)
	iter := m.automaton.IterOverlappingByte([]byte(text))
	for next := iter.Next(); next != nil; next = iter.Next() {
		hit := *next
		start, end := runeAt[hit.Start()], runeAt[hit.End()]
		if start < 0 || end < 0 {
			continue // match split a multi-byte rune
		}
		for _, p := range m.owners[hit.Pattern()] {
			if !m.accept(runes, p, start, end) {
				continue
			}
			res[p] = append(res[p], start)
		}
	}

	for p, offs := range res {
		res[p] = dedupSorted(offs)
	}
	return res
}

// accept mirrors the native matcher: reverify, then whole-word unless the
// pattern is a single rune.
func (m *LibraryMatcher) accept(runes []rune, p, start, end int) bool {
	pat := m.patterns[p]
	if end-start != len(pat) || end > len(runes) {
		return false
	}
	for k := range pat {
		if runes[start+k] != pat[k] {
			return false
		}
	}
	if len(pat) == 1 {
		return true
	}
	return automaton.WholeWord(runes, start, end)
}

// runeIndex decodes text and maps every byte offset to a rune offset.
// Offsets inside a multi-byte rune map to -1.
func runeIndex(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	runeAt := make([]int, len(text)+1)
	for i := range runeAt {
		runeAt[i] = -1
	}
	for b, r := range text {
		runeAt[b] = len(runes)
		runes = append(runes, r)
	}
	runeAt[len(text)] = len(runes)
	return runes, runeAt
}

func dedupSorted(offs []int) []int {
	if len(offs) < 2 {
		return offs
	}
	sort.Ints(offs)
	out := offs[:1]
	for _, o := range offs[1:] {
		if o != out[len(out)-1] {
			out = append(out, o)
		}
	}
	return out
}
