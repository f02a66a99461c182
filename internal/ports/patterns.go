package ports

import "github.com/corey/wordscan/internal/domain/automaton"

// PatternMatcher finds whole-word occurrences of a fixed pattern set in a
// single pass over the text. Implementations are built once and must be
// safe for concurrent Search calls.
//
// Offsets in the returned Result are rune offsets. Every pattern index is
// present in the Result, possibly with an empty list.
type PatternMatcher interface {
	// Search scans text and returns pattern index -> ascending start offsets.
	Search(text string) automaton.Result

	// PatternCount returns the number of patterns the matcher was built from.
	PatternCount() int
}
