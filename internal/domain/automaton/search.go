package automaton

import (
	"sort"
	"unicode"
)

// Result maps a pattern index to the ascending rune offsets where that
// pattern starts as an accepted match.
type Result map[int][]int

// Offsets returns the offsets for pattern p. An absent key is empty.
func (r Result) Offsets(p int) []int {
	return r[p]
}

// Total returns the number of accepted matches across all patterns.
func (r Result) Total() int {
	n := 0
	for _, offs := range r {
		n += len(offs)
	}
	return n
}

// Match is a single accepted occurrence.
type Match struct {
	Pattern int // index into the pattern set
	Start   int // rune offset, inclusive
	End     int // rune offset, exclusive
}

// Search scans text once and returns every whole-word occurrence of every
// pattern. Every pattern index is present in the result, possibly with an
// empty list. Search does not modify the automaton.
func (a *Automaton) Search(text string) Result {
	res := make(Result, len(a.patterns))
	for i := range a.patterns {
		res[i] = []int{}
	}
	a.scan([]rune(text), func(p, start int) {
		offs := res[p]
		if n := len(offs); n > 0 && offs[n-1] >= start {
			return
		}
		res[p] = append(offs, start)
	})
	return res
}

// Matches returns accepted occurrences in the order they are found: by end
// offset, then longest pattern first at the same end.
func (a *Automaton) Matches(text string) []Match {
	var out []Match
	a.scan([]rune(text), func(p, start int) {
		out = append(out, Match{Pattern: p, Start: start, End: start + len(a.patterns[p])})
	})
	return out
}

// scan drives the automaton over text and calls emit for each accepted
// (pattern, start) pair.
func (a *Automaton) scan(text []rune, emit func(p, start int)) {
	cur := root
	for i, c := range text {
		for cur != root {
			if _, ok := a.nodes[cur].children[c]; ok {
				break
			}
			cur = a.nodes[cur].fail
		}
		next, ok := a.nodes[cur].children[c]
		if !ok {
			cur = root
			continue
		}
		cur = next

		for n := cur; n != root; n = a.nodes[n].fail {
			if !a.nodes[n].end {
				continue
			}
			for _, p := range a.nodes[n].terminal {
				if start, ok := a.accept(text, p, i); ok {
					emit(p, start)
				}
			}
		}
	}
}

// accept checks pattern p ending at rune i. It recomputes the start offset,
// reverifies the text against the pattern, and applies the word-boundary
// rule. Single-rune patterns skip the boundary check.
func (a *Automaton) accept(text []rune, p, i int) (int, bool) {
	pat := a.patterns[p]
	start := i - len(pat) + 1
	if start < 0 {
		return 0, false
	}
	if !equalRunes(text[start:i+1], pat) {
		return 0, false
	}
	if len(pat) == 1 {
		return start, true
	}
	return start, WholeWord(text, start, i+1)
}

// WholeWord reports whether text[start:end] is bounded on both sides by a
// non-letter or by the edge of the text.
func WholeWord(text []rune, start, end int) bool {
	if start > 0 && unicode.IsLetter(text[start-1]) {
		return false
	}
	if end < len(text) && unicode.IsLetter(text[end]) {
		return false
	}
	return true
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Indices returns the pattern indices of r in ascending order.
func (r Result) Indices() []int {
	keys := make([]int, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
