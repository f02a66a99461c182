// Package automaton implements whole-word multi-pattern search with an
// Aho-Corasick automaton. Nodes live in a single arena addressed by index;
// the root is node 0 and is its own failure target.
//
// Offsets are rune offsets into the searched text, not byte offsets.
package automaton

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned by Build when a pattern is the empty string.
// An empty pattern would terminate at the root and match between every rune.
var ErrEmptyPattern = errors.New("empty pattern")

const root int32 = 0

// node is one distinct prefix shared by one or more patterns.
type node struct {
	children map[rune]int32
	fail     int32
	depth    int32
	terminal []int // pattern indices ending exactly here, in input order
	end      bool
}

// Automaton is a fully linked Aho-Corasick automaton. It is read-only after
// Build and safe for concurrent Search calls.
type Automaton struct {
	nodes    []node
	patterns [][]rune
	source   []string
}

// Build compiles patterns into an automaton. Pattern order is significant:
// a pattern's index in the slice is its identifier in every Result.
// Duplicate strings are kept as distinct indices. Errors number patterns
// from 1, as the report does.
func Build(patterns []string) (*Automaton, error) {
	a := &Automaton{
		nodes:    make([]node, 1, 1+totalRunes(patterns)),
		patterns: make([][]rune, len(patterns)),
		source:   make([]string, len(patterns)),
	}
	a.nodes[root] = node{fail: root}

	for i, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("pattern %d: %w", i+1, ErrEmptyPattern)
		}
		a.source[i] = p
		a.patterns[i] = []rune(p)
		a.insert(i)
	}
	a.link()
	return a, nil
}

// insert walks pattern i from the root, creating nodes as needed.
func (a *Automaton) insert(i int) {
	cur := root
	for _, c := range a.patterns[i] {
		next, ok := a.nodes[cur].children[c]
		if !ok {
			next = int32(len(a.nodes))
			a.nodes = append(a.nodes, node{
				fail:  root,
				depth: a.nodes[cur].depth + 1,
			})
			if a.nodes[cur].children == nil {
				a.nodes[cur].children = make(map[rune]int32)
			}
			a.nodes[cur].children[c] = next
		}
		cur = next
	}
	a.nodes[cur].end = true
	a.nodes[cur].terminal = append(a.nodes[cur].terminal, i)
}

// link computes failure links breadth-first. Every node at depth d is
// linked before any node at depth d+1 is dequeued.
func (a *Automaton) link() {
	a.nodes[root].fail = root

	queue := make([]int32, 0, len(a.nodes))
	for _, child := range a.nodes[root].children {
		a.nodes[child].fail = root
		queue = append(queue, child)
	}

	for head := 0; head < len(queue); head++ {
		n := queue[head]
		for c, child := range a.nodes[n].children {
			queue = append(queue, child)

			f := a.nodes[n].fail
			for f != root {
				if _, ok := a.nodes[f].children[c]; ok {
					break
				}
				f = a.nodes[f].fail
			}
			if target, ok := a.nodes[f].children[c]; ok {
				a.nodes[child].fail = target
			} else {
				a.nodes[child].fail = root
			}
		}
	}
}

// PatternCount returns the number of patterns the automaton was built from.
func (a *Automaton) PatternCount() int {
	return len(a.source)
}

// Pattern returns the pattern string at idx, or "" if idx is out of range.
func (a *Automaton) Pattern(idx int) string {
	if idx < 0 || idx >= len(a.source) {
		return ""
	}
	return a.source[idx]
}

// Patterns returns a copy of the pattern set in input order.
func (a *Automaton) Patterns() []string {
	out := make([]string, len(a.source))
	copy(out, a.source)
	return out
}

// NodeCount returns the number of trie nodes including the root.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}

func totalRunes(patterns []string) int {
	n := 0
	for _, p := range patterns {
		n += len(p)
	}
	return n
}
