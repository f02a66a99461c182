// Package prompt collects a source file name and a pattern list
// interactively, one answer per line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadCount is returned when the pattern count is not a non-negative integer.
var ErrBadCount = errors.New("pattern count must be a non-negative integer")

// Answers holds what the user entered.
type Answers struct {
	SourceFile string
	Patterns   []string
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask runs the full dialogue: source file, pattern count, then each pattern.
// When askFile is false the source-file question is skipped.
func (p *Prompter) Ask(askFile bool) (*Answers, error) {
	var a Answers
	var err error

	if askFile {
		a.SourceFile, err = p.line("Enter the source file for the text: ")
		if err != nil {
			return nil, err
		}
	}

	raw, err := p.line("Enter the number of patterns: ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%q: %w", raw, ErrBadCount)
	}

	a.Patterns = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pat, err := p.line(fmt.Sprintf("Enter pattern %d: ", i))
		if err != nil {
			return nil, err
		}
		a.Patterns = append(a.Patterns, pat)
	}
	return &a, nil
}

// line prints question and returns the next input line without its
// terminator. EOF before any input is io.ErrUnexpectedEOF.
func (p *Prompter) line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	s, err := p.in.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", io.ErrUnexpectedEOF
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
