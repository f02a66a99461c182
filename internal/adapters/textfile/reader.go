// Package textfile assembles a text body from a line-oriented source.
// Every line, including the last, is terminated with a single "\n" in the
// result; "\r\n" and lone "\r" line endings are normalized to "\n".
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read assembles the full text of r line by line. A line ends at "\n",
// "\r\n", or a lone "\r".
func Read(r io.Reader) (string, error) {
	var sb strings.Builder
	br := bufio.NewReader(r)
	open := false // bytes written since the last terminator
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if open {
				sb.WriteByte('\n')
			}
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch b {
		case '\n':
			sb.WriteByte('\n')
			open = false
		case '\r':
			sb.WriteByte('\n')
			open = false
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = br.Discard(1)
			}
		default:
			sb.WriteByte(b)
			open = true
		}
	}
}

// ReadFile reads the named file. "-" reads standard input.
func ReadFile(path string) (string, error) {
	if path == "-" {
		text, err := Read(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return text, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}
