package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corey/wordscan/internal/app"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// reportOpts controls how scan results are rendered.
type reportOpts struct {
	json      bool
	countOnly bool
	useColor  bool
	withFile  bool // prefix lines with the file path (multi-file scans)
}

// writeReport renders one file's result. The classic form is one line per
// pattern in input order:
//
//	Pattern 1 occurs at positions: 7, 12
//	Pattern 2 occurs at positions: no occurrences found
func writeReport(w io.Writer, fr *app.FileResult, patterns []string, opts reportOpts) error {
	if opts.json {
		return writeJSONReport(w, fr, patterns)
	}

	var sb strings.Builder
	for i := range patterns {
		if opts.withFile {
			sb.WriteString(paint(opts.useColor, colorCyan, fr.Path))
			sb.WriteString(": ")
		}
		fmt.Fprintf(&sb, "Pattern %d occurs at positions: ", i+1)

		offs := fr.Result.Offsets(i)
		switch {
		case opts.countOnly:
			sb.WriteString(strconv.Itoa(len(offs)))
		case len(offs) == 0:
			sb.WriteString(paint(opts.useColor, colorGray, "no occurrences found"))
		default:
			sb.WriteString(paint(opts.useColor, colorGreen, joinOffsets(offs)))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// jsonReport is the --json form of a file result. One object per line.
type jsonReport struct {
	File     string        `json:"file"`
	Runes    int           `json:"runes"`
	Matches  int           `json:"matches"`
	Patterns []jsonPattern `json:"patterns"`
}

type jsonPattern struct {
	Index   int    `json:"index"`
	Pattern string `json:"pattern"`
	Offsets []int  `json:"offsets"`
}

func writeJSONReport(w io.Writer, fr *app.FileResult, patterns []string) error {
	rep := jsonReport{
		File:     fr.Path,
		Runes:    fr.Runes,
		Matches:  fr.Result.Total(),
		Patterns: make([]jsonPattern, len(patterns)),
	}
	for i, p := range patterns {
		offs := fr.Result.Offsets(i)
		if offs == nil {
			offs = []int{}
		}
		rep.Patterns[i] = jsonPattern{Index: i, Pattern: p, Offsets: offs}
	}
	return json.NewEncoder(w).Encode(rep)
}

func joinOffsets(offs []int) string {
	parts := make([]string, len(offs))
	for i, o := range offs {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ", ")
}

func paint(on bool, color, s string) string {
	if !on {
		return s
	}
	return color + s + colorReset
}
