package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/corey/wordscan/internal/adapters/fsnotify"
	"github.com/corey/wordscan/internal/adapters/prompt"
	"github.com/corey/wordscan/internal/app"
)

var (
	scanPatterns []string
	scanFile     string
	scanSet      string
	scanEngine   string
	scanJSON     bool
	scanCount    bool
	scanQuiet    bool
	scanWatch    bool
	scanNoColor  bool
	scanColor    string
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [file ...]",
	Short: "Find whole-word pattern occurrences in files",
	Long: "Scans each file once and reports, for every pattern in input order, the rune\n" +
		"offsets where it occurs as a whole word. Single-character patterns match anywhere.\n" +
		"With no patterns given, prompts for them (and for the file, if none is given).",
	Args: cobra.ArbitraryArgs,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringArrayVarP(&scanPatterns, "pattern", "e", nil, "Pattern to search for (repeatable)")
	f.StringVarP(&scanFile, "patterns-file", "f", "", "Read patterns from a file (.yaml/.yml or one per line)")
	f.StringVarP(&scanSet, "set", "s", "", "Use a saved pattern set")
	f.StringVar(&scanEngine, "engine", "", "Matching engine: native or library (default from config)")
	f.BoolVar(&scanJSON, "json", false, "Emit one JSON object per file")
	f.BoolVarP(&scanCount, "count", "c", false, "Print match counts instead of positions")
	f.BoolVarP(&scanQuiet, "quiet", "q", false, "Quiet mode (exit code only)")
	f.BoolVarP(&scanWatch, "watch", "w", false, "Rescan files whenever they change")
	f.BoolVar(&scanNoColor, "no-color", false, "Suppress color output")
	f.StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
}

// scanRequest is everything a scan needs, gathered from flags and args.
type scanRequest struct {
	source app.PatternSource
	engine string
	files  []string
	watch  bool
	quiet  bool
	report reportOpts
}

func runScan(cmd *cobra.Command, args []string) error {
	req := scanRequest{
		source: app.PatternSource{Set: scanSet, File: scanFile, Inline: scanPatterns},
		engine: scanEngine,
		files:  args,
		watch:  scanWatch,
		quiet:  scanQuiet,
		report: reportOpts{
			json:      scanJSON,
			countOnly: scanCount,
			useColor:  resolveColor(scanColor, scanNoColor) && !scanJSON,
		},
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return executeScan(ctx, application, req, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// executeScan resolves patterns (prompting if none were given), builds the
// matcher once, and scans every file with it. Returns scanExit{0|1} on a
// completed scan, scanExit{2} on bad input, or a plain error.
func executeScan(ctx context.Context, a *app.App, req scanRequest, stdin io.Reader, stdout, stderr io.Writer) error {
	patterns, err := gatherPatterns(a, &req, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "wordscan: %s\n", describeError(err))
		return scanExit{2}
	}

	if req.engine != "" {
		if err := app.ValidateEngine(req.engine); err != nil {
			fmt.Fprintf(stderr, "wordscan: %v\n", err)
			return scanExit{2}
		}
	}
	m, err := a.Matcher(req.engine, patterns)
	if err != nil {
		fmt.Fprintf(stderr, "wordscan: %s\n", describeError(err))
		return scanExit{2}
	}

	req.report.withFile = len(req.files) > 1
	found := false
	emit := func(fr *app.FileResult) {
		if fr.Result.Total() > 0 {
			found = true
		}
		if req.quiet {
			return
		}
		if err := writeReport(stdout, fr, patterns, req.report); err != nil {
			a.Log.Error("write report", "err", err)
		}
	}

	if req.watch {
		if err := checkWatchable(req.files); err != nil {
			fmt.Fprintf(stderr, "wordscan: %v\n", err)
			return scanExit{2}
		}
		w, err := fsw.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		if err := a.Watch(ctx, w, m, req.files, emit); err != nil {
			fmt.Fprintf(stderr, "wordscan: %v\n", err)
			return scanExit{2}
		}
		return nil
	}

	results, err := a.ScanFiles(ctx, m, req.files)
	if err != nil {
		fmt.Fprintf(stderr, "wordscan: %v\n", err)
		return scanExit{2}
	}
	for _, fr := range results {
		emit(fr)
	}
	if found {
		return scanExit{0}
	}
	return scanExit{1}
}

// gatherPatterns resolves the pattern sources. With no source it runs the
// interactive prompt on stdin, which also asks for the file when no file
// argument was given.
func gatherPatterns(a *app.App, req *scanRequest, stdin io.Reader, promptOut io.Writer) ([]string, error) {
	if !req.source.Empty() {
		if len(req.files) == 0 {
			return nil, fmt.Errorf("no input files (use - for stdin)")
		}
		return a.ResolvePatterns(req.source)
	}

	for _, f := range req.files {
		if f == "-" {
			return nil, fmt.Errorf("stdin cannot be both the text and the pattern prompt; pass -e, -f, or -s")
		}
	}

	answers, err := prompt.New(stdin, promptOut).Ask(len(req.files) == 0)
	if err != nil {
		return nil, err
	}
	if answers.SourceFile != "" {
		req.files = []string{answers.SourceFile}
	}
	if len(req.files) == 0 {
		return nil, fmt.Errorf("no source file given")
	}
	return a.ResolvePatterns(app.PatternSource{Inline: answers.Patterns})
}

func checkWatchable(files []string) error {
	for _, f := range files {
		if f == "-" {
			return fmt.Errorf("--watch cannot watch stdin")
		}
	}
	return nil
}
