// Package app wires together adapters and domain logic for the wordscan CLI:
// configuration, the pattern-set store, matcher construction, concurrent
// file scanning, and watch mode.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corey/wordscan/internal/adapters/ahocorasick"
	"github.com/corey/wordscan/internal/adapters/bbolt"
	"github.com/corey/wordscan/internal/domain/automaton"
	"github.com/corey/wordscan/internal/domain/patternset"
	"github.com/corey/wordscan/internal/ports"
)

// App is the top-level container wiring all components together.
// The store is opened lazily: plain scans never touch the database.
type App struct {
	Config *Config
	Paths  *Paths
	Log    *slog.Logger

	store *bbolt.Store
}

// New creates an App. It does not open the store.
func New(cfg *Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
	return &App{
		Config: cfg,
		Paths:  NewPaths(cfg.Home),
		Log:    log,
	}
}

// Store opens the bbolt pattern-set store on first use.
func (a *App) Store() (ports.SetStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	if err := a.Paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", a.Paths.Root, err)
	}
	store, err := bbolt.NewStore(a.Paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.Log.Debug("store opened", "path", a.Paths.DB)
	a.store = store
	return store, nil
}

// Close releases the store if it was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// NewMatcher builds a matcher for patterns with the named engine.
func NewMatcher(engine string, patterns []string) (ports.PatternMatcher, error) {
	switch engine {
	case EngineNative, "":
		a, err := automaton.Build(patterns)
		if err != nil {
			return nil, err
		}
		return a, nil
	case EngineLibrary:
		m, err := ahocorasick.NewLibraryMatcher(patterns)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, ValidateEngine(engine)
	}
}

// Matcher builds a matcher with the configured engine, or override when set.
func (a *App) Matcher(override string, patterns []string) (ports.PatternMatcher, error) {
	engine := a.Config.Engine
	if override != "" {
		engine = override
	}
	m, err := NewMatcher(engine, patterns)
	if err != nil {
		return nil, err
	}
	a.Log.Debug("matcher built", "engine", engine, "patterns", len(patterns))
	return m, nil
}

// PatternSource names where scan patterns come from. Sources are combined
// in this order: stored set, pattern file, then inline patterns.
type PatternSource struct {
	Set    string
	File   string
	Inline []string
}

// Empty reports whether no source was given.
func (s PatternSource) Empty() bool {
	return s.Set == "" && s.File == "" && len(s.Inline) == 0
}

// ResolvePatterns assembles the ordered pattern list from src and validates it.
func (a *App) ResolvePatterns(src PatternSource) ([]string, error) {
	var patterns []string

	if src.Set != "" {
		store, err := a.Store()
		if err != nil {
			return nil, err
		}
		set, err := store.LoadSet(src.Set)
		if err != nil {
			return nil, err
		}
		a.Log.Debug("loaded set", "name", set.Name, "patterns", len(set.Patterns), "fingerprint", set.Fingerprint)
		patterns = append(patterns, set.Patterns...)
	}

	if src.File != "" {
		abs, err := filepath.Abs(src.File)
		if err != nil {
			return nil, err
		}
		fromFile, err := patternset.LoadFile(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, fromFile...)
	}

	patterns = append(patterns, src.Inline...)

	if err := patternset.Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}
