package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Engine names accepted by WORDSCAN_ENGINE and --engine.
const (
	EngineNative  = "native"
	EngineLibrary = "library"
)

// Config holds all runtime configuration.
//
// Environment variables (a .env file in the working directory is read too;
// real environment variables win over the file):
//   - WORDSCAN_HOME: state directory (default: <cwd>/.wordscan)
//   - WORDSCAN_ENGINE: "native" (default) or "library"
//   - WORDSCAN_WORKERS: files scanned in parallel (default: NumCPU)
//   - WORDSCAN_LOG_LEVEL: debug, info, warn (default), error
type Config struct {
	Home     string
	Engine   string
	Workers  int
	LogLevel slog.Level
}

// LoadConfig resolves configuration for a process running in cwd.
func LoadConfig(cwd string) (*Config, error) {
	fileVals, err := godotenv.Read(filepath.Join(cwd, ".env"))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}

	cfg := &Config{
		Home:     filepath.Join(cwd, ".wordscan"),
		Engine:   EngineNative,
		Workers:  runtime.NumCPU(),
		LogLevel: slog.LevelWarn,
	}

	if v := lookup("WORDSCAN_HOME"); v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(cwd, v)
		}
		cfg.Home = v
	}
	if v := lookup("WORDSCAN_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if err := ValidateEngine(cfg.Engine); err != nil {
		return nil, fmt.Errorf("WORDSCAN_ENGINE: %w", err)
	}
	if v := lookup("WORDSCAN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("WORDSCAN_WORKERS: %q is not a positive integer", v)
		}
		cfg.Workers = n
	}
	if v := lookup("WORDSCAN_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("WORDSCAN_LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

// ValidateEngine rejects unknown engine names.
func ValidateEngine(name string) error {
	switch name {
	case EngineNative, EngineLibrary:
		return nil
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", name, EngineNative, EngineLibrary)
	}
}
