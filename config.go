package sitegen

import (
	"errors"
	"strings"
)

// Sentinel configuration errors.
var (
	ErrInvalidWorkers  = errors.New("sitegen: workers must be positive")
	ErrInvalidLogLevel = errors.New("sitegen: unknown log level")
)

// Config carries engine-level settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Workers bounds concurrent page builds during matrix generation.
	Workers int
	// OutputDir is where Export writes generated pages.
	OutputDir string
	// ContentDir optionally overlays markdown copy documents onto the
	// builtin corpus.
	ContentDir string
	// ThemeDir optionally points at a theme manifest directory.
	ThemeDir string
	// ThemeName and ThemeVariant select tokens from ThemeDir manifests.
	ThemeName    string
	ThemeVariant string
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Workers:   4,
		OutputDir: "dist",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
