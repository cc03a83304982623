// Package sitegen is the public entry point for the landing page engine. It
// wires the block registry, page composer, copy library, and matrix generator
// behind a single Engine and re-exports the types callers interact with.
package sitegen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/composer"
	"github.com/goliatone/go-sitegen/internal/content"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/matrix"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Re-exported domain types.
type (
	BusinessProfile = matrix.BusinessProfile
	Service         = matrix.Service
	City            = matrix.City
	GeneratedPage   = matrix.GeneratedPage
	Result          = matrix.Result
	Bundle          = composer.Bundle
	Theme           = themes.Theme
	Metadata        = seo.Metadata
	BlockInstance   = blocks.Instance
	RenderError     = blocks.RenderError
	Logger          = interfaces.Logger
)

// DefaultTheme returns the fallback theme tokens.
func DefaultTheme() Theme { return themes.Default() }

// Engine generates landing page matrices for business profiles.
type Engine struct {
	config    Config
	logger    interfaces.Logger
	provider  interfaces.LoggerProvider
	library   *content.Library
	selector  *themes.Selector
	generator *matrix.Generator
	seed      *int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the engine logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLoggerProvider supplies a provider for namespaced module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(e *Engine) {
		if provider != nil {
			e.provider = provider
		}
	}
}

// WithVariantSeed perturbs variant selection deterministically, yielding an
// alternate layout draw for the same profiles.
func WithVariantSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// New builds an Engine from the configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{config: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.provider == nil && e.logger == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
		if err != nil {
			return nil, err
		}
		e.provider = provider
	}
	if e.provider != nil && e.logger == nil {
		e.logger = logging.ModuleLogger(e.provider, "")
	}
	if e.logger == nil {
		e.logger = logging.NoOp()
	}

	contentLogger := logging.ContentLogger(e.provider)
	matrixLogger := logging.MatrixLogger(e.provider)
	if e.provider == nil {
		contentLogger = e.logger
		matrixLogger = e.logger
	}

	e.library = content.NewLibrary(content.WithLogger(contentLogger))
	if cfg.ContentDir != "" {
		if err := e.library.LoadDir(cfg.ContentDir); err != nil {
			return nil, fmt.Errorf("sitegen: load content dir: %w", err)
		}
	}

	if cfg.ThemeDir != "" {
		selector := themes.NewSelector(cfg.ThemeName, cfg.ThemeVariant, nil)
		if err := selector.Register(cfg.ThemeDir); err != nil {
			return nil, fmt.Errorf("sitegen: load theme dir: %w", err)
		}
		e.selector = selector
	}

	genOpts := []matrix.Option{
		matrix.WithLogger(matrixLogger),
		matrix.WithWorkers(cfg.Workers),
		matrix.WithLibrary(e.library),
	}
	if e.seed != nil {
		genOpts = append(genOpts, matrix.WithVariantSeed(*e.seed))
	}
	e.generator = matrix.NewGenerator(genOpts...)
	return e, nil
}

// Generate expands the profile into its page matrix. A profile without theme
// tokens picks up the configured manifest theme, or the builtin defaults.
func (e *Engine) Generate(ctx context.Context, profile *BusinessProfile) (*Result, error) {
	if profile != nil && profile.Theme == (Theme{}) {
		profile.Theme = e.resolveTheme()
	}
	return e.generator.Generate(ctx, profile)
}

// Export writes the generated pages under the configured output directory.
func (e *Engine) Export(result *Result) error {
	return matrix.Export(result, e.config.OutputDir)
}

func (e *Engine) resolveTheme() Theme {
	if e.selector != nil {
		theme, err := e.selector.Tokens(e.config.ThemeName, e.config.ThemeVariant)
		if err == nil {
			return theme
		}
		e.logger.Warn("theme selection failed, using defaults", "error", err)
	}
	return themes.Default()
}
