package logging

import (
	"context"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const (
	rootModule     = "sitegen"
	blocksModule   = "sitegen.blocks"
	composerModule = "sitegen.composer"
	matrixModule   = "sitegen.matrix"
	seoModule      = "sitegen.seo"
	contentModule  = "sitegen.content"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// BlocksLogger returns the logger namespace reserved for block rendering.
func BlocksLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blocksModule)
}

// ComposerLogger returns the logger namespace reserved for page composition.
func ComposerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, composerModule)
}

// MatrixLogger returns the logger namespace reserved for matrix generation.
func MatrixLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, matrixModule)
}

// SEOLogger returns the logger namespace reserved for SEO composition.
func SEOLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, seoModule)
}

// ContentLogger returns the logger namespace reserved for the content corpus.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
