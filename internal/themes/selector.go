package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// ManifestLoader loads a go-theme manifest from a directory.
type ManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsManifestLoader struct{}

func (fsManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}
	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

// Selector resolves Theme tokens from go-theme manifests so hosts can ship
// design systems as theme directories instead of hardcoding token structs.
type Selector struct {
	registry       *gotheme.MemoryRegistry
	loader         ManifestLoader
	defaultTheme   string
	defaultVariant string
}

// NewSelector builds a selector with an optional custom loader.
func NewSelector(defaultTheme, defaultVariant string, loader ManifestLoader) *Selector {
	if loader == nil {
		loader = fsManifestLoader{}
	}
	return &Selector{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
}

// Register loads and registers the manifest found at themePath.
func (s *Selector) Register(themePath string) error {
	manifest, err := s.loader.Load(themePath)
	if err != nil {
		return fmt.Errorf("load theme manifest from %s: %w", themePath, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("theme name required for manifest registration")
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("register theme manifest: %w", err)
	}
	return nil
}

// Tokens selects the named theme/variant and maps its token table onto the
// engine's Theme shape. Missing tokens keep the stock defaults so renderers
// always receive a complete palette.
func (s *Selector) Tokens(name, variant string) (Theme, error) {
	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}

	resolvedVariant := strings.TrimSpace(variant)
	if resolvedVariant == "" {
		resolvedVariant = s.defaultVariant
	}

	selection, err := selector.Select(strings.TrimSpace(name), resolvedVariant)
	if err != nil {
		return Theme{}, fmt.Errorf("select theme %s: %w", name, err)
	}

	theme := Default()
	tokens := selection.Tokens()
	assign := func(dst *string, keys ...string) {
		for _, key := range keys {
			if value, ok := tokens[key]; ok && strings.TrimSpace(value) != "" {
				*dst = value
				return
			}
		}
	}

	assign(&theme.Colors.Primary, "color.primary", "primary")
	assign(&theme.Colors.Secondary, "color.secondary", "secondary")
	assign(&theme.Colors.Accent, "color.accent", "accent")
	assign(&theme.Colors.Background, "color.background", "background")
	assign(&theme.Colors.Surface, "color.surface", "surface")
	assign(&theme.Colors.Text, "color.text", "text")
	assign(&theme.Colors.TextSecondary, "color.text-secondary", "text-secondary")
	assign(&theme.Colors.Border, "color.border", "border")
	assign(&theme.Typography.Heading, "font.heading", "typography.heading")
	assign(&theme.Typography.Body, "font.body", "typography.body")

	return theme, nil
}
