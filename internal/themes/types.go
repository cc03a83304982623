// Package themes carries the shared design tokens injected into every block
// render pass, and resolves visual variants for block instances.
package themes

import "strings"

// Fallback tokens applied when a theme omits a value. Every RenderResult must
// stay self-contained, so renderers always receive concrete literals.
const (
	FallbackPrimary   = "#667eea"
	FallbackSecondary = "#764ba2"
	FallbackFont      = "Inter, system-ui, sans-serif"
)

// ColorTokens holds the color palette shared by all renderers in a run.
type ColorTokens struct {
	Primary       string
	Secondary     string
	Accent        string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
}

// TypographyTokens holds the font families shared by all renderers in a run.
type TypographyTokens struct {
	Heading string
	Body    string
}

// Theme is the read-only token set shared (not owned) by every renderer in a
// generation run.
type Theme struct {
	Colors     ColorTokens
	Typography TypographyTokens
}

// Default returns the stock theme used when a host supplies nothing.
func Default() Theme {
	return Theme{
		Colors: ColorTokens{
			Primary:       FallbackPrimary,
			Secondary:     FallbackSecondary,
			Background:    "#ffffff",
			Surface:       "#f9fafb",
			Text:          "#111827",
			TextSecondary: "#6b7280",
			Border:        "#e5e7eb",
		},
		Typography: TypographyTokens{
			Heading: FallbackFont,
			Body:    FallbackFont,
		},
	}
}

// Primary returns the primary color, falling back when the theme omits it.
func (t Theme) Primary() string {
	return fallback(t.Colors.Primary, FallbackPrimary)
}

// Secondary returns the secondary color, falling back when the theme omits it.
func (t Theme) Secondary() string {
	return fallback(t.Colors.Secondary, FallbackSecondary)
}

// HeadingFont returns the heading font family with fallback.
func (t Theme) HeadingFont() string {
	return fallback(t.Typography.Heading, FallbackFont)
}

// BodyFont returns the body font family with fallback.
func (t Theme) BodyFont() string {
	return fallback(t.Typography.Body, FallbackFont)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
