// Package blocks implements the block rendering engine: declaratively-schemed
// renderers for every supported block kind, a closed registry dispatching on
// kind, and the flat-prop extraction used by editor-authored payloads.
package blocks

import (
	"github.com/goliatone/go-sitegen/internal/schema"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/google/uuid"
)

// Kind identifies a block type. The set is closed at startup: every kind maps
// to exactly one renderer in the registry.
type Kind string

const (
	KindHeader       Kind = "header"
	KindHero         Kind = "hero"
	KindContent      Kind = "content"
	KindFeatures     Kind = "features"
	KindServices     Kind = "services"
	KindTestimonials Kind = "testimonials"
	KindGallery      Kind = "gallery"
	KindFAQ          Kind = "faq"
	KindPricing      Kind = "pricing"
	KindCTA          Kind = "cta"
	KindFooter       Kind = "footer"
)

// Kinds lists every registered block kind in canonical page order.
func Kinds() []Kind {
	return []Kind{
		KindHeader, KindHero, KindContent, KindFeatures, KindServices,
		KindTestimonials, KindGallery, KindFAQ, KindPricing, KindCTA, KindFooter,
	}
}

// Definition is the immutable declaration for one block kind, registered once
// at startup.
type Definition struct {
	Kind     Kind
	Name     string
	Schema   *schema.Schema
	Variants []string
}

// DefaultVariant returns the first declared variant.
func (d *Definition) DefaultVariant() string {
	if d == nil || len(d.Variants) == 0 {
		return ""
	}
	return d.Variants[0]
}

// Instance is one concrete block placement on a page. IDs must be unique
// within the page; Order determines render sequence.
type Instance struct {
	ID        uuid.UUID
	BlockType Kind
	Order     int
	Props     map[string]any
}

// Asset references an external resource a rendered block depends on.
type Asset struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// RenderError records a failure scoped to a single block. FallbackUsed marks
// results produced by the minimal fallback renderer.
type RenderError struct {
	BlockID      uuid.UUID `json:"blockId"`
	BlockType    Kind      `json:"blockType"`
	Message      string    `json:"message"`
	FallbackUsed bool      `json:"fallbackUsed"`
}

// Result is the self-contained output of rendering one block instance. It is
// produced fresh per render call and never mutated after return.
type Result struct {
	HTML     string
	CSS      string
	JS       string
	Assets   []Asset
	Errors   []RenderError
	Warnings []string
}

// Request carries everything a renderer needs for a single render call.
// Renderers are pure functions of the request; the only minted state is the
// Suffix, produced by the run-scoped instance counter before dispatch.
type Request struct {
	Instance *Instance
	Props    map[string]any
	Variant  string
	Theme    themes.Theme
	// Suffix is a per-run-unique class suffix so multiple instances of a kind
	// can coexist on a page without CSS collisions.
	Suffix string
}

// Renderer renders one block kind.
type Renderer interface {
	Definition() *Definition
	Render(req Request) Result
}
