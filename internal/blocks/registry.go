package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Registry maps block kinds to renderers. The set is closed after
// construction: NewRegistry installs every builtin renderer and callers only
// read from it afterwards, so lookups need no locking.
type Registry struct {
	renderers map[Kind]Renderer
	logger    interfaces.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry builds a registry with every builtin renderer installed.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		renderers: map[Kind]Renderer{},
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, renderer := range builtinRenderers() {
		r.renderers[renderer.Definition().Kind] = renderer
	}
	return r
}

func builtinRenderers() []Renderer {
	return []Renderer{
		newHeaderRenderer(),
		newHeroRenderer(),
		newContentRenderer(),
		newFeaturesRenderer(),
		newServicesRenderer(),
		newTestimonialsRenderer(),
		newGalleryRenderer(),
		newFAQRenderer(),
		newPricingRenderer(),
		newCTARenderer(),
		newFooterRenderer(),
	}
}

// Lookup returns the renderer for kind.
func (r *Registry) Lookup(kind Kind) (Renderer, bool) {
	renderer, ok := r.renderers[kind]
	return renderer, ok
}

// Definition returns the declaration for kind.
func (r *Registry) Definition(kind Kind) (*Definition, bool) {
	renderer, ok := r.renderers[kind]
	if !ok {
		return nil, false
	}
	return renderer.Definition(), true
}

// Render runs the full per-instance pipeline: schema validation with default
// substitution, variant resolution against the renderer's declared set, and a
// panic-safe dispatch that degrades to the fallback renderer instead of
// failing the page.
func (r *Registry) Render(run *Run, inst *Instance, theme themes.Theme) Result {
	if inst == nil {
		return Result{}
	}
	renderer, ok := r.renderers[inst.BlockType]
	if !ok {
		r.logger.Warn("unsupported block type", "block_type", inst.BlockType, "block_id", inst.ID)
		return unsupportedResult(inst)
	}

	def := renderer.Definition()
	props := inst.Props
	var warnings []string
	if def.Schema != nil {
		resolved, schemaWarnings := def.Schema.Validate(inst.Props)
		props = resolved
		for _, w := range schemaWarnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s (%s)", inst.BlockType, w.Message, w.Field))
		}
	}

	req := Request{
		Instance: inst,
		Props:    props,
		Variant:  themes.Resolve(def.Variants, propString(props, "variant")),
		Theme:    theme,
		Suffix:   run.Suffix(inst.BlockType),
	}

	result := r.safeRender(renderer, req)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// safeRender converts renderer panics into a fallback result so one broken
// block never takes down the page.
func (r *Registry) safeRender(renderer Renderer, req Request) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("block renderer panicked",
				"block_type", req.Instance.BlockType,
				"block_id", req.Instance.ID,
				"panic", rec,
			)
			result = fallbackResult(req, fmt.Sprintf("renderer panic: %v", rec))
		}
	}()
	result = renderer.Render(req)
	if result.HTML == "" {
		result = fallbackResult(req, "renderer produced no output")
	}
	return result
}
