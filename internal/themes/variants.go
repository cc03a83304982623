package themes

import (
	"math/rand"
	"strings"
	"sync"
)

// Resolve selects a variant from a block's declared set. Unknown or empty
// requests fall back to the first declared variant; the result is always a
// member of the declared set, never an invented value.
func Resolve(declared []string, requested string) string {
	if len(declared) == 0 {
		return ""
	}
	wanted := strings.TrimSpace(requested)
	for _, candidate := range declared {
		if strings.EqualFold(candidate, wanted) {
			return candidate
		}
	}
	return declared[0]
}

// Picker performs the business-driven variant selection used by matrix
// generation: given a business category and a block kind it draws one of the
// category's candidate variants. Seeded construction makes runs reproducible.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a picker seeded for deterministic selection.
func NewPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a variant for the (businessType, blockKind) pair from the
// per-category visual theme table. Unknown business types use the plombier
// table; unknown block kinds return "default".
func (p *Picker) Pick(businessType, blockKind string) string {
	table, ok := visualThemes[normalizeKey(businessType)]
	if !ok {
		table = visualThemes["plombier"]
	}
	candidates, ok := table[normalizeKey(blockKind)]
	if !ok || len(candidates) == 0 {
		return "default"
	}
	p.mu.Lock()
	index := p.rng.Intn(len(candidates))
	p.mu.Unlock()
	return candidates[index]
}

// Candidates exposes the candidate variant list for a pair, so callers can
// verify closure properties.
func Candidates(businessType, blockKind string) []string {
	table, ok := visualThemes[normalizeKey(businessType)]
	if !ok {
		table = visualThemes["plombier"]
	}
	candidates := table[normalizeKey(blockKind)]
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// visualThemes maps business categories to candidate variants per block kind.
// Categories keep distinct visual personalities: plumbing leans clean and
// trustworthy, electricians get tech-flavored layouts, carpenters get warm
// showcase layouts, painters get color-forward ones, masons industrial ones.
var visualThemes = map[string]map[string][]string{
	"plombier": {
		"hero":         {"split-screen", "centered-bold", "side-image"},
		"services":     {"cards-3d", "hexagon", "cards-hover"},
		"features":     {"grid", "grid-icons", "timeline"},
		"testimonials": {"carousel", "masonry", "carousel-modern"},
		"cta":          {"gradient-waves", "glassmorphism", "centered-simple"},
		"gallery":      {"masonry-flow", "grid-hover", "polaroid"},
		"content":      {"split-content", "timeline", "accordion"},
		"faq":          {"accordion", "chat-style", "grid"},
		"pricing":      {"cards-toggle", "table-compare", "cards"},
		"header":       {"transparent-fixed", "solid"},
		"footer":       {"modern-columns", "minimal"},
	},
	"electricien": {
		"hero":         {"gradient-animated", "tech-grid", "centered-bold"},
		"services":     {"comparison", "timeline", "cards-gradient"},
		"features":     {"carousel", "stats-counter", "grid-icons"},
		"testimonials": {"stacked", "timeline", "carousel"},
		"cta":          {"neon-glow", "countdown", "split-content"},
		"gallery":      {"before-after", "grid-uniform", "masonry-flow"},
		"content":      {"tabs", "magazine", "comparison"},
		"faq":          {"searchable", "categories", "accordion"},
		"pricing":      {"calculator", "comparison", "cards-gradient"},
		"header":       {"solid", "transparent-fixed"},
		"footer":       {"modern-columns", "dark"},
	},
	"menuisier": {
		"hero":         {"fullscreen-image", "split-content", "parallax"},
		"services":     {"showcase", "portfolio-style", "minimal-grid"},
		"features":     {"icons-left", "centered", "alternating"},
		"testimonials": {"quotes-elegant", "grid-photos", "carousel"},
		"cta":          {"natural", "wood-texture", "minimal"},
		"gallery":      {"lightbox-pro", "masonry-creative", "fullscreen"},
		"content":      {"story", "process", "visual-journey"},
		"faq":          {"simple", "expandable", "accordion"},
		"pricing":      {"packages", "custom-quote", "table-compare"},
		"header":       {"solid", "centered"},
		"footer":       {"minimal", "modern-columns"},
	},
	"peintre": {
		"hero":         {"color-burst", "artistic", "gallery-bg"},
		"services":     {"color-cards", "visual-grid", "creative"},
		"features":     {"colorful", "artistic-grid", "grid"},
		"testimonials": {"photo-focus", "colorful-cards", "wall"},
		"cta":          {"vibrant", "paint-drip", "centered-simple"},
		"gallery":      {"color-filter", "wall-gallery", "pinterest"},
		"content":      {"visual-story", "before-after", "showcase"},
		"faq":          {"colorful", "bubble-chat", "accordion"},
		"pricing":      {"tiers", "area-calculator", "cards-toggle"},
		"header":       {"transparent-fixed", "solid"},
		"footer":       {"modern-columns", "minimal"},
	},
	"macon": {
		"hero":         {"construction", "blueprint", "strong"},
		"services":     {"industrial", "grid-solid", "construction-cards"},
		"features":     {"solid-grid", "building-blocks", "timeline"},
		"testimonials": {"client-logos", "case-studies", "stacked"},
		"cta":          {"solid", "industrial", "centered-simple"},
		"gallery":      {"project-showcase", "progress-photos", "grid-uniform"},
		"content":      {"project-steps", "technical", "detailed"},
		"faq":          {"technical", "categorized", "accordion"},
		"pricing":      {"project-based", "square-meter", "table-compare"},
		"header":       {"solid", "industrial"},
		"footer":       {"dark", "modern-columns"},
	},
}
