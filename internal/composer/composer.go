// Package composer assembles ordered block instances into a single renderable
// page bundle. Individual block failures degrade to fallback markup and are
// reported on the bundle; composition itself only fails on invalid input.
package composer

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	// ErrNilPage is returned when Compose receives no page.
	ErrNilPage = errors.New("composer: nil page")
	// ErrDuplicateBlockID is returned when two instances share an ID.
	ErrDuplicateBlockID = errors.New("composer: duplicate block instance id")
)

// Page is the composition input: an ordered set of block instances plus the
// theme tokens every renderer receives.
type Page struct {
	ID     uuid.UUID
	Title  string
	Slug   string
	Theme  themes.Theme
	Blocks []blocks.Instance
}

// Bundle is the composed output. HTML, CSS, and JS concatenate the per-block
// results in render order; assets are deduplicated by URL.
type Bundle struct {
	PageID   uuid.UUID
	Slug     string
	Title    string
	HTML     string
	CSS      string
	JS       string
	Assets   []blocks.Asset
	Errors   []blocks.RenderError
	Warnings []string
}

// FallbackCount reports how many blocks degraded to fallback output.
func (b *Bundle) FallbackCount() int {
	n := 0
	for _, e := range b.Errors {
		if e.FallbackUsed {
			n++
		}
	}
	return n
}

// Composer renders pages through a block registry.
type Composer struct {
	registry *blocks.Registry
	logger   interfaces.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the composer logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a Composer over the given registry.
func New(registry *blocks.Registry, opts ...Option) *Composer {
	c := &Composer{
		registry: registry,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose renders every block on the page in Order and aggregates the
// results. Ordering is stable: instances sharing an Order value keep their
// input sequence. A block that fails renders as fallback markup and the page
// still composes; the error rides along on the bundle with its provenance.
func (c *Composer) Compose(ctx context.Context, page *Page) (*Bundle, error) {
	if page == nil {
		return nil, ErrNilPage
	}
	seen := map[uuid.UUID]struct{}{}
	for i := range page.Blocks {
		id := page.Blocks[i].ID
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateBlockID
		}
		seen[id] = struct{}{}
	}

	ordered := make([]blocks.Instance, len(page.Blocks))
	copy(ordered, page.Blocks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	bundle := &Bundle{
		PageID: page.ID,
		Slug:   page.Slug,
		Title:  page.Title,
	}
	run := blocks.NewRun()
	var html, css, js strings.Builder
	assetSeen := map[string]struct{}{}

	for i := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		inst := &ordered[i]
		result := c.registry.Render(run, inst, page.Theme)

		html.WriteString(result.HTML)
		html.WriteString("\n")
		if result.CSS != "" {
			css.WriteString(result.CSS)
			css.WriteString("\n")
		}
		if result.JS != "" {
			js.WriteString(result.JS)
			js.WriteString("\n")
		}
		for _, asset := range result.Assets {
			if _, dup := assetSeen[asset.URL]; dup {
				continue
			}
			assetSeen[asset.URL] = struct{}{}
			bundle.Assets = append(bundle.Assets, asset)
		}
		bundle.Errors = append(bundle.Errors, result.Errors...)
		bundle.Warnings = append(bundle.Warnings, result.Warnings...)

		if len(result.Errors) > 0 {
			c.logger.Warn("block degraded during composition",
				"page", page.Slug,
				"block_type", inst.BlockType,
				"block_id", inst.ID,
			)
		}
	}

	bundle.HTML = strings.TrimRight(html.String(), "\n")
	bundle.CSS = strings.TrimRight(css.String(), "\n")
	bundle.JS = strings.TrimRight(js.String(), "\n")
	return bundle, nil
}
