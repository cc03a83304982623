package composer

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/google/uuid"
)

func testPage(instances ...blocks.Instance) *Page {
	return &Page{
		ID:     uuid.New(),
		Title:  "Débouchage canalisation à Paris",
		Slug:   "debouchage-canalisation-paris",
		Theme:  themes.Default(),
		Blocks: instances,
	}
}

func instance(kind blocks.Kind, order int, props map[string]any) blocks.Instance {
	if props == nil {
		props = map[string]any{}
	}
	return blocks.Instance{ID: uuid.New(), BlockType: kind, Order: order, Props: props}
}

func TestComposeOrdersBlocksByOrderField(t *testing.T) {
	c := New(blocks.NewRegistry())
	page := testPage(
		instance(blocks.KindFooter, 2, map[string]any{"companyName": "Plomberie Durand"}),
		instance(blocks.KindHero, 0, map[string]any{"title": "Premier"}),
		instance(blocks.KindCTA, 1, map[string]any{"title": "Milieu"}),
	)

	bundle, err := c.Compose(context.Background(), page)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	heroAt := strings.Index(bundle.HTML, "sg-hero")
	ctaAt := strings.Index(bundle.HTML, "sg-cta")
	footerAt := strings.Index(bundle.HTML, "sg-footer")
	if heroAt < 0 || ctaAt < 0 || footerAt < 0 {
		t.Fatalf("missing sections in output")
	}
	if !(heroAt < ctaAt && ctaAt < footerAt) {
		t.Fatalf("sections out of order: hero=%d cta=%d footer=%d", heroAt, ctaAt, footerAt)
	}
}

func TestComposeStableForEqualOrder(t *testing.T) {
	c := New(blocks.NewRegistry())
	first := instance(blocks.KindContent, 1, map[string]any{"title": "Alpha", "body": "premier"})
	second := instance(blocks.KindContent, 1, map[string]any{"title": "Beta", "body": "second"})
	page := testPage(first, second)

	bundle, err := c.Compose(context.Background(), page)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if strings.Index(bundle.HTML, "Alpha") > strings.Index(bundle.HTML, "Beta") {
		t.Fatalf("equal-order blocks lost input sequence")
	}
}

func TestComposeSurvivesSingleBlockFailure(t *testing.T) {
	c := New(blocks.NewRegistry())
	bad := instance(blocks.Kind("hologram"), 1, nil)
	page := testPage(
		instance(blocks.KindHero, 0, map[string]any{"title": "Toujours là"}),
		bad,
		instance(blocks.KindCTA, 2, map[string]any{"title": "Et là aussi"}),
	)

	bundle, err := c.Compose(context.Background(), page)
	if err != nil {
		t.Fatalf("composition must not fail for one bad block: %v", err)
	}
	if !strings.Contains(bundle.HTML, "Toujours là") || !strings.Contains(bundle.HTML, "Et là aussi") {
		t.Fatalf("healthy blocks missing from output")
	}
	if len(bundle.Errors) != 1 {
		t.Fatalf("expected 1 error entry, got %d", len(bundle.Errors))
	}
	e := bundle.Errors[0]
	if e.BlockID != bad.ID || !e.FallbackUsed {
		t.Fatalf("error lacks provenance: %+v", e)
	}
	if bundle.FallbackCount() != 1 {
		t.Fatalf("FallbackCount = %d, want 1", bundle.FallbackCount())
	}
	if !strings.Contains(bundle.HTML, "sg-unsupported--hologram") {
		t.Fatalf("unknown block should leave a visible placeholder, got %q", bundle.HTML)
	}
	if len(bundle.Warnings) != 1 || !strings.Contains(bundle.Warnings[0], "hologram") {
		t.Fatalf("expected unknown-type warning, got %v", bundle.Warnings)
	}
}

func TestComposeRejectsDuplicateBlockIDs(t *testing.T) {
	c := New(blocks.NewRegistry())
	shared := uuid.New()
	page := testPage(
		blocks.Instance{ID: shared, BlockType: blocks.KindHero, Order: 0, Props: map[string]any{}},
		blocks.Instance{ID: shared, BlockType: blocks.KindCTA, Order: 1, Props: map[string]any{}},
	)

	if _, err := c.Compose(context.Background(), page); err != ErrDuplicateBlockID {
		t.Fatalf("err = %v, want ErrDuplicateBlockID", err)
	}
}

func TestComposeNilPage(t *testing.T) {
	c := New(blocks.NewRegistry())
	if _, err := c.Compose(context.Background(), nil); err != ErrNilPage {
		t.Fatalf("err = %v, want ErrNilPage", err)
	}
}

func TestComposeHonorsContextCancellation(t *testing.T) {
	c := New(blocks.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := testPage(instance(blocks.KindHero, 0, map[string]any{"title": "Jamais rendu"}))
	if _, err := c.Compose(ctx, page); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestComposeDeduplicatesAssets(t *testing.T) {
	c := New(blocks.NewRegistry())
	galleryProps := map[string]any{
		"image1_url": "/assets/a.jpg",
		"image2_url": "/assets/b.jpg",
	}
	page := testPage(
		instance(blocks.KindGallery, 0, galleryProps),
		instance(blocks.KindGallery, 1, map[string]any{"image1_url": "/assets/a.jpg"}),
	)

	bundle, err := c.Compose(context.Background(), page)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(bundle.Assets) != 2 {
		t.Fatalf("expected 2 unique assets, got %d: %+v", len(bundle.Assets), bundle.Assets)
	}
}
