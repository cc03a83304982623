package sitegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/logging"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Workers = 0
	if err := cfg.Validate(); err != ErrInvalidWorkers {
		t.Fatalf("err = %v, want ErrInvalidWorkers", err)
	}

	cfg = DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err != ErrInvalidLogLevel {
		t.Fatalf("err = %v, want ErrInvalidLogLevel", err)
	}
}

func testEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	opts = append([]Option{WithLogger(logging.NoOp())}, opts...)
	engine, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func testProfile() *BusinessProfile {
	return &BusinessProfile{
		ID:           "biz-7",
		CompanyName:  "Menuiserie Petit",
		BusinessType: "menuisier",
		Phone:        "02 34 56 78 90",
		BaseURL:      "https://menuiserie-petit.fr",
		Services:     []Service{{Name: "Pose de parquet"}, {Name: "Fabrication sur mesure"}},
		Cities:       []City{{Name: "Tours"}, {Name: "Blois"}},
	}
}

func TestEngineGeneratesFullMatrix(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.PagesBuilt != 4 {
		t.Fatalf("expected 4 pages, built %d", result.PagesBuilt)
	}
	slugs := map[string]bool{}
	for _, page := range result.Pages {
		slugs[page.Slug] = true
		if page.Document == "" {
			t.Fatalf("page %s has no document", page.Slug)
		}
	}
	for _, want := range []string{
		"pose-de-parquet-tours", "pose-de-parquet-blois",
		"fabrication-sur-mesure-tours", "fabrication-sur-mesure-blois",
	} {
		if !slugs[want] {
			t.Fatalf("missing slug %s in %v", want, slugs)
		}
	}
}

func TestEngineAppliesDefaultThemeTokens(t *testing.T) {
	engine := testEngine(t)
	profile := testProfile()

	result, err := engine.Generate(context.Background(), profile)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if profile.Theme == (Theme{}) {
		t.Fatalf("engine should fill empty theme tokens")
	}
	if !strings.Contains(result.Pages[0].Bundle.CSS, DefaultTheme().Primary()) {
		t.Fatalf("rendered CSS should carry the default primary color")
	}
}

func TestEngineExportWritesConfiguredDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	engine, err := New(cfg, WithLogger(logging.NoOp()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := engine.Export(result); err != nil {
		t.Fatalf("export: %v", err)
	}

	target := filepath.Join(cfg.OutputDir, "pose-de-parquet-tours", "index.html")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("exported page missing: %v", err)
	}
	manifest := filepath.Join(cfg.OutputDir, "pose-de-parquet-tours", "assets.json")
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("asset manifest missing: %v", err)
	}
	if !strings.Contains(string(data), "/assets/gallery/pose-de-parquet-tours-1.jpg") {
		t.Fatalf("asset manifest should list gallery images, got %s", data)
	}
}

func TestEngineVariantSeedIsReproducible(t *testing.T) {
	first := testEngine(t, WithVariantSeed(1234))
	second := testEngine(t, WithVariantSeed(1234))

	a, err := first.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	b, err := second.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if a.Pages[0].Bundle.HTML != b.Pages[0].Bundle.HTML {
		t.Fatalf("same seed should reproduce the same markup")
	}
}
