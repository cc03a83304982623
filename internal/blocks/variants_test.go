package blocks

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/google/uuid"
)

func TestFeaturesTabsVariantEmitsSwitcher(t *testing.T) {
	registry := NewRegistry()
	inst := &Instance{
		ID:        uuid.New(),
		BlockType: KindFeatures,
		Props: map[string]any{
			"variant":              "tabs",
			"feature1_title":       "Diagnostic",
			"feature1_description": "Inspection complète de l'installation.",
			"feature2_title":       "Mise aux normes",
			"feature2_description": "Conformité NF C 15-100.",
		},
	}

	result := registry.Render(NewRun(), inst, themes.Default())
	if strings.Count(result.HTML, `role="tab"`) != 2 {
		t.Fatalf("expected 2 tab buttons, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `role="tabpanel" data-panel="1" hidden`) {
		t.Fatalf("second panel should start hidden, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `aria-selected="true"`) {
		t.Fatalf("first tab should start selected, got %q", result.HTML)
	}
	if strings.Contains(result.HTML, "sg-features__list") {
		t.Fatalf("tabs markup should replace the static list, got %q", result.HTML)
	}
	if !strings.Contains(result.JS, "sgTabs") || !strings.Contains(result.JS, `[role="tab"]`) {
		t.Fatalf("expected tab switching script, got %q", result.JS)
	}
	if !strings.Contains(result.CSS, ".sg-features__tab.is-active") {
		t.Fatalf("expected active tab styles, got %q", result.CSS)
	}
}

func TestContentTabsVariantSplitsSections(t *testing.T) {
	registry := NewRegistry()
	inst := &Instance{
		ID:        uuid.New(),
		BlockType: KindContent,
		Props: map[string]any{
			"variant": "tabs",
			"title":   "Notre intervention",
			"body": "Intervention rapide partout en ville.\n\n" +
				"## Déroulement\n\nNous établissons un diagnostic précis.\n\n" +
				"## Garanties\n\nChaque chantier est couvert par notre assurance.\n",
		},
	}

	result := registry.Render(NewRun(), inst, themes.Default())
	if !strings.Contains(result.HTML, ">Déroulement</button>") || !strings.Contains(result.HTML, ">Garanties</button>") {
		t.Fatalf("expected a tab per section heading, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "Intervention rapide partout en ville") {
		t.Fatalf("intro text before the first heading should survive, got %q", result.HTML)
	}
	if !strings.Contains(result.HTML, `role="tabpanel" data-panel="1" hidden`) {
		t.Fatalf("second section should start hidden, got %q", result.HTML)
	}
	if !strings.Contains(result.JS, "sgTabs") {
		t.Fatalf("expected tab switching script, got %q", result.JS)
	}
}

func TestContentTabsFallsBackToProseWithoutSections(t *testing.T) {
	registry := NewRegistry()
	inst := &Instance{
		ID:        uuid.New(),
		BlockType: KindContent,
		Props: map[string]any{
			"variant": "tabs",
			"body":    "Un seul paragraphe sans sous-titres.",
		},
	}

	result := registry.Render(NewRun(), inst, themes.Default())
	if strings.Contains(result.HTML, `role="tab"`) || result.JS != "" {
		t.Fatalf("single-section body should render as prose, got %q / %q", result.HTML, result.JS)
	}
	if !strings.Contains(result.HTML, "Un seul paragraphe") {
		t.Fatalf("body text missing, got %q", result.HTML)
	}
}

func TestCTACountdownVariantShipsTimer(t *testing.T) {
	registry := NewRegistry()
	inst := &Instance{
		ID:        uuid.New(),
		BlockType: KindCTA,
		Props: map[string]any{
			"variant": "countdown",
			"title":   "Offre spéciale dépannage",
		},
	}

	result := registry.Render(NewRun(), inst, themes.Default())
	for _, unit := range []string{"hours", "minutes", "seconds"} {
		if !strings.Contains(result.HTML, `data-unit="`+unit+`"`) {
			t.Fatalf("timer missing %s unit, got %q", unit, result.HTML)
		}
	}
	if !strings.Contains(result.JS, "sgCountdown") || !strings.Contains(result.JS, "setInterval") {
		t.Fatalf("expected countdown script, got %q", result.JS)
	}
	if !strings.Contains(result.CSS, ".sg-cta__countdown") {
		t.Fatalf("expected countdown styles, got %q", result.CSS)
	}
}
