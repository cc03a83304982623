package blocks

import (
	"reflect"
	"testing"
)

func TestExtractFeaturesSkipsBlankAnchorsKeepsOrder(t *testing.T) {
	props := map[string]any{
		"feature1_title":       "Devis gratuit",
		"feature1_description": "Réponse sous 24h",
		"feature2_title":       "   ",
		"feature3_title":       "Garantie décennale",
		"feature5_title":       "Artisans certifiés",
		"feature5_icon":        "🏅",
	}

	items := ExtractFeatures(props)
	if len(items) != 3 {
		t.Fatalf("expected 3 features, got %d", len(items))
	}
	wantTitles := []string{"Devis gratuit", "Garantie décennale", "Artisans certifiés"}
	for i, want := range wantTitles {
		if items[i].Title != want {
			t.Fatalf("feature %d title = %q, want %q", i, items[i].Title, want)
		}
	}
	if items[0].Icon != "⭐" {
		t.Fatalf("expected default icon, got %q", items[0].Icon)
	}
	if items[2].Icon != "🏅" {
		t.Fatalf("expected explicit icon, got %q", items[2].Icon)
	}
}

func TestExtractFeaturesCarriesTimelineAndFlipFields(t *testing.T) {
	props := map[string]any{
		"feature1_title":           "Diagnostic",
		"feature1_date":            "Jour 1",
		"feature1_status":          "completed",
		"feature1_backTitle":       "Détails",
		"feature1_backDescription": "Inspection caméra incluse",
	}

	items := ExtractFeatures(props)
	if len(items) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(items))
	}
	item := items[0]
	if item.Date != "Jour 1" || item.Status != "completed" {
		t.Fatalf("timeline fields not carried: %+v", item)
	}
	if item.BackTitle != "Détails" || item.BackDescription != "Inspection caméra incluse" {
		t.Fatalf("flip card fields not carried: %+v", item)
	}
}

func TestExtractFeaturesIgnoresNonStringAnchors(t *testing.T) {
	props := map[string]any{
		"feature1_title": 42,
		"feature2_title": "Valide",
	}
	items := ExtractFeatures(props)
	if len(items) != 1 || items[0].Title != "Valide" {
		t.Fatalf("unexpected extraction: %+v", items)
	}
}

func TestFlattenExtractRoundTripIsIdempotent(t *testing.T) {
	props := map[string]any{
		"feature2_title":       "Garantie",
		"feature2_description": "Décennale incluse",
		"feature4_title":       "Urgences",
		"feature4_icon":        "🚨",
		"feature6_title":       "Tarifs clairs",
	}

	first := ExtractFeatures(props)
	second := ExtractFeatures(FlattenFeatures(first))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip changed extraction:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractPlansHidesOnlyExplicitFalse(t *testing.T) {
	props := map[string]any{
		"show_basic":    false,
		"show_pro":      "nope",
		"basic_price":   "49€",
		"pro_price":     "99€",
		"premium_price": "199€",
	}

	plans := ExtractPlans(props)
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].ID != "pro" || plans[1].ID != "premium" {
		t.Fatalf("unexpected plan ids: %s, %s", plans[0].ID, plans[1].ID)
	}
	if !plans[0].Highlight {
		t.Fatalf("pro plan should be highlighted by default")
	}
}

func TestExtractPlansCollectsNumberedFeatures(t *testing.T) {
	props := map[string]any{
		"pro_feature1": "Diagnostic inclus",
		"pro_feature3": "Garantie 2 ans",
	}
	plans := ExtractPlans(props)
	var pro *PricingPlan
	for i := range plans {
		if plans[i].ID == "pro" {
			pro = &plans[i]
		}
	}
	if pro == nil {
		t.Fatalf("pro plan missing")
	}
	if len(pro.Features) != 2 || pro.Features[1] != "Garantie 2 ans" {
		t.Fatalf("unexpected pro features: %v", pro.Features)
	}
}

func TestExtractTestimonialsDefaults(t *testing.T) {
	props := map[string]any{
		"testimonial1_text": "Très satisfait du travail.",
	}
	items := ExtractTestimonials(props)
	if len(items) != 1 {
		t.Fatalf("expected 1 testimonial, got %d", len(items))
	}
	if items[0].Author != "Client vérifié" || items[0].Rating != "5" {
		t.Fatalf("defaults not applied: %+v", items[0])
	}
}

func TestExtractNavOrder(t *testing.T) {
	props := map[string]any{
		"nav3_label": "Contact",
		"nav1_label": "Accueil",
		"nav1_link":  "/",
	}
	links := ExtractNav(props)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Label != "Accueil" || links[1].Label != "Contact" {
		t.Fatalf("slot order not preserved: %+v", links)
	}
	if links[1].Link != "#" {
		t.Fatalf("default link not applied: %q", links[1].Link)
	}
}
