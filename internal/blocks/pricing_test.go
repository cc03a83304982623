package blocks

import (
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/google/uuid"
)

func TestAnnualMonthly(t *testing.T) {
	cases := []struct {
		monthly  float64
		discount float64
		want     float64
	}{
		{100, 0.2, 80},
		{89, 0.2, 71.2},
		{149, 0.1, 134.1},
		{50, 0, 50},
	}
	for _, tc := range cases {
		if got := AnnualMonthly(tc.monthly, tc.discount); got != tc.want {
			t.Fatalf("AnnualMonthly(%v, %v) = %v, want %v", tc.monthly, tc.discount, got, tc.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"89€", 89, true},
		{"89,90 €/mois", 89.9, true},
		{"149", 149, true},
		{"Sur devis", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parsePrice(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parsePrice(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPricingToggleVariantCarriesAnnualPrices(t *testing.T) {
	registry := NewRegistry()
	inst := &Instance{
		ID:        uuid.New(),
		BlockType: KindPricing,
		Props: map[string]any{
			"variant":     "cards-toggle",
			"basic_price": "100€",
		},
	}

	result := registry.Render(NewRun(), inst, themes.Default())
	if !strings.Contains(result.HTML, `data-monthly="100"`) {
		t.Fatalf("monthly price missing from markup: %s", result.HTML)
	}
	if !strings.Contains(result.HTML, `data-annual="80"`) {
		t.Fatalf("annual price missing from markup: %s", result.HTML)
	}
	if result.JS == "" {
		t.Fatalf("toggle variant should emit its script")
	}
}
