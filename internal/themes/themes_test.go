package themes

import (
	"reflect"
	"testing"
)

func TestResolveFallsBackToFirstDeclared(t *testing.T) {
	declared := []string{"grid", "timeline", "carousel"}

	if got := Resolve(declared, "timeline"); got != "timeline" {
		t.Fatalf("exact match = %q", got)
	}
	if got := Resolve(declared, "TIMELINE"); got != "timeline" {
		t.Fatalf("case-insensitive match = %q", got)
	}
	if got := Resolve(declared, "hexagon"); got != "grid" {
		t.Fatalf("unknown request = %q, want first declared", got)
	}
	if got := Resolve(declared, ""); got != "grid" {
		t.Fatalf("empty request = %q, want first declared", got)
	}
	if got := Resolve(nil, "anything"); got != "" {
		t.Fatalf("empty declared set = %q, want empty", got)
	}
}

func TestPickerIsDeterministicPerSeed(t *testing.T) {
	first := NewPicker(42)
	second := NewPicker(42)

	for i := 0; i < 20; i++ {
		a := first.Pick("plombier", "hero")
		b := second.Pick("plombier", "hero")
		if a != b {
			t.Fatalf("draw %d diverged: %q vs %q", i, a, b)
		}
	}
}

func TestPickerReturnsOnlyDeclaredCandidates(t *testing.T) {
	picker := NewPicker(7)
	candidates := Candidates("electricien", "services")
	for i := 0; i < 50; i++ {
		picked := picker.Pick("electricien", "services")
		found := false
		for _, candidate := range candidates {
			if candidate == picked {
				found = true
			}
		}
		if !found {
			t.Fatalf("picked %q outside candidate set %v", picked, candidates)
		}
	}
}

func TestPickerUnknownBusinessTypeUsesBaseline(t *testing.T) {
	picker := NewPicker(1)
	picked := picker.Pick("charpentier", "hero")
	baseline := Candidates("plombier", "hero")
	found := false
	for _, candidate := range baseline {
		if candidate == picked {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown business type should draw from the baseline table, got %q", picked)
	}
	if got := picker.Pick("plombier", "jumbotron"); got != "default" {
		t.Fatalf("unknown block kind = %q, want default", got)
	}
}

func TestSectionBackgroundCyclesPalette(t *testing.T) {
	paletteLen := len(backgroundPalettes["plombier"])
	if paletteLen == 0 {
		t.Fatalf("plombier palette empty")
	}
	for i := 0; i < paletteLen; i++ {
		first := SectionBackground("plombier", i)
		wrapped := SectionBackground("plombier", i+paletteLen)
		if !reflect.DeepEqual(first, wrapped) {
			t.Fatalf("index %d and %d should wrap to the same background", i, i+paletteLen)
		}
	}
}

func TestThemeAccessorsFallBack(t *testing.T) {
	var empty Theme
	if got := empty.Primary(); got != FallbackPrimary {
		t.Fatalf("Primary() = %q, want fallback", got)
	}
	if got := empty.Secondary(); got != FallbackSecondary {
		t.Fatalf("Secondary() = %q, want fallback", got)
	}
	if got := empty.HeadingFont(); got != FallbackFont {
		t.Fatalf("HeadingFont() = %q, want fallback", got)
	}

	custom := Theme{Colors: ColorTokens{Primary: "#123456"}}
	if got := custom.Primary(); got != "#123456" {
		t.Fatalf("Primary() = %q, want explicit token", got)
	}
}
