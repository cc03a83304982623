package seo

import (
	"encoding/json"
	"strings"
	"testing"
)

func parisInput() PageInput {
	return PageInput{
		Service:      "Débouchage canalisation",
		City:         "Paris",
		CompanyName:  "Plomberie Durand",
		BusinessType: "plombier",
		Phone:        "01 23 45 67 89",
		Address:      "12 rue de la Pompe",
		PriceRange:   "€€",
		Slug:         "debouchage-canalisation-paris",
		BaseURL:      "https://plomberie-durand.fr",
	}
}

func TestComposeTitleWithinCeiling(t *testing.T) {
	meta := Compose(parisInput())
	if n := len([]rune(meta.Title)); n > TitleMax {
		t.Fatalf("title length %d exceeds %d: %q", n, TitleMax, meta.Title)
	}
	if !strings.Contains(meta.Title, "Paris") {
		t.Fatalf("title should mention the city: %q", meta.Title)
	}
	if !strings.Contains(meta.Title, "Débouchage canalisation") {
		t.Fatalf("title should mention the service: %q", meta.Title)
	}
}

func TestComposeTitleTruncatesPathologicalInput(t *testing.T) {
	in := parisInput()
	in.Service = strings.Repeat("Très long service ", 8)
	meta := Compose(in)
	if n := len([]rune(meta.Title)); n > TitleMax {
		t.Fatalf("title length %d exceeds %d", n, TitleMax)
	}
}

func TestComposeDescriptionWindow(t *testing.T) {
	meta := Compose(parisInput())
	n := len([]rune(meta.Description))
	if n > DescriptionMax {
		t.Fatalf("description length %d exceeds %d", n, DescriptionMax)
	}
	if n < 80 {
		t.Fatalf("description suspiciously short (%d): %q", n, meta.Description)
	}
	if !strings.Contains(meta.Description, "Paris") {
		t.Fatalf("description should mention the city")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	a := Compose(parisInput())
	b := Compose(parisInput())
	if a.Title != b.Title || a.Description != b.Description {
		t.Fatalf("metadata diverged between identical inputs")
	}
	if len(a.JSONLD) != len(b.JSONLD) {
		t.Fatalf("structured data diverged")
	}
	for i := range a.JSONLD {
		if a.JSONLD[i] != b.JSONLD[i] {
			t.Fatalf("JSON-LD block %d diverged", i)
		}
	}
}

func TestLocalBusinessJSONLD(t *testing.T) {
	meta := Compose(parisInput())
	if len(meta.JSONLD) != 2 {
		t.Fatalf("expected LocalBusiness and Service blocks, got %d", len(meta.JSONLD))
	}

	var business map[string]any
	if err := json.Unmarshal([]byte(meta.JSONLD[0]), &business); err != nil {
		t.Fatalf("LocalBusiness block is not valid JSON: %v", err)
	}
	if business["@type"] != "Plumber" {
		t.Fatalf("@type = %v, want Plumber", business["@type"])
	}
	address, ok := business["address"].(map[string]any)
	if !ok || address["addressLocality"] != "Paris" {
		t.Fatalf("address locality missing: %v", business["address"])
	}

	var service map[string]any
	if err := json.Unmarshal([]byte(meta.JSONLD[1]), &service); err != nil {
		t.Fatalf("Service block is not valid JSON: %v", err)
	}
	if service["@type"] != "Service" {
		t.Fatalf("@type = %v, want Service", service["@type"])
	}
	if service["serviceType"] != "Débouchage canalisation" {
		t.Fatalf("serviceType = %v", service["serviceType"])
	}
}

func TestCanonicalURL(t *testing.T) {
	meta := Compose(parisInput())
	want := "https://plomberie-durand.fr/debouchage-canalisation-paris"
	if meta.Canonical != want {
		t.Fatalf("canonical = %q, want %q", meta.Canonical, want)
	}

	in := parisInput()
	in.BaseURL = ""
	if got := Compose(in).Canonical; got != "/debouchage-canalisation-paris" {
		t.Fatalf("canonical without base = %q", got)
	}
}

func TestHeadHTMLEscapesContent(t *testing.T) {
	in := parisInput()
	in.CompanyName = `Durand & "Fils"`
	meta := Compose(in)
	head := HeadHTML(meta)
	if strings.Contains(head, `"Fils"`) && !strings.Contains(head, "&#34;Fils&#34;") {
		t.Fatalf("head should escape quotes: %s", head)
	}
	if !strings.Contains(head, "<title>") || !strings.Contains(head, "application/ld+json") {
		t.Fatalf("head missing required elements")
	}
}

func TestHeadHTMLKeepsScriptClosersInsideJSONLD(t *testing.T) {
	meta := Compose(parisInput())
	meta.JSONLD = append(meta.JSONLD, `{"name":"Durand </script><script>alert(1)</script> Fils"}`)
	head := HeadHTML(meta)

	if got, want := strings.Count(head, "</script>"), len(meta.JSONLD); got != want {
		t.Fatalf("found %d script closers, want only the %d element closers: %s", got, want, head)
	}
	if !strings.Contains(head, `<\/script>`) {
		t.Fatalf("embedded closer should be escaped, got %s", head)
	}
}
