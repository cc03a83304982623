// Package seo derives page metadata for generated landing pages: length-bound
// titles and descriptions, canonical URLs, and LocalBusiness structured data.
// Output is fully deterministic for a given input.
package seo

import (
	"fmt"
	"strings"
)

const (
	// TitleMax is the title length ceiling in runes.
	TitleMax = 60
	// DescriptionMax is the meta description ceiling in runes.
	DescriptionMax = 160
	// descriptionTarget is the lower bound of the preferred description window.
	descriptionTarget = 150
)

// PageInput describes one generated page for metadata purposes.
type PageInput struct {
	Service      string
	City         string
	CompanyName  string
	BusinessType string
	Phone        string
	Address      string
	PriceRange   string
	Slug         string
	BaseURL      string
}

// Metadata is the composed head material for a page.
type Metadata struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	OGTitle     string
	OGType      string
	OGURL       string
	JSONLD      []string
}

// Compose derives the full metadata set. Titles try a descending list of
// templates and keep the first that fits the ceiling; descriptions prefer a
// candidate landing in the 150 to 160 rune window.
func Compose(in PageInput) Metadata {
	title := composeTitle(in)
	canonical := canonicalURL(in)
	return Metadata{
		Title:       title,
		Description: composeDescription(in),
		Canonical:   canonical,
		Keywords:    composeKeywords(in),
		OGTitle:     title,
		OGType:      "website",
		OGURL:       canonical,
		JSONLD: []string{
			localBusinessJSONLD(in),
			serviceJSONLD(in),
		},
	}
}

func composeTitle(in PageInput) string {
	candidates := []string{
		fmt.Sprintf("%s %s - %s | Devis Gratuit", in.Service, in.City, in.CompanyName),
		fmt.Sprintf("%s %s - %s", in.Service, in.City, in.CompanyName),
		fmt.Sprintf("%s %s | Devis Gratuit", in.Service, in.City),
		fmt.Sprintf("%s %s", in.Service, in.City),
	}
	for _, candidate := range candidates {
		if runeLen(candidate) <= TitleMax {
			return candidate
		}
	}
	return truncateRunes(candidates[len(candidates)-1], TitleMax)
}

func composeDescription(in PageInput) string {
	candidates := []string{
		fmt.Sprintf("%s à %s par %s. Artisans qualifiés, devis gratuit sous 24h, tarifs transparents et garantie décennale. Appelez le %s pour une intervention rapide.",
			in.Service, in.City, in.CompanyName, in.Phone),
		fmt.Sprintf("%s à %s par %s. Devis gratuit sous 24h, artisans qualifiés et tarifs transparents. Intervention rapide dans tout le secteur, travail garanti.",
			in.Service, in.City, in.CompanyName),
		fmt.Sprintf("%s à %s : devis gratuit, artisans qualifiés, intervention rapide. Contactez %s pour un accompagnement personnalisé.",
			in.Service, in.City, in.CompanyName),
		fmt.Sprintf("%s à %s. Devis gratuit et intervention rapide par %s.",
			in.Service, in.City, in.CompanyName),
	}
	// Prefer a candidate inside the target window, then the longest one under
	// the ceiling, then a hard truncate.
	for _, candidate := range candidates {
		if n := runeLen(candidate); n >= descriptionTarget && n <= DescriptionMax {
			return candidate
		}
	}
	best := ""
	for _, candidate := range candidates {
		if n := runeLen(candidate); n <= DescriptionMax && n > runeLen(best) {
			best = candidate
		}
	}
	if best != "" {
		return best
	}
	return truncateRunes(candidates[0], DescriptionMax)
}

func composeKeywords(in PageInput) []string {
	service := strings.ToLower(in.Service)
	city := strings.ToLower(in.City)
	return []string{
		fmt.Sprintf("%s %s", service, city),
		fmt.Sprintf("%s %s", strings.ToLower(in.BusinessType), city),
		fmt.Sprintf("%s pas cher", service),
		fmt.Sprintf("devis %s", service),
		fmt.Sprintf("%s urgence %s", strings.ToLower(in.BusinessType), city),
	}
}

func canonicalURL(in PageInput) string {
	base := strings.TrimRight(in.BaseURL, "/")
	if base == "" {
		return "/" + in.Slug
	}
	return base + "/" + in.Slug
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}
