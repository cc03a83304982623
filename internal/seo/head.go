package seo

import (
	"fmt"
	"html"
	"strings"
)

// HeadHTML renders the metadata as head element markup, ready to drop into a
// document template.
func HeadHTML(meta Metadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(meta.Title))
	fmt.Fprintf(&b, `<meta name="description" content="%s">`+"\n", html.EscapeString(meta.Description))
	if len(meta.Keywords) > 0 {
		fmt.Fprintf(&b, `<meta name="keywords" content="%s">`+"\n", html.EscapeString(strings.Join(meta.Keywords, ", ")))
	}
	if meta.Canonical != "" {
		fmt.Fprintf(&b, `<link rel="canonical" href="%s">`+"\n", html.EscapeString(meta.Canonical))
	}
	fmt.Fprintf(&b, `<meta property="og:title" content="%s">`+"\n", html.EscapeString(meta.OGTitle))
	fmt.Fprintf(&b, `<meta property="og:type" content="%s">`+"\n", html.EscapeString(meta.OGType))
	if meta.OGURL != "" {
		fmt.Fprintf(&b, `<meta property="og:url" content="%s">`+"\n", html.EscapeString(meta.OGURL))
	}
	fmt.Fprintf(&b, `<meta property="og:description" content="%s">`+"\n", html.EscapeString(meta.Description))
	for _, block := range meta.JSONLD {
		fmt.Fprintf(&b, `<script type="application/ld+json">%s</script>`+"\n", scriptSafe(block))
	}
	return strings.TrimRight(b.String(), "\n")
}

// scriptSafe escapes the sequences that would end a script element early, so
// values like a company name containing "</script>" cannot break out of the
// JSON-LD block.
func scriptSafe(jsonText string) string {
	return strings.ReplaceAll(jsonText, "</", `<\/`)
}
