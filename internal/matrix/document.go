package matrix

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/internal/composer"
	"github.com/goliatone/go-sitegen/internal/seo"
)

// renderDocument wraps a composed bundle into a standalone HTML document with
// inlined styles and scripts, ready to write to disk.
func renderDocument(bundle *composer.Bundle, meta seo.Metadata) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="fr">` + "\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	b.WriteString(seo.HeadHTML(meta))
	b.WriteString("\n<style>\n")
	b.WriteString(baseStylesheet)
	if bundle.CSS != "" {
		b.WriteString("\n")
		b.WriteString(bundle.CSS)
	}
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(bundle.HTML)
	if bundle.JS != "" {
		fmt.Fprintf(&b, "\n<script>\n%s\n</script>", bundle.JS)
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

const baseStylesheet = `*{box-sizing:border-box;}body{margin:0;color:#111827;}img{max-width:100%;}h1,h2,h3,h4{line-height:1.2;}`
