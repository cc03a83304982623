package blocks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/internal/schema"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type contentRenderer struct {
	def *Definition
	md  goldmark.Markdown
}

func newContentRenderer() *contentRenderer {
	return &contentRenderer{
		def: &Definition{
			Kind: KindContent,
			Name: "Content",
			Schema: schema.New(
				schema.Field{Name: "title", Type: schema.TypeString},
				schema.Field{Name: "body", Type: schema.TypeString},
				schema.Field{Name: "image", Type: schema.TypeString},
				schema.Field{Name: "imageAlt", Type: schema.TypeString},
				schema.Field{Name: "variant", Type: schema.TypeString},
			),
			Variants: []string{
				"split-content", "timeline", "accordion", "tabs", "magazine",
				"comparison", "story", "process", "visual-journey",
				"visual-story", "before-after", "showcase", "project-steps",
				"technical", "detailed",
			},
		},
		md: goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer)),
	}
}

func (r *contentRenderer) Definition() *Definition { return r.def }

func contentFamily(variant string) string {
	switch variant {
	case "split-content", "comparison", "before-after", "showcase":
		return "split"
	case "magazine", "visual-journey", "visual-story":
		return "magazine"
	case "tabs":
		return "tabs"
	default:
		return "prose"
	}
}

type contentSection struct {
	label string
	body  string
}

// splitSections cuts markdown at level-two headings. Text before the first
// heading comes back with an empty label and renders as an intro.
func splitSections(body string) []contentSection {
	var sections []contentSection
	current := contentSection{}
	flush := func() {
		if current.label != "" || strings.TrimSpace(current.body) != "" {
			sections = append(sections, current)
		}
	}
	for _, line := range strings.Split(body, "\n") {
		if label, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			current = contentSection{label: strings.TrimSpace(label)}
			continue
		}
		current.body += line + "\n"
	}
	flush()
	return sections
}

func (r *contentRenderer) convert(body string, warnings *[]string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s: markdown conversion failed: %v", KindContent, err))
		return "<p>" + esc(body) + "</p>"
	}
	return buf.String()
}

func labeledCount(sections []contentSection) int {
	n := 0
	for _, s := range sections {
		if s.label != "" {
			n++
		}
	}
	return n
}

func (r *contentRenderer) Render(req Request) Result {
	class := "sg-content--" + req.Suffix
	family := contentFamily(req.Variant)

	var warnings []string
	body := propString(req.Props, "body")

	var sections []contentSection
	if family == "tabs" {
		sections = splitSections(body)
		if labeledCount(sections) < 2 {
			family = "prose"
		}
	}

	var m markup
	m.writef(`<section class="sg-content %s sg-content--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-content__inner">`)
	if family == "tabs" {
		if title := propString(req.Props, "title"); title != "" {
			m.writef(`<h2 class="sg-content__title">%s</h2>`, esc(title))
		}
		for _, section := range sections {
			if section.label == "" {
				m.writef(`<div class="sg-content__prose sg-content__intro">%s</div>`, r.convert(section.body, &warnings))
			}
		}
		tab := 0
		m.write(`<div class="sg-content__tabs" role="tablist">`)
		for _, section := range sections {
			if section.label == "" {
				continue
			}
			active := ""
			if tab == 0 {
				active = " is-active"
			}
			m.writef(`<button class="sg-content__tab%s" role="tab" aria-selected="%t" data-tab="%d">%s</button>`,
				active, tab == 0, tab, esc(section.label))
			tab++
		}
		m.write(`</div>`)
		tab = 0
		for _, section := range sections {
			if section.label == "" {
				continue
			}
			hidden := ""
			if tab > 0 {
				hidden = " hidden"
			}
			m.writef(`<div class="sg-content__prose sg-content__panel" role="tabpanel" data-panel="%d"%s>%s</div>`,
				tab, hidden, r.convert(section.body, &warnings))
			tab++
		}
	} else {
		m.write(`<div class="sg-content__prose">`)
		if title := propString(req.Props, "title"); title != "" {
			m.writef(`<h2 class="sg-content__title">%s</h2>`, esc(title))
		}
		if body != "" {
			m.write(r.convert(body, &warnings))
		}
		m.write(`</div>`)
		if image := propString(req.Props, "image"); image != "" && family == "split" {
			m.writef(`<div class="sg-content__media"><img src="%s" alt="%s" loading="lazy"></div>`,
				esc(image), esc(propString(req.Props, "imageAlt")))
		}
	}
	m.write(`</div></section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;color:#374151;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-content__title{font-family:%s;font-size:2rem;color:%s;margin:0 0 1.25rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-content__prose h3{color:%s;}", class, req.Theme.Secondary())
	css.writef(".%s .sg-content__prose p{line-height:1.7;margin:0 0 1rem;}", class)
	css.writef(".%s .sg-content__prose ul{line-height:1.7;padding-left:1.25rem;}", class)
	css.writef(".%s .sg-content__prose a{color:%s;}", class, req.Theme.Primary())
	switch family {
	case "split":
		css.writef(".%s .sg-content__inner{max-width:72rem;margin:0 auto;display:grid;grid-template-columns:1fr 1fr;gap:3rem;align-items:center;}", class)
		css.writef(".%s .sg-content__media img{width:100%%;border-radius:.75rem;}", class)
		css.writef("@media(max-width:48rem){.%s .sg-content__inner{grid-template-columns:1fr;}}", class)
	case "magazine":
		css.writef(".%s .sg-content__inner{max-width:60rem;margin:0 auto;}", class)
		css.writef(".%s .sg-content__prose{columns:2 18rem;column-gap:2.5rem;}", class)
		css.writef(".%s .sg-content__title{column-span:all;}", class)
	case "tabs":
		css.writef(".%s .sg-content__inner{max-width:48rem;margin:0 auto;}", class)
		css.writef(".%s .sg-content__tabs{display:flex;flex-wrap:wrap;gap:.5rem;margin:0 0 1.5rem;}", class)
		css.writef(".%s .sg-content__tab{padding:.5rem 1.25rem;border:2px solid %s;border-radius:2rem;background:transparent;color:%s;font-weight:600;cursor:pointer;}",
			class, req.Theme.Primary(), req.Theme.Primary())
		css.writef(".%s .sg-content__tab.is-active{background:%s;color:#ffffff;}", class, req.Theme.Primary())
	default:
		css.writef(".%s .sg-content__inner{max-width:48rem;margin:0 auto;}", class)
	}

	result := Result{HTML: m.String(), CSS: css.String(), Warnings: warnings}
	if family == "tabs" {
		result.JS = tabsScript(class)
	}
	return result
}
