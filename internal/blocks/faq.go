package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type faqRenderer struct {
	def *Definition
}

func newFAQRenderer() *faqRenderer {
	return &faqRenderer{def: &Definition{
		Kind: KindFAQ,
		Name: "FAQ",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Questions fréquentes"},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"accordion", "chat-style", "grid", "searchable", "categories",
			"simple", "expandable", "colorful", "bubble-chat", "technical",
			"categorized",
		},
	}}
}

func (r *faqRenderer) Definition() *Definition { return r.def }

func faqFamily(variant string) string {
	switch variant {
	case "chat-style", "bubble-chat":
		return "chat"
	case "grid", "colorful":
		return "grid"
	default:
		return "accordion"
	}
}

const faqFallbackAnswer = "Contactez-nous pour une réponse personnalisée."

func (r *faqRenderer) Render(req Request) Result {
	class := "sg-faq--" + req.Suffix
	family := faqFamily(req.Variant)
	items := ExtractFAQ(req.Props)

	var m markup
	m.writef(`<section class="sg-faq %s sg-faq--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-faq__inner">`)
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-faq__title">%s</h2>`, esc(title))
	}
	m.writef(`<div class="sg-faq__list sg-faq__list--%s">`, family)
	for i, item := range items {
		answer := item.Answer
		if answer == "" {
			answer = faqFallbackAnswer
		}
		switch family {
		case "chat":
			m.writef(`<div class="sg-faq__exchange"><p class="sg-faq__bubble sg-faq__bubble--question">%s</p><p class="sg-faq__bubble sg-faq__bubble--answer">%s</p></div>`,
				esc(item.Question), esc(answer))
		case "grid":
			m.writef(`<div class="sg-faq__cell"><h3>%s</h3><p>%s</p></div>`, esc(item.Question), esc(answer))
		default:
			open := ""
			if i == 0 {
				open = " open"
			}
			m.writef(`<details class="sg-faq__entry"%s><summary>%s</summary><p>%s</p></details>`,
				open, esc(item.Question), esc(answer))
		}
	}
	m.write(`</div></div></section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-faq__inner{max-width:48rem;margin:0 auto;}", class)
	css.writef(".%s .sg-faq__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 2.5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	switch family {
	case "chat":
		css.writef(".%s .sg-faq__bubble{max-width:85%%;padding:.75rem 1rem;border-radius:1rem;margin:.4rem 0;}", class)
		css.writef(".%s .sg-faq__bubble--question{background:#e5e7eb;color:#111827;margin-right:auto;}", class)
		css.writef(".%s .sg-faq__bubble--answer{background:%s;color:#ffffff;margin-left:auto;}", class, req.Theme.Primary())
		css.writef(".%s .sg-faq__exchange{display:flex;flex-direction:column;margin-bottom:1rem;}", class)
	case "grid":
		css.writef(".%s .sg-faq__inner{max-width:72rem;}", class)
		css.writef(".%s .sg-faq__list{display:grid;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr));gap:1.5rem;}", class)
		css.writef(".%s .sg-faq__cell{background:#ffffff;border-radius:.75rem;padding:1.5rem;box-shadow:0 4px 14px rgba(0,0,0,.06);}", class)
		css.writef(".%s .sg-faq__cell h3{color:%s;margin:0 0 .5rem;}", class, req.Theme.Primary())
	default:
		css.writef(".%s .sg-faq__entry{border-bottom:1px solid #e5e7eb;padding:.75rem 0;}", class)
		css.writef(".%s summary{cursor:pointer;font-weight:600;color:#111827;list-style:none;position:relative;padding-right:2rem;}", class)
		css.writef(".%s summary::after{content:'+';position:absolute;right:.25rem;color:%s;font-size:1.2rem;}", class, req.Theme.Primary())
		css.writef(".%s details[open] summary::after{content:'–';}", class)
		css.writef(".%s .sg-faq__entry p{color:#4b5563;margin:.5rem 0 0;}", class)
	}

	result := Result{HTML: m.String(), CSS: css.String()}
	if family == "accordion" && len(items) > 1 {
		result.JS = accordionScript(class)
	}
	return result
}

// accordionScript keeps a single entry open at a time.
func accordionScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgAccordion)return;root.dataset.sgAccordion='1';var entries=root.querySelectorAll('details');entries.forEach(function(entry){entry.addEventListener('toggle',function(){if(!entry.open)return;entries.forEach(function(other){if(other!==entry)other.open=false;});});});})();`, class)
}
