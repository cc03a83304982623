package blocks

import "github.com/goliatone/go-sitegen/internal/schema"

type servicesRenderer struct {
	def *Definition
}

func newServicesRenderer() *servicesRenderer {
	return &servicesRenderer{def: &Definition{
		Kind: KindServices,
		Name: "Services",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Nos services"},
			schema.Field{Name: "subtitle", Type: schema.TypeString},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"cards-hover", "cards-3d", "hexagon", "comparison", "timeline",
			"cards-gradient", "showcase", "portfolio-style", "minimal-grid",
			"color-cards", "visual-grid", "creative", "industrial",
			"grid-solid", "construction-cards",
		},
	}}
}

func (r *servicesRenderer) Definition() *Definition { return r.def }

func servicesFamily(variant string) string {
	switch variant {
	case "cards-3d", "cards-gradient", "color-cards", "construction-cards":
		return "accent"
	case "minimal-grid", "grid-solid", "industrial":
		return "minimal"
	case "showcase", "portfolio-style", "creative", "visual-grid":
		return "showcase"
	default:
		return "cards"
	}
}

func (r *servicesRenderer) Render(req Request) Result {
	class := "sg-services--" + req.Suffix
	family := servicesFamily(req.Variant)
	items := ExtractServices(req.Props)

	var m markup
	m.writef(`<section class="sg-services %s sg-services--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-services__inner">`)
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-services__title">%s</h2>`, esc(title))
	}
	if subtitle := propString(req.Props, "subtitle"); subtitle != "" {
		m.writef(`<p class="sg-services__subtitle">%s</p>`, esc(subtitle))
	}
	m.writef(`<div class="sg-services__grid sg-services__grid--%s">`, family)
	for _, item := range items {
		m.write(`<article class="sg-services__card">`)
		m.writef(`<span class="sg-services__icon">%s</span>`, esc(item.Icon))
		m.writef(`<h3>%s</h3>`, esc(item.Name))
		if item.Description != "" {
			m.writef(`<p>%s</p>`, esc(item.Description))
		}
		if item.Price != "" {
			m.writef(`<span class="sg-services__price">%s</span>`, esc(item.Price))
		}
		if item.Link != "" {
			m.write(anchor(item.Link, "En savoir plus", "sg-services__link"))
		}
		m.write(`</article>`)
	}
	m.write(`</div></div></section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-services__inner{max-width:72rem;margin:0 auto;}", class)
	css.writef(".%s .sg-services__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 .5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-services__subtitle{text-align:center;color:#6b7280;margin:0 0 2.5rem;}", class)
	css.writef(".%s .sg-services__grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem;}", class)
	css.writef(".%s .sg-services__card{border-radius:.75rem;padding:1.75rem;transition:transform .2s,box-shadow .2s;}", class)
	css.writef(".%s .sg-services__icon{font-size:2rem;display:block;margin-bottom:.75rem;}", class)
	css.writef(".%s .sg-services__price{display:block;margin-top:.75rem;font-weight:700;color:%s;}", class, req.Theme.Secondary())
	css.writef(".%s .sg-services__link{display:inline-block;margin-top:.75rem;color:%s;font-weight:600;text-decoration:none;}",
		class, req.Theme.Primary())
	switch family {
	case "accent":
		css.writef(".%s .sg-services__card{background:linear-gradient(160deg,%s,%s);color:#ffffff;}",
			class, req.Theme.Primary(), req.Theme.Secondary())
		css.writef(".%s .sg-services__price,.%s .sg-services__link{color:#ffffff;}", class, class)
	case "minimal":
		css.writef(".%s .sg-services__card{background:transparent;border:1px solid #e5e7eb;}", class)
	case "showcase":
		css.writef(".%s .sg-services__grid{grid-template-columns:repeat(auto-fit,minmax(20rem,1fr));}", class)
		css.writef(".%s .sg-services__card{background:#ffffff;box-shadow:0 10px 30px rgba(0,0,0,.1);}", class)
	default:
		css.writef(".%s .sg-services__card{background:#ffffff;box-shadow:0 4px 14px rgba(0,0,0,.06);}", class)
		css.writef(".%s .sg-services__card:hover{transform:translateY(-4px);box-shadow:0 10px 24px rgba(0,0,0,.12);}", class)
	}

	return Result{HTML: m.String(), CSS: css.String()}
}
