package blocks

import (
	"time"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type footerRenderer struct {
	def *Definition
	now func() time.Time
}

func newFooterRenderer() *footerRenderer {
	return &footerRenderer{
		def: &Definition{
			Kind: KindFooter,
			Name: "Footer",
			Schema: schema.New(
				schema.Field{Name: "companyName", Type: schema.TypeString, Required: true, Default: "Votre entreprise"},
				schema.Field{Name: "description", Type: schema.TypeString},
				schema.Field{Name: "phone", Type: schema.TypeString},
				schema.Field{Name: "email", Type: schema.TypeString},
				schema.Field{Name: "address", Type: schema.TypeString},
				schema.Field{Name: "city", Type: schema.TypeString},
				schema.Field{Name: "variant", Type: schema.TypeString},
			),
			Variants: []string{"modern-columns", "minimal", "dark"},
		},
		now: time.Now,
	}
}

func (r *footerRenderer) Definition() *Definition { return r.def }

func (r *footerRenderer) Render(req Request) Result {
	class := "sg-footer--" + req.Suffix
	links := ExtractNav(req.Props)
	company := propString(req.Props, "companyName")

	var m markup
	m.writef(`<footer class="sg-footer %s sg-footer--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-footer__inner">`)
	if req.Variant != "minimal" {
		m.write(`<div class="sg-footer__col">`)
		m.writef(`<h3>%s</h3>`, esc(company))
		if desc := propString(req.Props, "description"); desc != "" {
			m.writef(`<p>%s</p>`, esc(desc))
		}
		m.write(`</div>`)
		m.write(`<div class="sg-footer__col"><h4>Contact</h4><ul>`)
		if phone := propString(req.Props, "phone"); phone != "" {
			m.writef(`<li>%s</li>`, anchor("tel:"+phone, phone, "sg-footer__link"))
		}
		if email := propString(req.Props, "email"); email != "" {
			m.writef(`<li>%s</li>`, anchor("mailto:"+email, email, "sg-footer__link"))
		}
		if address := propString(req.Props, "address"); address != "" {
			m.writef(`<li>%s</li>`, esc(address))
		}
		if city := propString(req.Props, "city"); city != "" {
			m.writef(`<li>%s</li>`, esc(city))
		}
		m.write(`</ul></div>`)
		if len(links) > 0 {
			m.write(`<div class="sg-footer__col"><h4>Navigation</h4><ul>`)
			for _, link := range links {
				m.writef(`<li>%s</li>`, anchor(link.Link, link.Label, "sg-footer__link"))
			}
			m.write(`</ul></div>`)
		}
	}
	m.write(`</div>`)
	m.writef(`<div class="sg-footer__legal">© %d %s. Tous droits réservés.</div>`, r.now().Year(), esc(company))
	m.write(`</footer>`)

	var css markup
	bg := "#111827"
	text := "#d1d5db"
	if req.Variant == "minimal" {
		bg = "#f9fafb"
		text = "#4b5563"
	}
	css.writef(".%s{font-family:%s;background:%s;color:%s;padding:3rem 1.5rem 1.5rem;}", class, req.Theme.BodyFont(), bg, text)
	css.writef(".%s .sg-footer__inner{max-width:72rem;margin:0 auto;display:grid;grid-template-columns:repeat(auto-fit,minmax(14rem,1fr));gap:2rem;}", class)
	css.writef(".%s h3{font-family:%s;color:%s;margin:0 0 .75rem;}", class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s h4{margin:0 0 .75rem;color:#ffffff;}", class)
	if req.Variant == "minimal" {
		css.writef(".%s h4{color:#111827;}", class)
	}
	css.writef(".%s ul{list-style:none;padding:0;margin:0;display:flex;flex-direction:column;gap:.4rem;}", class)
	css.writef(".%s .sg-footer__link{color:inherit;text-decoration:none;}", class)
	css.writef(".%s .sg-footer__link:hover{color:%s;}", class, req.Theme.Primary())
	css.writef(".%s .sg-footer__legal{max-width:72rem;margin:2rem auto 0;padding-top:1.25rem;border-top:1px solid rgba(255,255,255,.12);font-size:.85rem;text-align:center;}", class)
	if req.Variant == "minimal" {
		css.writef(".%s .sg-footer__legal{border-top-color:#e5e7eb;}", class)
	}

	return Result{HTML: m.String(), CSS: css.String()}
}
