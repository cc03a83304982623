package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

// NavSlots caps the numbered navigation slots scanned by header and footer.
const NavSlots = 8

// NavLink is one extracted navigation slot, anchored on nav<i>_label.
type NavLink struct {
	Label string
	Link  string
}

// ExtractNav scans nav1..navN in slot order.
func ExtractNav(props map[string]any) []NavLink {
	out := make([]NavLink, 0, NavSlots)
	for i := 1; i <= NavSlots; i++ {
		prefix := fmt.Sprintf("nav%d_", i)
		label := propString(props, prefix+"label")
		if label == "" {
			continue
		}
		out = append(out, NavLink{
			Label: label,
			Link:  propStringDefault(props, prefix+"link", "#"),
		})
	}
	return out
}

type headerRenderer struct {
	def *Definition
}

func newHeaderRenderer() *headerRenderer {
	return &headerRenderer{def: &Definition{
		Kind: KindHeader,
		Name: "Header",
		Schema: schema.New(
			schema.Field{Name: "companyName", Type: schema.TypeString, Required: true, Default: "Votre entreprise"},
			schema.Field{Name: "logo", Type: schema.TypeString},
			schema.Field{Name: "phone", Type: schema.TypeString},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{"solid", "transparent-fixed", "centered", "industrial"},
	}}
}

func (r *headerRenderer) Definition() *Definition { return r.def }

func (r *headerRenderer) Render(req Request) Result {
	class := "sg-header--" + req.Suffix
	links := ExtractNav(req.Props)

	var m markup
	m.writef(`<header class="sg-header %s sg-header--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-header__inner">`)
	m.write(`<div class="sg-header__brand">`)
	if logo := propString(req.Props, "logo"); logo != "" {
		m.writef(`<img class="sg-header__logo" src="%s" alt="%s">`, esc(logo), esc(propString(req.Props, "companyName")))
	}
	m.writef(`<span class="sg-header__name">%s</span>`, esc(propString(req.Props, "companyName")))
	m.write(`</div>`)
	if len(links) > 0 {
		m.write(`<button class="sg-header__burger" aria-label="Menu" aria-expanded="false"><span></span><span></span><span></span></button>`)
		m.write(`<nav class="sg-header__nav">`)
		for _, link := range links {
			m.write(anchor(link.Link, link.Label, "sg-header__navlink"))
		}
		m.write(`</nav>`)
	}
	if phone := propString(req.Props, "phone"); phone != "" {
		m.write(anchor("tel:"+phone, phone, "sg-header__phone"))
	}
	m.write(`</div></header>`)

	var css markup
	base := "#ffffff"
	text := "#111827"
	if req.Variant == "industrial" {
		base = "#1f2937"
		text = "#f9fafb"
	}
	css.writef(".%s{font-family:%s;background:%s;color:%s;box-shadow:0 1px 4px rgba(0,0,0,.08);}", class, req.Theme.BodyFont(), base, text)
	if req.Variant == "transparent-fixed" {
		css.writef(".%s{position:fixed;top:0;left:0;right:0;z-index:60;background:rgba(255,255,255,.92);backdrop-filter:blur(8px);}", class)
	}
	css.writef(".%s .sg-header__inner{max-width:72rem;margin:0 auto;display:flex;align-items:center;gap:2rem;padding:1rem 1.5rem;}", class)
	if req.Variant == "centered" {
		css.writef(".%s .sg-header__inner{flex-direction:column;gap:.75rem;}", class)
	}
	css.writef(".%s .sg-header__brand{display:flex;align-items:center;gap:.6rem;}", class)
	css.writef(".%s .sg-header__logo{height:2.25rem;}", class)
	css.writef(".%s .sg-header__name{font-family:%s;font-weight:700;font-size:1.15rem;color:%s;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-header__nav{display:flex;gap:1.25rem;margin-left:auto;}", class)
	css.writef(".%s .sg-header__navlink{color:inherit;text-decoration:none;font-weight:500;}", class)
	css.writef(".%s .sg-header__navlink:hover{color:%s;}", class, req.Theme.Primary())
	css.writef(".%s .sg-header__phone{color:%s;font-weight:700;text-decoration:none;}", class, req.Theme.Primary())
	css.writef(".%s .sg-header__burger{display:none;flex-direction:column;gap:.3rem;background:none;border:none;cursor:pointer;margin-left:auto;}", class)
	css.writef(".%s .sg-header__burger span{width:1.5rem;height:2px;background:currentColor;}", class)
	css.writef("@media(max-width:48rem){.%s .sg-header__burger{display:flex;}.%s .sg-header__nav{display:none;position:absolute;top:100%%;left:0;right:0;flex-direction:column;background:%s;padding:1rem 1.5rem;}.%s .sg-header__nav.is-open{display:flex;}.%s{position:relative;}}",
		class, class, base, class, class)

	result := Result{HTML: m.String(), CSS: css.String()}
	if len(links) > 0 {
		result.JS = burgerScript(class)
	}
	return result
}

func burgerScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgNav)return;root.dataset.sgNav='1';var burger=root.querySelector('.sg-header__burger');var nav=root.querySelector('.sg-header__nav');if(!burger||!nav)return;burger.addEventListener('click',function(){var open=nav.classList.toggle('is-open');burger.setAttribute('aria-expanded',open?'true':'false');});})();`, class)
}
