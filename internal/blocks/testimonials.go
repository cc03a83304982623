package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type testimonialsRenderer struct {
	def *Definition
}

func newTestimonialsRenderer() *testimonialsRenderer {
	return &testimonialsRenderer{def: &Definition{
		Kind: KindTestimonials,
		Name: "Testimonials",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Ils nous font confiance"},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"carousel", "masonry", "carousel-modern", "stacked", "timeline",
			"quotes-elegant", "grid-photos", "photo-focus", "colorful-cards",
			"wall", "client-logos", "case-studies",
		},
	}}
}

func (r *testimonialsRenderer) Definition() *Definition { return r.def }

func testimonialsFamily(variant string) string {
	switch variant {
	case "carousel", "carousel-modern":
		return "carousel"
	case "stacked", "timeline", "case-studies":
		return "stacked"
	default:
		return "grid"
	}
}

func (r *testimonialsRenderer) Render(req Request) Result {
	class := "sg-testimonials--" + req.Suffix
	family := testimonialsFamily(req.Variant)
	items := ExtractTestimonials(req.Props)

	var m markup
	m.writef(`<section class="sg-testimonials %s sg-testimonials--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-testimonials__inner">`)
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-testimonials__title">%s</h2>`, esc(title))
	}
	m.writef(`<div class="sg-testimonials__track sg-testimonials__track--%s">`, family)
	for i, item := range items {
		active := ""
		if family == "carousel" && i == 0 {
			active = " is-active"
		}
		m.writef(`<figure class="sg-testimonials__card%s">`, active)
		m.writef(`<span class="sg-testimonials__stars" aria-label="%s sur 5">%s</span>`, esc(item.Rating), stars(item.Rating))
		m.writef(`<blockquote>%s</blockquote>`, esc(item.Text))
		m.write(`<figcaption>`)
		if item.Avatar != "" {
			m.writef(`<img class="sg-testimonials__avatar" src="%s" alt="%s" loading="lazy">`, esc(item.Avatar), esc(item.Author))
		}
		m.writef(`<strong>%s</strong>`, esc(item.Author))
		if item.Role != "" {
			m.writef(`<span>%s</span>`, esc(item.Role))
		}
		m.write(`</figcaption></figure>`)
	}
	m.write(`</div>`)
	if family == "carousel" && len(items) > 1 {
		m.write(`<div class="sg-testimonials__dots">`)
		for i := range items {
			active := ""
			if i == 0 {
				active = " is-active"
			}
			m.writef(`<button class="sg-testimonials__dot%s" data-slide="%d" aria-label="Avis %d"></button>`, active, i, i+1)
		}
		m.write(`</div>`)
	}
	m.write(`</div></section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-testimonials__inner{max-width:72rem;margin:0 auto;}", class)
	css.writef(".%s .sg-testimonials__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 2.5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-testimonials__card{background:#ffffff;border-radius:.75rem;padding:1.75rem;box-shadow:0 4px 14px rgba(0,0,0,.06);margin:0;}", class)
	css.writef(".%s .sg-testimonials__stars{color:#f59e0b;letter-spacing:.15em;}", class)
	css.writef(".%s blockquote{margin:.75rem 0 1rem;font-style:italic;color:#374151;}", class)
	css.writef(".%s figcaption{display:flex;align-items:center;gap:.5rem;color:#6b7280;}", class)
	css.writef(".%s .sg-testimonials__avatar{width:2.5rem;height:2.5rem;border-radius:50%%;object-fit:cover;}", class)
	switch family {
	case "carousel":
		css.writef(".%s .sg-testimonials__track{position:relative;max-width:40rem;margin:0 auto;}", class)
		css.writef(".%s .sg-testimonials__card{display:none;}.%s .sg-testimonials__card.is-active{display:block;}", class, class)
		css.writef(".%s .sg-testimonials__dots{display:flex;justify-content:center;gap:.5rem;margin-top:1.25rem;}", class)
		css.writef(".%s .sg-testimonials__dot{width:.65rem;height:.65rem;border-radius:50%%;border:none;background:#d1d5db;cursor:pointer;}", class)
		css.writef(".%s .sg-testimonials__dot.is-active{background:%s;}", class, req.Theme.Primary())
	case "stacked":
		css.writef(".%s .sg-testimonials__track{display:flex;flex-direction:column;gap:1.25rem;max-width:44rem;margin:0 auto;}", class)
	default:
		css.writef(".%s .sg-testimonials__track{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem;}", class)
	}

	result := Result{HTML: m.String(), CSS: css.String()}
	if family == "carousel" && len(items) > 1 {
		result.JS = carouselScript(class)
	}
	return result
}

// carouselScript rotates slides every six seconds and wires the dot controls.
// Scoped to the instance class; the data guard keeps rebinding out.
func carouselScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgCarousel)return;root.dataset.sgCarousel='1';var cards=root.querySelectorAll('.sg-testimonials__card');var dots=root.querySelectorAll('.sg-testimonials__dot');var current=0;function show(i){cards[current].classList.remove('is-active');if(dots[current])dots[current].classList.remove('is-active');current=(i+cards.length)%%cards.length;cards[current].classList.add('is-active');if(dots[current])dots[current].classList.add('is-active');}dots.forEach(function(dot,i){dot.addEventListener('click',function(){show(i);});});setInterval(function(){show(current+1);},6000);})();`, class)
}
