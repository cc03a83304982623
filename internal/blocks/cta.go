package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type ctaRenderer struct {
	def *Definition
}

func newCTARenderer() *ctaRenderer {
	return &ctaRenderer{def: &Definition{
		Kind: KindCTA,
		Name: "Call to action",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Required: true, Default: "Besoin d'un devis ?"},
			schema.Field{Name: "subtitle", Type: schema.TypeString},
			schema.Field{Name: "buttonText", Type: schema.TypeString, Default: "Contactez-nous"},
			schema.Field{Name: "buttonLink", Type: schema.TypeString, Default: "#contact"},
			schema.Field{Name: "phone", Type: schema.TypeString},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"centered-simple", "gradient-waves", "glassmorphism", "neon-glow",
			"countdown", "split-content", "natural", "wood-texture", "minimal",
			"vibrant", "paint-drip", "solid", "industrial",
		},
	}}
}

func (r *ctaRenderer) Definition() *Definition { return r.def }

func ctaFamily(variant string) string {
	switch variant {
	case "gradient-waves", "vibrant", "paint-drip", "neon-glow":
		return "gradient"
	case "glassmorphism":
		return "glass"
	case "minimal", "natural":
		return "plain"
	case "countdown":
		return "countdown"
	default:
		return "solid"
	}
}

func (r *ctaRenderer) Render(req Request) Result {
	class := "sg-cta--" + req.Suffix
	family := ctaFamily(req.Variant)

	var m markup
	m.writef(`<section class="sg-cta %s sg-cta--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-cta__inner">`)
	m.writef(`<h2 class="sg-cta__title">%s</h2>`, esc(propString(req.Props, "title")))
	if subtitle := propString(req.Props, "subtitle"); subtitle != "" {
		m.writef(`<p class="sg-cta__subtitle">%s</p>`, esc(subtitle))
	}
	if family == "countdown" {
		m.write(`<div class="sg-cta__countdown" aria-live="polite">`)
		m.write(`<span class="sg-cta__unit" data-unit="hours">--</span><span class="sg-cta__sep">:</span>`)
		m.write(`<span class="sg-cta__unit" data-unit="minutes">--</span><span class="sg-cta__sep">:</span>`)
		m.write(`<span class="sg-cta__unit" data-unit="seconds">--</span>`)
		m.write(`</div><p class="sg-cta__deadline">Offre valable aujourd'hui</p>`)
	}
	m.write(`<div class="sg-cta__actions">`)
	m.write(anchor(propString(req.Props, "buttonLink"), propString(req.Props, "buttonText"), "sg-cta__button"))
	if phone := propString(req.Props, "phone"); phone != "" {
		m.write(anchor("tel:"+phone, "📞 "+phone, "sg-cta__button sg-cta__button--phone"))
	}
	m.write(`</div></div></section>`)

	var css markup
	css.writef(".%s{padding:4.5rem 1.5rem;text-align:center;font-family:%s;color:#ffffff;}", class, req.Theme.BodyFont())
	switch family {
	case "gradient":
		css.writef(".%s{background:linear-gradient(120deg,%s,%s);}", class, req.Theme.Primary(), req.Theme.Secondary())
	case "glass":
		css.writef(".%s{background:linear-gradient(120deg,%s,%s);}", class, req.Theme.Primary(), req.Theme.Secondary())
		css.writef(".%s .sg-cta__inner{background:rgba(255,255,255,.12);backdrop-filter:blur(10px);border:1px solid rgba(255,255,255,.25);border-radius:1rem;padding:3rem;}", class)
	case "plain":
		css.writef(".%s{background:transparent;color:#111827;}", class)
		css.writef(".%s .sg-cta__title{color:%s;}", class, req.Theme.Primary())
	case "countdown":
		css.writef(".%s{background:linear-gradient(120deg,%s,%s);}", class, req.Theme.Primary(), req.Theme.Secondary())
		css.writef(".%s .sg-cta__countdown{display:flex;justify-content:center;gap:.25rem;font-size:2.5rem;font-weight:700;font-variant-numeric:tabular-nums;margin:0 0 .5rem;}", class)
		css.writef(".%s .sg-cta__unit{min-width:3.5rem;background:rgba(255,255,255,.15);border-radius:.5rem;padding:.25rem .5rem;}", class)
		css.writef(".%s .sg-cta__deadline{opacity:.85;margin:0 0 1.5rem;}", class)
	default:
		css.writef(".%s{background:%s;}", class, req.Theme.Primary())
	}
	css.writef(".%s .sg-cta__inner{max-width:44rem;margin:0 auto;}", class)
	css.writef(".%s .sg-cta__title{font-family:%s;font-size:2rem;margin:0 0 .75rem;}", class, req.Theme.HeadingFont())
	css.writef(".%s .sg-cta__subtitle{opacity:.9;margin:0 0 2rem;}", class)
	css.writef(".%s .sg-cta__button{display:inline-block;margin:0 .5rem;padding:.875rem 2rem;border-radius:.5rem;background:#ffffff;color:%s;font-weight:700;text-decoration:none;}",
		class, req.Theme.Primary())
	css.writef(".%s .sg-cta__button--phone{background:transparent;color:inherit;border:2px solid currentColor;}", class)
	if family == "plain" {
		css.writef(".%s .sg-cta__button{background:%s;color:#ffffff;}", class, req.Theme.Primary())
	}

	result := Result{HTML: m.String(), CSS: css.String()}
	if family == "countdown" {
		result.JS = countdownScript(class)
	}
	return result
}

// countdownScript ticks down to local midnight, matching the daily-offer
// copy next to the timer.
func countdownScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgCountdown)return;root.dataset.sgCountdown='1';var units={hours:root.querySelector('[data-unit="hours"]'),minutes:root.querySelector('[data-unit="minutes"]'),seconds:root.querySelector('[data-unit="seconds"]')};function pad(n){return String(n).padStart(2,'0');}function tick(){var now=new Date();var end=new Date(now);end.setHours(24,0,0,0);var left=Math.max(0,Math.floor((end-now)/1000));units.hours.textContent=pad(Math.floor(left/3600));units.minutes.textContent=pad(Math.floor(left%%3600/60));units.seconds.textContent=pad(left%%60);}tick();setInterval(tick,1000);})();`, class)
}
