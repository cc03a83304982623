package blocks

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type pricingRenderer struct {
	def *Definition
}

func newPricingRenderer() *pricingRenderer {
	return &pricingRenderer{def: &Definition{
		Kind: KindPricing,
		Name: "Pricing",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Nos tarifs"},
			schema.Field{Name: "subtitle", Type: schema.TypeString},
			schema.Field{Name: "annualDiscount", Type: schema.TypeNumber, Default: 0.2, Min: floatPtr(0), Max: floatPtr(1)},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"cards", "cards-toggle", "table-compare", "calculator",
			"comparison", "cards-gradient", "packages", "custom-quote",
			"tiers", "area-calculator", "project-based", "square-meter",
		},
	}}
}

func floatPtr(v float64) *float64 { return &v }

func (r *pricingRenderer) Definition() *Definition { return r.def }

func pricingFamily(variant string) string {
	switch variant {
	case "cards-toggle", "calculator", "area-calculator":
		return "toggle"
	case "table-compare", "comparison", "square-meter":
		return "table"
	default:
		return "cards"
	}
}

// AnnualMonthly computes the per-month price under annual billing: a year at
// the discounted rate, spread back over twelve months, rounded to cents.
func AnnualMonthly(monthly, discount float64) float64 {
	yearly := monthly * 12 * (1 - discount)
	return math.Round(yearly/12*100) / 100
}

// parsePrice pulls a leading numeric amount out of a display price such as
// "89€" or "89,90 €/mois". The second return is false when nothing numeric
// leads the string.
func parsePrice(display string) (float64, bool) {
	s := strings.TrimSpace(display)
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || c == ',' {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s[:end], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatPrice(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (r *pricingRenderer) Render(req Request) Result {
	class := "sg-pricing--" + req.Suffix
	family := pricingFamily(req.Variant)
	plans := ExtractPlans(req.Props)
	discount := 0.2
	if v, ok := req.Props["annualDiscount"].(float64); ok {
		discount = v
	}

	var m markup
	m.writef(`<section class="sg-pricing %s sg-pricing--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-pricing__inner">`)
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-pricing__title">%s</h2>`, esc(title))
	}
	if subtitle := propString(req.Props, "subtitle"); subtitle != "" {
		m.writef(`<p class="sg-pricing__subtitle">%s</p>`, esc(subtitle))
	}
	if family == "toggle" {
		m.writef(`<div class="sg-pricing__billing"><span>Mensuel</span><button class="sg-pricing__switch" role="switch" aria-checked="false" aria-label="Facturation annuelle"></button><span>Annuel <em>-%d%%</em></span></div>`,
			int(math.Round(discount*100)))
	}
	m.writef(`<div class="sg-pricing__grid sg-pricing__grid--%s">`, family)
	for _, plan := range plans {
		highlight := ""
		if plan.Highlight {
			highlight = " sg-pricing__plan--highlight"
		}
		m.writef(`<article class="sg-pricing__plan%s" data-plan="%s">`, highlight, esc(plan.ID))
		if plan.Highlight {
			m.write(`<span class="sg-pricing__badge">Populaire</span>`)
		}
		m.writef(`<h3>%s</h3>`, esc(plan.Name))
		if plan.Description != "" {
			m.writef(`<p class="sg-pricing__desc">%s</p>`, esc(plan.Description))
		}
		if monthly, ok := parsePrice(plan.Price); ok && family == "toggle" {
			m.writef(`<p class="sg-pricing__price" data-monthly="%s" data-annual="%s">%s<span>%s</span></p>`,
				formatPrice(monthly), formatPrice(AnnualMonthly(monthly, discount)),
				formatPrice(monthly), esc(plan.Period))
		} else if plan.Price != "" {
			m.writef(`<p class="sg-pricing__price">%s<span>%s</span></p>`, esc(plan.Price), esc(plan.Period))
		} else {
			m.write(`<p class="sg-pricing__price sg-pricing__price--quote">Sur devis</p>`)
		}
		if len(plan.Features) > 0 {
			m.write(`<ul>`)
			for _, f := range plan.Features {
				m.writef(`<li>%s</li>`, esc(f))
			}
			m.write(`</ul>`)
		}
		m.write(anchor("#contact", plan.CTAText, "sg-pricing__cta"))
		m.write(`</article>`)
	}
	m.write(`</div></div></section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-pricing__inner{max-width:72rem;margin:0 auto;}", class)
	css.writef(".%s .sg-pricing__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 .5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-pricing__subtitle{text-align:center;color:#6b7280;margin:0 0 2rem;}", class)
	css.writef(".%s .sg-pricing__grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1.5rem;align-items:start;}", class)
	css.writef(".%s .sg-pricing__plan{position:relative;background:#ffffff;border:1px solid #e5e7eb;border-radius:.75rem;padding:2rem;text-align:center;}", class)
	css.writef(".%s .sg-pricing__plan--highlight{border-color:%s;box-shadow:0 10px 30px rgba(0,0,0,.12);transform:scale(1.03);}",
		class, req.Theme.Primary())
	css.writef(".%s .sg-pricing__badge{position:absolute;top:-0.8rem;left:50%%;transform:translateX(-50%%);background:%s;color:#ffffff;font-size:.75rem;font-weight:700;padding:.25rem .75rem;border-radius:1rem;}",
		class, req.Theme.Secondary())
	css.writef(".%s .sg-pricing__price{font-size:2.25rem;font-weight:800;color:%s;margin:1rem 0;}", class, req.Theme.Primary())
	css.writef(".%s .sg-pricing__price span{font-size:1rem;font-weight:400;color:#6b7280;}", class)
	css.writef(".%s ul{list-style:none;padding:0;margin:0 0 1.5rem;color:#4b5563;}", class)
	css.writef(".%s li{padding:.35rem 0;border-bottom:1px dashed #e5e7eb;}", class)
	css.writef(".%s .sg-pricing__cta{display:inline-block;padding:.75rem 1.75rem;border-radius:.5rem;background:%s;color:#ffffff;font-weight:600;text-decoration:none;}",
		class, req.Theme.Primary())
	if family == "toggle" {
		css.writef(".%s .sg-pricing__billing{display:flex;justify-content:center;align-items:center;gap:.75rem;margin:0 0 2rem;color:#374151;}", class)
		css.writef(".%s .sg-pricing__billing em{font-style:normal;color:%s;font-weight:700;}", class, req.Theme.Secondary())
		css.writef(".%s .sg-pricing__switch{width:3rem;height:1.6rem;border-radius:1rem;border:none;background:#d1d5db;position:relative;cursor:pointer;}", class)
		css.writef(".%s .sg-pricing__switch::after{content:'';position:absolute;top:.2rem;left:.2rem;width:1.2rem;height:1.2rem;border-radius:50%%;background:#ffffff;transition:left .2s;}", class)
		css.writef(".%s .sg-pricing__switch[aria-checked='true']{background:%s;}", class, req.Theme.Primary())
		css.writef(".%s .sg-pricing__switch[aria-checked='true']::after{left:1.6rem;}", class)
	}
	if family == "table" {
		css.writef(".%s .sg-pricing__grid{gap:0;}", class)
		css.writef(".%s .sg-pricing__plan{border-radius:0;}", class)
		css.writef(".%s .sg-pricing__plan:first-child{border-radius:.75rem 0 0 .75rem;}", class)
		css.writef(".%s .sg-pricing__plan:last-child{border-radius:0 .75rem .75rem 0;}", class)
	}

	result := Result{HTML: m.String(), CSS: css.String()}
	if family == "toggle" {
		result.JS = billingToggleScript(class)
	}
	if len(plans) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: every plan hidden by show_* props", KindPricing))
	}
	return result
}

// billingToggleScript switches displayed prices between the monthly rate and
// the annual-billing monthly equivalent carried in data attributes.
func billingToggleScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgBilling)return;root.dataset.sgBilling='1';var toggle=root.querySelector('.sg-pricing__switch');if(!toggle)return;toggle.addEventListener('click',function(){var annual=toggle.getAttribute('aria-checked')!=='true';toggle.setAttribute('aria-checked',annual?'true':'false');root.querySelectorAll('.sg-pricing__price[data-monthly]').forEach(function(el){var span=el.querySelector('span');var suffix=span?span.outerHTML:'';el.innerHTML=(annual?el.dataset.annual:el.dataset.monthly)+suffix;});});})();`, class)
}
