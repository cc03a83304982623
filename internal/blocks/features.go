package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type featuresRenderer struct {
	def *Definition
}

func newFeaturesRenderer() *featuresRenderer {
	return &featuresRenderer{def: &Definition{
		Kind: KindFeatures,
		Name: "Features",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Pourquoi nous choisir"},
			schema.Field{Name: "subtitle", Type: schema.TypeString},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"grid", "grid-icons", "timeline", "carousel", "stats-counter",
			"icons-left", "centered", "alternating", "colorful", "artistic-grid",
			"solid-grid", "building-blocks", "flip-cards", "tabs",
		},
	}}
}

func (r *featuresRenderer) Definition() *Definition { return r.def }

func featuresFamily(variant string) string {
	switch variant {
	case "timeline":
		return "timeline"
	case "flip-cards":
		return "flip"
	case "icons-left", "alternating":
		return "rows"
	case "tabs":
		return "tabs"
	default:
		return "grid"
	}
}

func (r *featuresRenderer) Render(req Request) Result {
	class := "sg-features--" + req.Suffix
	family := featuresFamily(req.Variant)
	items := ExtractFeatures(req.Props)

	var m markup
	m.writef(`<section class="sg-features %s sg-features--%s">`, class, esc(req.Variant))
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-features__title">%s</h2>`, esc(title))
	}
	if subtitle := propString(req.Props, "subtitle"); subtitle != "" {
		m.writef(`<p class="sg-features__subtitle">%s</p>`, esc(subtitle))
	}
	if family == "tabs" {
		m.write(`<div class="sg-features__tabs" role="tablist">`)
		for i, item := range items {
			active := ""
			if i == 0 {
				active = " is-active"
			}
			m.writef(`<button class="sg-features__tab%s" role="tab" aria-selected="%t" data-tab="%d">%s %s</button>`,
				active, i == 0, i, esc(item.Icon), esc(item.Title))
		}
		m.write(`</div><div class="sg-features__panels">`)
		for i, item := range items {
			hidden := ""
			if i > 0 {
				hidden = " hidden"
			}
			m.writef(`<div class="sg-features__panel" role="tabpanel" data-panel="%d"%s>`, i, hidden)
			m.writef(`<h3>%s</h3>`, esc(item.Title))
			if item.Description != "" {
				m.writef(`<p>%s</p>`, esc(item.Description))
			}
			if item.Link != "" {
				m.write(anchor(item.Link, item.LinkText, "sg-features__link"))
			}
			m.write(`</div>`)
		}
		m.write(`</div>`)
	} else {
		m.writef(`<div class="sg-features__list sg-features__list--%s">`, family)
		for i, item := range items {
			switch family {
			case "timeline":
				m.writef(`<div class="sg-features__item"><div class="sg-features__marker"></div><div class="sg-features__body">`)
				if item.Date != "" {
					m.writef(`<span class="sg-features__date">%s</span>`, esc(item.Date))
				}
				m.writef(`<h3>%s %s</h3>`, esc(item.Icon), esc(item.Title))
				if item.Description != "" {
					m.writef(`<p>%s</p>`, esc(item.Description))
				}
				if item.Status != "" {
					m.writef(`<span class="sg-features__status">%s</span>`, esc(item.Status))
				}
				m.write(`</div></div>`)
			case "flip":
				back := item.BackTitle
				if back == "" {
					back = item.Title
				}
				m.writef(`<div class="sg-features__item sg-features__flip" data-flip="%d"><div class="sg-features__flip-inner">`, i)
				m.writef(`<div class="sg-features__front"><span class="sg-features__icon">%s</span><h3>%s</h3></div>`,
					esc(item.Icon), esc(item.Title))
				m.writef(`<div class="sg-features__back"><h3>%s</h3><p>%s</p></div>`,
					esc(back), esc(item.BackDescription))
				m.write(`</div></div>`)
			default:
				m.write(`<div class="sg-features__item">`)
				m.writef(`<span class="sg-features__icon">%s</span>`, esc(item.Icon))
				m.writef(`<h3>%s</h3>`, esc(item.Title))
				if item.Description != "" {
					m.writef(`<p>%s</p>`, esc(item.Description))
				}
				if item.Link != "" {
					m.write(anchor(item.Link, item.LinkText, "sg-features__link"))
				}
				m.write(`</div>`)
			}
		}
		m.write(`</div>`)
	}
	m.write(`</section>`)

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;max-width:72rem;margin:0 auto;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{max-width:none;background:%s;}", class, bg)
	}
	css.writef(".%s .sg-features__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 .5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-features__subtitle{text-align:center;color:#6b7280;margin:0 0 2.5rem;}", class)
	css.writef(".%s .sg-features__icon{font-size:2rem;display:block;margin-bottom:.75rem;}", class)
	switch family {
	case "timeline":
		css.writef(".%s .sg-features__list{position:relative;max-width:44rem;margin:0 auto;padding-left:2rem;border-left:3px solid %s;}",
			class, req.Theme.Primary())
		css.writef(".%s .sg-features__item{position:relative;margin-bottom:2rem;}", class)
		css.writef(".%s .sg-features__marker{position:absolute;left:-2.6rem;top:.35rem;width:1rem;height:1rem;border-radius:50%%;background:%s;}",
			class, req.Theme.Secondary())
		css.writef(".%s .sg-features__date{font-size:.85rem;color:%s;font-weight:600;}", class, req.Theme.Primary())
	case "flip":
		css.writef(".%s .sg-features__list{display:grid;grid-template-columns:repeat(auto-fit,minmax(14rem,1fr));gap:1.5rem;}", class)
		css.writef(".%s .sg-features__flip{perspective:800px;min-height:12rem;cursor:pointer;}", class)
		css.writef(".%s .sg-features__flip-inner{position:relative;width:100%%;height:100%%;transition:transform .6s;transform-style:preserve-3d;}", class)
		css.writef(".%s .sg-features__flip.is-flipped .sg-features__flip-inner{transform:rotateY(180deg);}", class)
		css.writef(".%s .sg-features__front,.%s .sg-features__back{position:absolute;inset:0;backface-visibility:hidden;border-radius:.75rem;padding:1.5rem;display:flex;flex-direction:column;justify-content:center;text-align:center;}",
			class, class)
		css.writef(".%s .sg-features__front{background:#ffffff;box-shadow:0 4px 14px rgba(0,0,0,.08);}", class)
		css.writef(".%s .sg-features__back{background:%s;color:#ffffff;transform:rotateY(180deg);}", class, req.Theme.Primary())
	case "rows":
		css.writef(".%s .sg-features__list{display:flex;flex-direction:column;gap:1.5rem;max-width:44rem;margin:0 auto;}", class)
		css.writef(".%s .sg-features__item{display:grid;grid-template-columns:3rem 1fr;gap:1rem;align-items:start;}", class)
	case "tabs":
		css.writef(".%s .sg-features__tabs{display:flex;flex-wrap:wrap;justify-content:center;gap:.5rem;margin-bottom:1.5rem;}", class)
		css.writef(".%s .sg-features__tab{padding:.625rem 1.25rem;border:2px solid %s;border-radius:2rem;background:transparent;color:%s;font-weight:600;cursor:pointer;}",
			class, req.Theme.Primary(), req.Theme.Primary())
		css.writef(".%s .sg-features__tab.is-active{background:%s;color:#ffffff;}", class, req.Theme.Primary())
		css.writef(".%s .sg-features__panel{max-width:44rem;margin:0 auto;background:#ffffff;border-radius:.75rem;padding:2rem;box-shadow:0 4px 14px rgba(0,0,0,.06);}",
			class)
	default:
		css.writef(".%s .sg-features__list{display:grid;grid-template-columns:repeat(auto-fit,minmax(14rem,1fr));gap:1.5rem;}", class)
		css.writef(".%s .sg-features__item{background:#ffffff;border-radius:.75rem;padding:1.5rem;box-shadow:0 4px 14px rgba(0,0,0,.06);}", class)
	}
	css.writef(".%s .sg-features__link{color:%s;font-weight:600;text-decoration:none;}", class, req.Theme.Primary())

	result := Result{HTML: m.String(), CSS: css.String()}
	switch family {
	case "flip":
		result.JS = flipScript(class)
	case "tabs":
		result.JS = tabsScript(class)
	}
	if len(items) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: no feature slots populated", KindFeatures))
	}
	return result
}

// flipScript toggles cards on click. Scoped to the instance class and guarded
// so repeated inclusion on one page binds once.
func flipScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgFlip)return;root.dataset.sgFlip='1';root.querySelectorAll('.sg-features__flip').forEach(function(card){card.addEventListener('click',function(){card.classList.toggle('is-flipped');});});})();`, class)
}

// tabsScript switches tab panels by data index. It keys on role attributes so
// the features and content renderers share it.
func tabsScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgTabs)return;root.dataset.sgTabs='1';var tabs=root.querySelectorAll('[role="tab"]');var panels=root.querySelectorAll('[role="tabpanel"]');tabs.forEach(function(tab){tab.addEventListener('click',function(){tabs.forEach(function(t){t.classList.remove('is-active');t.setAttribute('aria-selected','false');});panels.forEach(function(p){p.hidden=p.dataset.panel!==tab.dataset.tab;});tab.classList.add('is-active');tab.setAttribute('aria-selected','true');});});})();`, class)
}
