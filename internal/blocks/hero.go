package blocks

import "github.com/goliatone/go-sitegen/internal/schema"

type heroRenderer struct {
	def *Definition
}

func newHeroRenderer() *heroRenderer {
	return &heroRenderer{def: &Definition{
		Kind: KindHero,
		Name: "Hero",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Required: true, Default: "Votre artisan de confiance"},
			schema.Field{Name: "subtitle", Type: schema.TypeString},
			schema.Field{Name: "ctaText", Type: schema.TypeString, Default: "Demander un devis"},
			schema.Field{Name: "ctaLink", Type: schema.TypeString, Default: "#contact"},
			schema.Field{Name: "secondaryCtaText", Type: schema.TypeString},
			schema.Field{Name: "secondaryCtaLink", Type: schema.TypeString},
			schema.Field{Name: "backgroundImage", Type: schema.TypeString},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"centered-bold", "split-screen", "side-image", "gradient-animated",
			"tech-grid", "fullscreen-image", "split-content", "parallax",
			"color-burst", "artistic", "gallery-bg", "construction",
			"blueprint", "strong",
		},
	}}
}

func (r *heroRenderer) Definition() *Definition { return r.def }

// heroFamily folds the variant namespace into the layouts the renderer
// actually lays out. Variant names stay in the emitted class so pages built
// from different categories keep distinct hooks.
func heroFamily(variant string) string {
	switch variant {
	case "split-screen", "side-image", "split-content":
		return "split"
	case "fullscreen-image", "parallax", "gallery-bg":
		return "fullscreen"
	case "gradient-animated", "color-burst", "artistic", "neon":
		return "gradient"
	default:
		return "centered"
	}
}

func (r *heroRenderer) Render(req Request) Result {
	class := "sg-hero--" + req.Suffix
	family := heroFamily(req.Variant)

	var m markup
	m.writef(`<section class="sg-hero %s sg-hero--%s sg-hero--layout-%s">`, class, esc(req.Variant), family)
	m.write(`<div class="sg-hero__inner">`)
	m.write(`<div class="sg-hero__copy">`)
	m.writef(`<h1 class="sg-hero__title">%s</h1>`, esc(propString(req.Props, "title")))
	if subtitle := propString(req.Props, "subtitle"); subtitle != "" {
		m.writef(`<p class="sg-hero__subtitle">%s</p>`, esc(subtitle))
	}
	m.write(`<div class="sg-hero__actions">`)
	m.write(anchor(propString(req.Props, "ctaLink"), propString(req.Props, "ctaText"), "sg-hero__cta"))
	if secondary := propString(req.Props, "secondaryCtaText"); secondary != "" {
		m.write(anchor(propString(req.Props, "secondaryCtaLink"), secondary, "sg-hero__cta sg-hero__cta--secondary"))
	}
	m.write(`</div></div>`)
	if family == "split" {
		image := propString(req.Props, "backgroundImage")
		if image != "" {
			m.writef(`<div class="sg-hero__media"><img src="%s" alt="" loading="eager"></div>`, esc(image))
		} else {
			m.write(`<div class="sg-hero__media sg-hero__media--placeholder"></div>`)
		}
	}
	m.write(`</div></section>`)

	var css markup
	css.writef(".%s{position:relative;padding:6rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	} else {
		css.writef(".%s{background:linear-gradient(135deg,%s 0%%,%s 100%%);color:#ffffff;}",
			class, req.Theme.Primary(), req.Theme.Secondary())
	}
	css.writef(".%s .sg-hero__inner{max-width:72rem;margin:0 auto;display:flex;gap:3rem;align-items:center;}", class)
	css.writef(".%s .sg-hero__title{font-family:%s;font-size:clamp(2rem,5vw,3.5rem);line-height:1.1;margin:0 0 1rem;}",
		class, req.Theme.HeadingFont())
	css.writef(".%s .sg-hero__subtitle{font-size:1.25rem;opacity:.9;margin:0 0 2rem;max-width:38rem;}", class)
	css.writef(".%s .sg-hero__cta{display:inline-block;padding:.875rem 2rem;border-radius:.5rem;background:#ffffff;color:%s;font-weight:600;text-decoration:none;margin-right:1rem;}",
		class, req.Theme.Primary())
	css.writef(".%s .sg-hero__cta--secondary{background:transparent;color:inherit;border:2px solid currentColor;}", class)
	switch family {
	case "split":
		css.writef(".%s .sg-hero__copy{flex:1;}.%s .sg-hero__media{flex:1;}.%s .sg-hero__media img{width:100%%;border-radius:1rem;}", class, class, class)
		css.writef(".%s .sg-hero__media--placeholder{min-height:20rem;border-radius:1rem;background:rgba(255,255,255,.15);}", class)
	case "fullscreen":
		css.writef(".%s{min-height:90vh;display:flex;align-items:center;}", class)
		if image := propString(req.Props, "backgroundImage"); image != "" {
			css.writef(".%s{background-image:linear-gradient(rgba(0,0,0,.45),rgba(0,0,0,.45)),url('%s');background-size:cover;background-position:center;color:#ffffff;}",
				class, esc(image))
		}
	case "gradient":
		css.writef(".%s{background:linear-gradient(-45deg,%s,%s,%s);background-size:400%% 400%%;animation:sgHeroShift-%s 12s ease infinite;color:#ffffff;}",
			class, req.Theme.Primary(), req.Theme.Secondary(), req.Theme.Primary(), req.Suffix)
		css.writef("@keyframes sgHeroShift-%s{0%%{background-position:0%% 50%%}50%%{background-position:100%% 50%%}100%%{background-position:0%% 50%%}}", req.Suffix)
	default:
		css.writef(".%s .sg-hero__inner{flex-direction:column;text-align:center;}", class)
	}

	return Result{HTML: m.String(), CSS: css.String()}
}
