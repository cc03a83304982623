package blocks

import (
	"fmt"

	"github.com/goliatone/go-sitegen/internal/schema"
)

type galleryRenderer struct {
	def *Definition
}

func newGalleryRenderer() *galleryRenderer {
	return &galleryRenderer{def: &Definition{
		Kind: KindGallery,
		Name: "Gallery",
		Schema: schema.New(
			schema.Field{Name: "title", Type: schema.TypeString, Default: "Nos réalisations"},
			schema.Field{Name: "variant", Type: schema.TypeString},
		),
		Variants: []string{
			"grid-uniform", "masonry-flow", "grid-hover", "polaroid",
			"before-after", "lightbox-pro", "masonry-creative", "fullscreen",
			"color-filter", "wall-gallery", "pinterest", "project-showcase",
			"progress-photos",
		},
	}}
}

func (r *galleryRenderer) Definition() *Definition { return r.def }

func galleryFamily(variant string) string {
	switch variant {
	case "masonry-flow", "masonry-creative", "pinterest", "wall-gallery":
		return "masonry"
	case "lightbox-pro", "fullscreen", "project-showcase":
		return "lightbox"
	default:
		return "grid"
	}
}

func (r *galleryRenderer) Render(req Request) Result {
	class := "sg-gallery--" + req.Suffix
	family := galleryFamily(req.Variant)
	images := ExtractGallery(req.Props)

	var m markup
	m.writef(`<section class="sg-gallery %s sg-gallery--%s">`, class, esc(req.Variant))
	m.write(`<div class="sg-gallery__inner">`)
	if title := propString(req.Props, "title"); title != "" {
		m.writef(`<h2 class="sg-gallery__title">%s</h2>`, esc(title))
	}
	m.writef(`<div class="sg-gallery__wall sg-gallery__wall--%s">`, family)
	for _, img := range images {
		m.write(`<figure class="sg-gallery__item">`)
		m.writef(`<img src="%s" alt="%s" loading="lazy">`, esc(img.URL), esc(img.Alt))
		if img.Caption != "" {
			m.writef(`<figcaption>%s</figcaption>`, esc(img.Caption))
		}
		m.write(`</figure>`)
	}
	m.write(`</div></div>`)
	if family == "lightbox" {
		m.write(`<div class="sg-gallery__lightbox" hidden><button class="sg-gallery__close" aria-label="Fermer">×</button><img alt=""></div>`)
	}
	m.write(`</section>`)

	assets := make([]Asset, 0, len(images))
	for _, img := range images {
		assets = append(assets, Asset{Type: "image", URL: img.URL})
	}

	var css markup
	css.writef(".%s{padding:4rem 1.5rem;font-family:%s;}", class, req.Theme.BodyFont())
	if bg := propString(req.Props, "sectionBackground"); bg != "" {
		css.writef(".%s{background:%s;}", class, bg)
	}
	css.writef(".%s .sg-gallery__inner{max-width:72rem;margin:0 auto;}", class)
	css.writef(".%s .sg-gallery__title{font-family:%s;font-size:2rem;text-align:center;color:%s;margin:0 0 2.5rem;}",
		class, req.Theme.HeadingFont(), req.Theme.Primary())
	css.writef(".%s .sg-gallery__item{margin:0;border-radius:.5rem;overflow:hidden;}", class)
	css.writef(".%s .sg-gallery__item img{width:100%%;display:block;transition:transform .3s;}", class)
	css.writef(".%s .sg-gallery__item:hover img{transform:scale(1.04);}", class)
	css.writef(".%s figcaption{padding:.5rem .75rem;font-size:.9rem;color:#6b7280;}", class)
	switch family {
	case "masonry":
		css.writef(".%s .sg-gallery__wall{columns:3 16rem;column-gap:1rem;}", class)
		css.writef(".%s .sg-gallery__item{break-inside:avoid;margin-bottom:1rem;}", class)
	case "lightbox":
		css.writef(".%s .sg-gallery__wall{display:grid;grid-template-columns:repeat(auto-fill,minmax(14rem,1fr));gap:1rem;}", class)
		css.writef(".%s .sg-gallery__item{cursor:zoom-in;}", class)
		css.writef(".%s .sg-gallery__lightbox{position:fixed;inset:0;background:rgba(0,0,0,.85);display:flex;align-items:center;justify-content:center;z-index:80;}", class)
		css.writef(".%s .sg-gallery__lightbox img{max-width:92vw;max-height:88vh;border-radius:.25rem;}", class)
		css.writef(".%s .sg-gallery__close{position:absolute;top:1rem;right:1.5rem;font-size:2rem;background:none;border:none;color:#ffffff;cursor:pointer;}", class)
	default:
		css.writef(".%s .sg-gallery__wall{display:grid;grid-template-columns:repeat(auto-fill,minmax(14rem,1fr));gap:1rem;}", class)
	}

	result := Result{HTML: m.String(), CSS: css.String(), Assets: assets}
	if family == "lightbox" && len(images) > 0 {
		result.JS = lightboxScript(class)
	}
	return result
}

func lightboxScript(class string) string {
	return fmt.Sprintf(`(function(){var root=document.querySelector('.%s');if(!root||root.dataset.sgLightbox)return;root.dataset.sgLightbox='1';var box=root.querySelector('.sg-gallery__lightbox');var pic=box.querySelector('img');root.querySelectorAll('.sg-gallery__item img').forEach(function(img){img.addEventListener('click',function(){pic.src=img.src;pic.alt=img.alt;box.hidden=false;});});box.addEventListener('click',function(){box.hidden=true;});})();`, class)
}
