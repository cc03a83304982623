package matrix

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/content"
	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/goliatone/go-sitegen/internal/themes"
)

// canonicalSequence is the section order every generated landing page uses.
var canonicalSequence = []blocks.Kind{
	blocks.KindHeader,
	blocks.KindHero,
	blocks.KindContent,
	blocks.KindFeatures,
	blocks.KindServices,
	blocks.KindTestimonials,
	blocks.KindGallery,
	blocks.KindFAQ,
	blocks.KindCTA,
	blocks.KindFooter,
}

// planBlocks assembles the instance list for one page: the canonical sequence
// with per-kind variants drawn from the seeded picker, section backgrounds
// cycled by position, and props synthesized from the profile and copy.
func (g *Generator) planBlocks(profile *BusinessProfile, job pageJob, picker *themes.Picker, copyEntry content.Copy) []blocks.Instance {
	sequence := make([]blocks.Kind, 0, len(canonicalSequence)+1)
	for _, kind := range canonicalSequence {
		if kind == blocks.KindCTA && profile.IncludePricing {
			sequence = append(sequence, blocks.KindPricing)
		}
		sequence = append(sequence, kind)
	}

	instances := make([]blocks.Instance, 0, len(sequence))
	for position, kind := range sequence {
		props := g.blockProps(kind, profile, job, copyEntry)
		props["variant"] = picker.Pick(profile.BusinessType, string(kind))
		props["sectionBackground"] = themes.SectionBackground(profile.BusinessType, position).Value()
		instances = append(instances, blocks.Instance{
			ID:        identity.BlockInstanceUUID(job.slug, string(kind), position),
			BlockType: kind,
			Order:     position,
			Props:     props,
		})
	}
	return instances
}

func (g *Generator) blockProps(kind blocks.Kind, profile *BusinessProfile, job pageJob, copyEntry content.Copy) map[string]any {
	switch kind {
	case blocks.KindHeader:
		return headerProps(profile)
	case blocks.KindHero:
		return heroProps(profile, job)
	case blocks.KindContent:
		return contentProps(job, copyEntry)
	case blocks.KindFeatures:
		return featureProps(copyEntry)
	case blocks.KindServices:
		return serviceProps(profile, job)
	case blocks.KindTestimonials:
		return testimonialProps(profile, job)
	case blocks.KindGallery:
		return galleryProps(job)
	case blocks.KindFAQ:
		return faqProps(profile, job, copyEntry)
	case blocks.KindPricing:
		return pricingProps(profile, job)
	case blocks.KindCTA:
		return ctaProps(profile, job)
	case blocks.KindFooter:
		return footerProps(profile, job)
	}
	return map[string]any{}
}

func headerProps(profile *BusinessProfile) map[string]any {
	return map[string]any{
		"companyName": profile.CompanyName,
		"phone":       profile.Phone,
		"nav1_label":  "Accueil",
		"nav1_link":   "#",
		"nav2_label":  "Services",
		"nav2_link":   "#services",
		"nav3_label":  "Réalisations",
		"nav3_link":   "#realisations",
		"nav4_label":  "Contact",
		"nav4_link":   "#contact",
	}
}

func heroProps(profile *BusinessProfile, job pageJob) map[string]any {
	subtitle := fmt.Sprintf("%s intervient à %s et ses environs. Devis gratuit, travail garanti.",
		profile.CompanyName, job.city.Name)
	return map[string]any{
		"title":            fmt.Sprintf("%s à %s", job.service.Name, job.city.Name),
		"subtitle":         subtitle,
		"ctaText":          "Demander un devis gratuit",
		"ctaLink":          "#contact",
		"secondaryCtaText": phoneLabel(profile.Phone),
		"secondaryCtaLink": phoneLink(profile.Phone),
	}
}

func contentProps(job pageJob, copyEntry content.Copy) map[string]any {
	body := copyEntry.Body
	if copyEntry.LocalNote != "" {
		body += "\n\n" + copyEntry.LocalNote
	}
	return map[string]any{
		"title": copyEntry.Title,
		"body":  body,
	}
}

func featureProps(copyEntry content.Copy) map[string]any {
	props := map[string]any{
		"title":    "Pourquoi nous choisir",
		"subtitle": copyEntry.Guarantee,
	}
	icons := []string{"✅", "⚡", "🛠️", "🏆", "📋", "🤝"}
	for i, benefit := range copyEntry.Benefits {
		if i >= blocks.FeatureSlots {
			break
		}
		prefix := fmt.Sprintf("feature%d_", i+1)
		props[prefix+"title"] = benefit
		props[prefix+"icon"] = icons[i%len(icons)]
	}
	// Process steps fill remaining slots as a secondary source.
	used := len(copyEntry.Benefits)
	for i, step := range copyEntry.Process {
		slot := used + i + 1
		if slot > blocks.FeatureSlots {
			break
		}
		prefix := fmt.Sprintf("feature%d_", slot)
		props[prefix+"title"] = step
		props[prefix+"icon"] = fmt.Sprintf("%d️⃣", i+1)
	}
	return props
}

func serviceProps(profile *BusinessProfile, job pageJob) map[string]any {
	props := map[string]any{
		"title":    "Nos services",
		"subtitle": fmt.Sprintf("Toutes nos prestations à %s", job.city.Name),
	}
	for i, svc := range profile.Services {
		if i >= blocks.ServiceSlots {
			break
		}
		prefix := fmt.Sprintf("service%d_", i+1)
		props[prefix+"name"] = svc.Name
		if svc.Description != "" {
			props[prefix+"description"] = svc.Description
		}
		if svc.Price != "" {
			props[prefix+"price"] = svc.Price
		}
		props[prefix+"link"] = "/" + pageSlug(svc.Name, job.city.Name)
	}
	return props
}

// testimonialProps synthesizes review copy from fixed templates. The same
// (service, city) pair always yields the same testimonials.
func testimonialProps(profile *BusinessProfile, job pageJob) map[string]any {
	service := strings.ToLower(job.service.Name)
	return map[string]any{
		"title":               "Ils nous font confiance",
		"testimonial1_text":   fmt.Sprintf("Intervention rapide et soignée pour mon %s. Travail impeccable, je recommande vivement.", service),
		"testimonial1_author": "Marie L.",
		"testimonial1_role":   job.city.Name,
		"testimonial1_rating": "5",
		"testimonial2_text":   fmt.Sprintf("Devis clair, délais respectés. %s est une entreprise sérieuse.", profile.CompanyName),
		"testimonial2_author": "Thomas B.",
		"testimonial2_role":   job.city.Name,
		"testimonial2_rating": "5",
		"testimonial3_text":   "Très bon contact, tarifs transparents et résultat à la hauteur. Merci encore.",
		"testimonial3_author": "Sophie D.",
		"testimonial3_role":   job.city.Name,
		"testimonial3_rating": "4",
	}
}

func galleryProps(job pageJob) map[string]any {
	props := map[string]any{
		"title": "Nos réalisations",
	}
	for i := 1; i <= 4; i++ {
		prefix := fmt.Sprintf("image%d_", i)
		props[prefix+"url"] = fmt.Sprintf("/assets/gallery/%s-%d.jpg", job.slug, i)
		props[prefix+"alt"] = fmt.Sprintf("%s à %s, chantier %d", job.service.Name, job.city.Name, i)
	}
	return props
}

func faqProps(profile *BusinessProfile, job pageJob, copyEntry content.Copy) map[string]any {
	service := strings.ToLower(job.service.Name)
	answer2 := "Oui, chaque intervention commence par un devis détaillé et gratuit, sans engagement."
	if copyEntry.Guarantee != "" {
		answer2 += " " + copyEntry.Guarantee
	}
	return map[string]any{
		"title":         "Questions fréquentes",
		"faq1_question": fmt.Sprintf("Intervenez-vous rapidement à %s ?", job.city.Name),
		"faq1_answer": fmt.Sprintf("Oui, notre équipe couvre %s et les communes voisines. Pour une urgence, appelez le %s.",
			job.city.Name, profile.Phone),
		"faq2_question": "Le devis est-il gratuit ?",
		"faq2_answer":   answer2,
		"faq3_question": fmt.Sprintf("Combien coûte un %s ?", service),
		"faq3_answer":   "Le tarif dépend de la nature exacte de l'intervention. Il est annoncé et validé avec vous avant tout début de travaux.",
		"faq4_question": "Vos interventions sont-elles garanties ?",
		"faq4_answer":   "Toutes nos prestations sont couvertes par notre assurance professionnelle et nos garanties contractuelles.",
	}
}

func pricingProps(profile *BusinessProfile, job pageJob) map[string]any {
	return map[string]any{
		"title":               "Nos formules",
		"subtitle":            fmt.Sprintf("Des tarifs adaptés à chaque besoin à %s", job.city.Name),
		"basic_name":          "Essentiel",
		"basic_price":         "89€",
		"basic_description":   "Intervention ponctuelle",
		"basic_feature1":      "Diagnostic inclus",
		"basic_feature2":      "Déplacement compris",
		"basic_feature3":      "Garantie 1 an",
		"pro_name":            "Confort",
		"pro_price":           "149€",
		"pro_description":     "Intervention + contrôle complet",
		"pro_feature1":        "Tout l'Essentiel",
		"pro_feature2":        "Contrôle complet de l'installation",
		"pro_feature3":        "Rapport détaillé",
		"pro_feature4":        "Garantie 2 ans",
		"premium_name":        "Sérénité",
		"premium_price":       "249€",
		"premium_description": "Contrat d'entretien annuel",
		"premium_feature1":    "Tout le Confort",
		"premium_feature2":    "Visite annuelle préventive",
		"premium_feature3":    "Priorité en cas d'urgence",
		"premium_feature4":    "Garantie étendue",
	}
}

func ctaProps(profile *BusinessProfile, job pageJob) map[string]any {
	return map[string]any{
		"title":      fmt.Sprintf("Besoin d'un %s à %s ?", strings.ToLower(job.service.Name), job.city.Name),
		"subtitle":   "Réponse sous 24h, devis gratuit et sans engagement.",
		"buttonText": "Demander un devis",
		"buttonLink": "#contact",
		"phone":      profile.Phone,
	}
}

func footerProps(profile *BusinessProfile, job pageJob) map[string]any {
	return map[string]any{
		"companyName": profile.CompanyName,
		"description": fmt.Sprintf("%s, votre %s à %s et ses environs.",
			profile.CompanyName, profile.BusinessType, job.city.Name),
		"phone":      profile.Phone,
		"email":      profile.Email,
		"address":    profile.Address,
		"city":       job.city.Name,
		"nav1_label": "Accueil",
		"nav1_link":  "#",
		"nav2_label": "Services",
		"nav2_link":  "#services",
		"nav3_label": "Mentions légales",
		"nav3_link":  "/mentions-legales",
	}
}

func phoneLabel(phone string) string {
	if phone == "" {
		return ""
	}
	return "📞 " + phone
}

func phoneLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}
