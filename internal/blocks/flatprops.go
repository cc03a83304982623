package blocks

import (
	"fmt"
	"strings"
)

// Flat-prop extraction. Editor payloads arrive as numbered scalar props
// (feature1_title, feature1_icon, feature2_title, ...) rather than nested
// arrays. Extraction walks slots 1..max in order and includes a slot if and
// only if its anchor field is a non-empty string after trimming; sibling
// fields ride along with per-field defaults. Missing anchors do not stop the
// scan, so sparse numbering (1, 3, 5) keeps declared order.

const (
	// FeatureSlots caps the numbered feature slots scanned during extraction.
	FeatureSlots = 6
	// ServiceSlots caps numbered service slots.
	ServiceSlots = 6
	// TestimonialSlots caps numbered testimonial slots.
	TestimonialSlots = 6
	// GallerySlots caps numbered gallery image slots.
	GallerySlots = 8
	// FAQSlots caps numbered question slots.
	FAQSlots = 8
)

// Feature is one extracted feature slot. Timeline and flip-card fields are
// populated only when the corresponding props are present.
type Feature struct {
	Title           string
	Icon            string
	Description     string
	Link            string
	LinkText        string
	Date            string
	Status          string
	BackTitle       string
	BackDescription string
}

// ServiceItem is one extracted service slot.
type ServiceItem struct {
	Name        string
	Icon        string
	Description string
	Price       string
	Link        string
}

// Testimonial is one extracted testimonial slot.
type Testimonial struct {
	Text   string
	Author string
	Role   string
	Rating string
	Avatar string
}

// GalleryImage is one extracted gallery slot.
type GalleryImage struct {
	URL     string
	Alt     string
	Caption string
}

// FAQItem is one extracted question slot.
type FAQItem struct {
	Question string
	Answer   string
}

// PricingPlan is one of the three fixed plans. A plan is shown unless its
// show_<id> prop is explicitly false.
type PricingPlan struct {
	ID          string
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTAText     string
	Highlight   bool
}

func propString(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func propStringDefault(props map[string]any, key, fallback string) string {
	if s := propString(props, key); s != "" {
		return s
	}
	return fallback
}

// explicitFalse reports whether the prop is present and boolean false.
// Absent, nil, or non-boolean values all read as "not explicitly false".
func explicitFalse(props map[string]any, key string) bool {
	v, ok := props[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && !b
}

// ExtractFeatures scans feature1..featureN and returns the populated slots in
// slot order. feature<i>_title is the anchor: blank or missing titles skip the
// slot without stopping the scan.
func ExtractFeatures(props map[string]any) []Feature {
	out := make([]Feature, 0, FeatureSlots)
	for i := 1; i <= FeatureSlots; i++ {
		prefix := fmt.Sprintf("feature%d_", i)
		title := propString(props, prefix+"title")
		if title == "" {
			continue
		}
		out = append(out, Feature{
			Title:           title,
			Icon:            propStringDefault(props, prefix+"icon", "⭐"),
			Description:     propString(props, prefix+"description"),
			Link:            propString(props, prefix+"link"),
			LinkText:        propStringDefault(props, prefix+"linkText", "En savoir plus"),
			Date:            propString(props, prefix+"date"),
			Status:          propString(props, prefix+"status"),
			BackTitle:       propString(props, prefix+"backTitle"),
			BackDescription: propString(props, prefix+"backDescription"),
		})
	}
	return out
}

// FlattenFeatures is the inverse of ExtractFeatures: it renumbers the slice
// into dense numbered props. Extracting a flattened slice reproduces the same
// slots in the same order.
func FlattenFeatures(items []Feature) map[string]any {
	out := map[string]any{}
	for idx, f := range items {
		if idx >= FeatureSlots {
			break
		}
		prefix := fmt.Sprintf("feature%d_", idx+1)
		out[prefix+"title"] = f.Title
		setIfPresent(out, prefix+"icon", f.Icon)
		setIfPresent(out, prefix+"description", f.Description)
		setIfPresent(out, prefix+"link", f.Link)
		setIfPresent(out, prefix+"linkText", f.LinkText)
		setIfPresent(out, prefix+"date", f.Date)
		setIfPresent(out, prefix+"status", f.Status)
		setIfPresent(out, prefix+"backTitle", f.BackTitle)
		setIfPresent(out, prefix+"backDescription", f.BackDescription)
	}
	return out
}

func setIfPresent(props map[string]any, key, value string) {
	if value != "" {
		props[key] = value
	}
}

// ExtractServices scans service1..serviceN anchored on service<i>_name.
func ExtractServices(props map[string]any) []ServiceItem {
	out := make([]ServiceItem, 0, ServiceSlots)
	for i := 1; i <= ServiceSlots; i++ {
		prefix := fmt.Sprintf("service%d_", i)
		name := propString(props, prefix+"name")
		if name == "" {
			continue
		}
		out = append(out, ServiceItem{
			Name:        name,
			Icon:        propStringDefault(props, prefix+"icon", "🔧"),
			Description: propString(props, prefix+"description"),
			Price:       propString(props, prefix+"price"),
			Link:        propString(props, prefix+"link"),
		})
	}
	return out
}

// ExtractTestimonials scans testimonial1..N anchored on testimonial<i>_text.
func ExtractTestimonials(props map[string]any) []Testimonial {
	out := make([]Testimonial, 0, TestimonialSlots)
	for i := 1; i <= TestimonialSlots; i++ {
		prefix := fmt.Sprintf("testimonial%d_", i)
		text := propString(props, prefix+"text")
		if text == "" {
			continue
		}
		out = append(out, Testimonial{
			Text:   text,
			Author: propStringDefault(props, prefix+"author", "Client vérifié"),
			Role:   propString(props, prefix+"role"),
			Rating: propStringDefault(props, prefix+"rating", "5"),
			Avatar: propString(props, prefix+"avatar"),
		})
	}
	return out
}

// ExtractGallery scans image1..N anchored on image<i>_url.
func ExtractGallery(props map[string]any) []GalleryImage {
	out := make([]GalleryImage, 0, GallerySlots)
	for i := 1; i <= GallerySlots; i++ {
		prefix := fmt.Sprintf("image%d_", i)
		url := propString(props, prefix+"url")
		if url == "" {
			continue
		}
		out = append(out, GalleryImage{
			URL:     url,
			Alt:     propStringDefault(props, prefix+"alt", "Réalisation"),
			Caption: propString(props, prefix+"caption"),
		})
	}
	return out
}

// ExtractFAQ scans faq1..N anchored on faq<i>_question. Entries with a blank
// answer keep their question and render with a placeholder answer.
func ExtractFAQ(props map[string]any) []FAQItem {
	out := make([]FAQItem, 0, FAQSlots)
	for i := 1; i <= FAQSlots; i++ {
		prefix := fmt.Sprintf("faq%d_", i)
		question := propString(props, prefix+"question")
		if question == "" {
			continue
		}
		out = append(out, FAQItem{
			Question: question,
			Answer:   propString(props, prefix+"answer"),
		})
	}
	return out
}

var planIDs = []string{"basic", "pro", "premium"}

// ExtractPlans builds the three fixed pricing plans from <id>_* props. A plan
// is included unless show_<id> is explicitly false. Plan features reuse the
// numbered convention, anchored on <id>_feature<i>.
func ExtractPlans(props map[string]any) []PricingPlan {
	out := make([]PricingPlan, 0, len(planIDs))
	for _, id := range planIDs {
		if explicitFalse(props, "show_"+id) {
			continue
		}
		plan := PricingPlan{
			ID:          id,
			Name:        propStringDefault(props, id+"_name", defaultPlanName(id)),
			Price:       propString(props, id+"_price"),
			Period:      propStringDefault(props, id+"_period", "/mois"),
			Description: propString(props, id+"_description"),
			CTAText:     propStringDefault(props, id+"_cta", "Choisir"),
			Highlight:   id == "pro",
		}
		if explicitFalse(props, id+"_highlight") {
			plan.Highlight = false
		} else if v, ok := props[id+"_highlight"].(bool); ok && v {
			plan.Highlight = true
		}
		for i := 1; i <= FeatureSlots; i++ {
			if f := propString(props, fmt.Sprintf("%s_feature%d", id, i)); f != "" {
				plan.Features = append(plan.Features, f)
			}
		}
		out = append(out, plan)
	}
	return out
}

func defaultPlanName(id string) string {
	switch id {
	case "basic":
		return "Essentiel"
	case "pro":
		return "Professionnel"
	case "premium":
		return "Premium"
	}
	return id
}
