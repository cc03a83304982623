// Package matrix generates the service by city page matrix for a business
// profile: every (service, city) pair becomes a composed landing page with
// its own slug, variants, copy, and metadata.
package matrix

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitegen/internal/composer"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/google/uuid"
)

// Service is one offering of the business.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// Validate implements validation.Validatable.
func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(2, 120)),
	)
}

// City is one target locality.
type City struct {
	Name string `json:"name"`
}

// Validate implements validation.Validatable.
func (c City) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 120)),
	)
}

// BusinessProfile is the generation input: one local business, its offerings,
// and the localities it serves.
type BusinessProfile struct {
	ID             string       `json:"id"`
	CompanyName    string       `json:"companyName"`
	BusinessType   string       `json:"businessType"`
	Phone          string       `json:"phone,omitempty"`
	Email          string       `json:"email,omitempty"`
	Address        string       `json:"address,omitempty"`
	BaseURL        string       `json:"baseUrl,omitempty"`
	PriceRange     string       `json:"priceRange,omitempty"`
	IncludePricing bool         `json:"includePricing,omitempty"`
	Theme          themes.Theme `json:"theme,omitempty"`
	Services       []Service    `json:"services"`
	Cities         []City       `json:"cities"`
}

// Validate implements validation.Validatable.
func (p BusinessProfile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CompanyName, validation.Required, validation.Length(2, 160)),
		validation.Field(&p.BusinessType, validation.Required),
		validation.Field(&p.Services, validation.Required, validation.Length(1, 0)),
		validation.Field(&p.Cities, validation.Required, validation.Length(1, 0)),
	)
}

// GeneratedPage is one finished landing page.
type GeneratedPage struct {
	ID       uuid.UUID
	Slug     string
	Title    string
	Service  string
	City     string
	Bundle   *composer.Bundle
	Meta     seo.Metadata
	Document string
	Warnings []string
}

// Result aggregates one generation run.
type Result struct {
	Pages      []GeneratedPage
	Errors     []error
	PagesBuilt int
	Duration   time.Duration
}

// FallbackCount sums degraded blocks across every generated page.
func (r *Result) FallbackCount() int {
	n := 0
	for i := range r.Pages {
		if r.Pages[i].Bundle != nil {
			n += r.Pages[i].Bundle.FallbackCount()
		}
	}
	return n
}
