package seo

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Structured data uses schema.org LocalBusiness and Service types. Structs
// keep key order stable so serialized output is reproducible.

type postalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality"`
	AddressCountry  string `json:"addressCountry"`
}

type localBusiness struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	Name       string        `json:"name"`
	Telephone  string        `json:"telephone,omitempty"`
	URL        string        `json:"url,omitempty"`
	PriceRange string        `json:"priceRange,omitempty"`
	Address    postalAddress `json:"address"`
	AreaServed string        `json:"areaServed"`
}

type serviceSchema struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	ServiceType string        `json:"serviceType"`
	Name        string        `json:"name"`
	AreaServed  string        `json:"areaServed"`
	Provider    localBusiness `json:"provider"`
}

// businessTypeSchema maps trade categories onto the closest schema.org
// LocalBusiness subtype.
func businessTypeSchema(businessType string) string {
	switch strings.ToLower(strings.TrimSpace(businessType)) {
	case "plombier":
		return "Plumber"
	case "electricien":
		return "Electrician"
	case "peintre":
		return "HousePainter"
	case "macon", "menuisier":
		return "GeneralContractor"
	}
	return "LocalBusiness"
}

func buildLocalBusiness(in PageInput) localBusiness {
	return localBusiness{
		Context:    "https://schema.org",
		Type:       businessTypeSchema(in.BusinessType),
		Name:       in.CompanyName,
		Telephone:  in.Phone,
		URL:        canonicalURL(in),
		PriceRange: in.PriceRange,
		Address: postalAddress{
			Type:            "PostalAddress",
			StreetAddress:   in.Address,
			AddressLocality: in.City,
			AddressCountry:  "FR",
		},
		AreaServed: in.City,
	}
}

func localBusinessJSONLD(in PageInput) string {
	return marshalJSONLD(buildLocalBusiness(in))
}

func serviceJSONLD(in PageInput) string {
	provider := buildLocalBusiness(in)
	provider.Context = ""
	return marshalJSONLD(serviceSchema{
		Context:     "https://schema.org",
		Type:        "Service",
		ServiceType: in.Service,
		Name:        fmt.Sprintf("%s à %s", in.Service, in.City),
		AreaServed:  in.City,
		Provider:    provider,
	})
}

func marshalJSONLD(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	// Nested provider objects drop their empty @context key.
	return strings.Replace(string(raw), `"@context":"",`, "", 1)
}
