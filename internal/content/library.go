// Package content provides the service copy used to fill generated pages: a
// builtin corpus keyed by business category and service slug, an optional
// markdown overlay loaded from disk, and a generic synthesis fallback for
// services the corpus does not know.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

// Copy is the editorial material for one service of one business category.
// Body is markdown; the remaining fields feed individual block props.
type Copy struct {
	Title     string
	Body      string
	Process   []string
	Benefits  []string
	Guarantee string
	// LocalNote may contain a {city} placeholder substituted at resolve time.
	LocalNote string
	// Generic marks synthesized fallback copy.
	Generic bool
}

// Library resolves service copy. Lookups are read-only after construction and
// any LoadDir calls, so concurrent page generation needs no locking here.
type Library struct {
	entries map[string]map[string]Copy
	logger  interfaces.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the library logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLibrary builds a library preloaded with the builtin corpus.
func NewLibrary(opts ...Option) *Library {
	l := &Library{
		entries: map[string]map[string]Copy{},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	for businessType, services := range builtinCorpus {
		bucket := make(map[string]Copy, len(services))
		for key, copyEntry := range services {
			bucket[key] = copyEntry
		}
		l.entries[businessType] = bucket
	}
	return l
}

type copyFrontMatter struct {
	Title        string   `yaml:"title"`
	BusinessType string   `yaml:"businessType"`
	Service      string   `yaml:"service"`
	Process      []string `yaml:"process"`
	Benefits     []string `yaml:"benefits"`
	Guarantee    string   `yaml:"guarantee"`
	LocalNote    string   `yaml:"localNote"`
}

// LoadDir overlays markdown documents onto the corpus. Each file declares its
// businessType and service in frontmatter; the body becomes Copy.Body. Files
// missing either key are skipped with a warning rather than failing the load.
func (l *Library) LoadDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read copy document %s: %w", path, err)
		}
		var meta copyFrontMatter
		body, err := frontmatter.Parse(strings.NewReader(string(raw)), &meta)
		if err != nil {
			return fmt.Errorf("parse copy document %s: %w", path, err)
		}
		if meta.BusinessType == "" || meta.Service == "" {
			l.logger.Warn("copy document missing businessType or service", "path", path)
			return nil
		}
		serviceKey, err := slug.Normalize(meta.Service)
		if err != nil {
			l.logger.Warn("copy document has unusable service name", "path", path, "service", meta.Service)
			return nil
		}
		businessKey := strings.ToLower(strings.TrimSpace(meta.BusinessType))
		bucket, ok := l.entries[businessKey]
		if !ok {
			bucket = map[string]Copy{}
			l.entries[businessKey] = bucket
		}
		bucket[serviceKey] = Copy{
			Title:     meta.Title,
			Body:      strings.TrimSpace(string(body)),
			Process:   meta.Process,
			Benefits:  meta.Benefits,
			Guarantee: meta.Guarantee,
			LocalNote: meta.LocalNote,
		}
		l.logger.Debug("copy document loaded", "business_type", businessKey, "service", serviceKey)
		return nil
	})
}

// Lookup returns the copy for a (businessType, service) pair without any
// fallback synthesis.
func (l *Library) Lookup(businessType, service string) (Copy, bool) {
	serviceKey, err := slug.Normalize(service)
	if err != nil {
		return Copy{}, false
	}
	bucket, ok := l.entries[strings.ToLower(strings.TrimSpace(businessType))]
	if !ok {
		return Copy{}, false
	}
	entry, ok := bucket[serviceKey]
	return entry, ok
}

// Resolve returns copy for the pair, synthesizing generic material when the
// corpus has nothing, and substitutes the city into local notes. The warning
// list is non-empty exactly when synthesis happened.
func (l *Library) Resolve(businessType, service, city, companyName string) (Copy, []string) {
	entry, ok := l.Lookup(businessType, service)
	var warnings []string
	if !ok {
		entry = synthesize(service, city, companyName)
		warnings = append(warnings, fmt.Sprintf("no copy for %s/%s, generic copy synthesized", businessType, service))
		l.logger.Debug("generic copy synthesized", "business_type", businessType, "service", service, "city", city)
	}
	entry.LocalNote = strings.ReplaceAll(entry.LocalNote, "{city}", city)
	entry.Body = strings.ReplaceAll(entry.Body, "{city}", city)
	return entry, warnings
}

// synthesize produces serviceable generic copy from the service, city, and
// company names alone.
func synthesize(service, city, companyName string) Copy {
	service = strings.TrimSpace(service)
	return Copy{
		Title: fmt.Sprintf("%s à %s", service, city),
		Body: fmt.Sprintf(
			"## %s à %s\n\n%s intervient à %s et ses environs pour tous vos besoins en %s. "+
				"Nos artisans qualifiés vous garantissent un travail soigné, réalisé dans les règles de l'art et dans le respect des délais convenus.\n\n"+
				"Chaque intervention commence par un diagnostic précis et un devis détaillé, sans surprise. "+
				"Nous utilisons du matériel professionnel et des fournitures de qualité pour assurer la durabilité de nos interventions.",
			service, city, companyName, city, strings.ToLower(service),
		),
		Process: []string{
			"Prise de contact et diagnostic",
			"Devis détaillé gratuit",
			"Intervention planifiée",
			"Contrôle qualité et garantie",
		},
		Benefits: []string{
			"Devis gratuit sous 24h",
			"Artisans qualifiés et assurés",
			"Tarifs transparents",
			"Garantie décennale",
		},
		Guarantee: "Intervention garantie, assurance décennale incluse.",
		LocalNote: fmt.Sprintf("Intervention rapide à %s et dans les communes voisines.", city),
		Generic:   true,
	}
}
