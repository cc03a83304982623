package matrix

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/composer"
	"github.com/goliatone/go-sitegen/internal/content"
	"github.com/goliatone/go-sitegen/internal/identity"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/internal/themes"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

const (
	profileInvalidCode  = "PROFILE_VALIDATION_FAILED"
	pageComposeFailCode = "PAGE_COMPOSE_FAILED"
)

var errNilProfile = errors.New("business profile is required")

// Generator expands a business profile into its page matrix.
type Generator struct {
	registry *blocks.Registry
	composer *composer.Composer
	library  *content.Library
	logger   interfaces.Logger
	workers  int
	seed     *int64
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the generator logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithWorkers caps the number of concurrent page builds.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithVariantSeed perturbs the per-page variant seeds, producing an alternate
// deterministic layout draw for the same profile.
func WithVariantSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = &seed
	}
}

// WithLibrary replaces the copy library.
func WithLibrary(library *content.Library) Option {
	return func(g *Generator) {
		if library != nil {
			g.library = library
		}
	}
}

// WithRegistry replaces the block registry.
func WithRegistry(registry *blocks.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
			g.composer = composer.New(registry)
		}
	}
}

// WithNow overrides the clock, used by tests.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator builds a Generator with the builtin registry and copy library.
func NewGenerator(opts ...Option) *Generator {
	registry := blocks.NewRegistry()
	g := &Generator{
		registry: registry,
		composer: composer.New(registry),
		library:  content.NewLibrary(),
		logger:   logging.NoOp(),
		workers:  runtime.NumCPU(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// pageJob is one (service, city) cell of the matrix with its precomputed
// slug. Slugs are assigned sequentially before fan-out so disambiguation is
// independent of worker scheduling.
type pageJob struct {
	index   int
	service Service
	city    City
	slug    string
	warning string
}

// Generate builds one page per (service, city) pair. Page builds run on a
// bounded worker pool; a failed page is recorded on the result and does not
// stop the run. Output order matches the services-outer, cities-inner cross
// product regardless of worker count.
func (g *Generator) Generate(ctx context.Context, profile *BusinessProfile) (*Result, error) {
	start := g.now()
	if profile == nil {
		return nil, goerrors.Wrap(errNilProfile, goerrors.CategoryValidation, "matrix: nil profile").
			WithTextCode(profileInvalidCode)
	}
	if err := profile.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "matrix: invalid business profile").
			WithTextCode(profileInvalidCode)
	}

	jobs := g.planJobs(profile)
	result := &Result{Pages: make([]GeneratedPage, len(jobs))}

	var (
		mu     sync.Mutex
		failed []error
	)
	collect := func(index int, page GeneratedPage, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			failed = append(failed, err)
		}
		result.Pages[index] = page
		if err == nil {
			result.PagesBuilt++
		}
	}

	workerCount := g.workers
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}
	if workerCount <= 1 {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			page, err := g.buildPage(ctx, profile, job)
			collect(job.index, page, err)
		}
	} else {
		feed := make(chan pageJob)
		var wg sync.WaitGroup
		for i := 0; i < workerCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range feed {
					select {
					case <-ctx.Done():
						collect(job.index, GeneratedPage{Slug: job.slug}, ctx.Err())
					default:
						page, err := g.buildPage(ctx, profile, job)
						collect(job.index, page, err)
					}
				}
			}()
		}
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				close(feed)
				wg.Wait()
				return result, ctx.Err()
			case feed <- job:
			}
		}
		close(feed)
		wg.Wait()
	}

	result.Errors = failed
	result.Duration = g.now().Sub(start)
	g.logger.Info("matrix generation finished",
		"pages", result.PagesBuilt,
		"failures", len(failed),
		"duration", result.Duration,
	)
	return result, nil
}

// planJobs walks the cross product in input order and assigns slugs, adding a
// numeric suffix when normalization collapses two pairs onto the same slug.
func (g *Generator) planJobs(profile *BusinessProfile) []pageJob {
	jobs := make([]pageJob, 0, len(profile.Services)*len(profile.Cities))
	taken := map[string]int{}
	for _, service := range profile.Services {
		for _, city := range profile.Cities {
			base := pageSlug(service.Name, city.Name)
			job := pageJob{index: len(jobs), service: service, city: city, slug: base}
			taken[base]++
			if n := taken[base]; n > 1 {
				job.slug = fmt.Sprintf("%s-%d", base, n)
				job.warning = fmt.Sprintf("slug %q already taken, using %q", base, job.slug)
				g.logger.Warn("duplicate page slug disambiguated", "slug", base, "assigned", job.slug)
			}
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// pageSlug normalizes "Débouchage canalisation" + "Paris" into
// "debouchage-canalisation-paris".
func pageSlug(service, city string) string {
	normalized, err := slug.Normalize(service + " " + city)
	if err != nil || normalized == "" {
		fallback := strings.ToLower(strings.TrimSpace(service + "-" + city))
		return strings.ReplaceAll(fallback, " ", "-")
	}
	return normalized
}

func (g *Generator) buildPage(ctx context.Context, profile *BusinessProfile, job pageJob) (GeneratedPage, error) {
	seed := identity.VariantSeed(profile.ID, job.service.Name, job.city.Name)
	if g.seed != nil {
		seed ^= *g.seed
	}
	picker := themes.NewPicker(seed)

	copyEntry, copyWarnings := g.library.Resolve(profile.BusinessType, job.service.Name, job.city.Name, profile.CompanyName)

	page := &composer.Page{
		ID:     identity.PageUUID(job.slug),
		Title:  fmt.Sprintf("%s à %s", job.service.Name, job.city.Name),
		Slug:   job.slug,
		Theme:  profile.Theme,
		Blocks: g.planBlocks(profile, job, picker, copyEntry),
	}

	bundle, err := g.composer.Compose(ctx, page)
	if err != nil {
		return GeneratedPage{Slug: job.slug, Service: job.service.Name, City: job.city.Name},
			goerrors.Wrap(err, goerrors.CategoryOperation, fmt.Sprintf("matrix: compose page %s", job.slug)).
				WithTextCode(pageComposeFailCode)
	}

	meta := seo.Compose(seo.PageInput{
		Service:      job.service.Name,
		City:         job.city.Name,
		CompanyName:  profile.CompanyName,
		BusinessType: profile.BusinessType,
		Phone:        profile.Phone,
		Address:      profile.Address,
		PriceRange:   profile.PriceRange,
		Slug:         job.slug,
		BaseURL:      profile.BaseURL,
	})

	generated := GeneratedPage{
		ID:      page.ID,
		Slug:    job.slug,
		Title:   page.Title,
		Service: job.service.Name,
		City:    job.city.Name,
		Bundle:  bundle,
		Meta:    meta,
	}
	generated.Warnings = append(generated.Warnings, copyWarnings...)
	if job.warning != "" {
		generated.Warnings = append(generated.Warnings, job.warning)
	}
	generated.Warnings = append(generated.Warnings, bundle.Warnings...)
	generated.Document = renderDocument(bundle, meta)
	return generated, nil
}
