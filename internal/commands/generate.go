package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/matrix"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const generateSiteMessageType = "sitegen.site.generate"

// GenerateSiteCommand requests a full matrix generation run and, when
// OutputDir is set, an export of the resulting pages.
type GenerateSiteCommand struct {
	Profile   *matrix.BusinessProfile `json:"profile"`
	OutputDir string                  `json:"output_dir,omitempty"`
	Workers   int                     `json:"workers,omitempty"`
	Seed      *int64                  `json:"seed,omitempty"`
}

// Type implements command.Message.
func (GenerateSiteCommand) Type() string { return generateSiteMessageType }

// Validate ensures the command carries a usable profile before any work runs.
func (m GenerateSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.Profile == nil {
		errs["profile"] = validation.NewError("sitegen.site.generate.profile_required", "profile is required")
	}
	if m.Workers < 0 {
		errs["workers"] = validation.NewError("sitegen.site.generate.workers_invalid", "workers cannot be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateSiteHandler drives the matrix generator through the shared command
// handler foundation.
type GenerateSiteHandler struct {
	inner *Handler[GenerateSiteCommand]
	last  *matrix.Result
}

// NewGenerateSiteHandler wires a handler to the generator factory. The
// factory runs per execution so per-command worker and seed settings apply.
func NewGenerateSiteHandler(logger interfaces.Logger, opts ...HandlerOption[GenerateSiteCommand]) *GenerateSiteHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	h := &GenerateSiteHandler{}

	exec := func(ctx context.Context, msg GenerateSiteCommand) error {
		genOpts := []matrix.Option{matrix.WithLogger(logger)}
		if msg.Workers > 0 {
			genOpts = append(genOpts, matrix.WithWorkers(msg.Workers))
		}
		if msg.Seed != nil {
			genOpts = append(genOpts, matrix.WithVariantSeed(*msg.Seed))
		}
		generator := matrix.NewGenerator(genOpts...)

		result, err := generator.Generate(ctx, msg.Profile)
		if err != nil {
			return err
		}
		h.last = result

		if strings.TrimSpace(msg.OutputDir) != "" {
			return matrix.Export(result, msg.OutputDir)
		}
		return nil
	}

	handlerOpts := []HandlerOption[GenerateSiteCommand]{
		WithLogger[GenerateSiteCommand](logger),
		WithOperation[GenerateSiteCommand]("site.generate"),
		WithMessageFields(func(msg GenerateSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.Profile != nil {
				fields["company"] = msg.Profile.CompanyName
				fields["services"] = len(msg.Profile.Services)
				fields["cities"] = len(msg.Profile.Cities)
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)
	h.inner = NewHandler(exec, handlerOpts...)
	return h
}

// Execute implements command.Commander.
func (h *GenerateSiteHandler) Execute(ctx context.Context, msg GenerateSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Result returns the outcome of the most recent successful execution.
func (h *GenerateSiteHandler) Result() *matrix.Result {
	return h.last
}
