package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	sitegen "github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
)

func main() {
	var (
		profilePath = flag.String("profile", "", "path to a business profile JSON file")
		outputDir   = flag.String("out", "dist", "output directory for generated pages")
		workers     = flag.Int("workers", 4, "concurrent page builds")
		seed        = flag.Int64("seed", 0, "optional variant seed override")
		logLevel    = flag.String("log-level", "info", "log level (trace|debug|info|warn|error)")
		logFormat   = flag.String("log-format", "console", "log format (console|json|pretty)")
	)
	flag.Parse()

	if *profilePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*profilePath, *outputDir, *workers, *seed, *logLevel, *logFormat); err != nil {
		log.Fatalf("sitegen: %v", err)
	}
}

func run(profilePath, outputDir string, workers int, seed int64, logLevel, logFormat string) error {
	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	var profile sitegen.BusinessProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	provider, err := gologger.NewProvider(gologger.Config{Level: logLevel, Format: logFormat})
	if err != nil {
		return err
	}
	logger := provider.GetLogger("sitegen.cli")

	msg := commands.GenerateSiteCommand{
		Profile:   &profile,
		OutputDir: outputDir,
		Workers:   workers,
	}
	if seed != 0 {
		msg.Seed = &seed
	}

	handler := commands.NewGenerateSiteHandler(logger)
	if err := handler.Execute(context.Background(), msg); err != nil {
		return err
	}

	result := handler.Result()
	if result == nil {
		return nil
	}
	logger.Info("site generated",
		"pages", result.PagesBuilt,
		"fallbacks", result.FallbackCount(),
		"output", outputDir,
	)
	for _, pageErr := range result.Errors {
		logger.Warn("page failed", "error", pageErr)
	}
	return nil
}
