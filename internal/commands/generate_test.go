package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sitegen/internal/matrix"
)

func TestGenerateSiteHandlerWritesPages(t *testing.T) {
	dir := t.TempDir()
	handler := NewGenerateSiteHandler(nil)

	msg := GenerateSiteCommand{
		Profile: &matrix.BusinessProfile{
			ID:           "biz-42",
			CompanyName:  "Elec Plus",
			BusinessType: "electricien",
			Phone:        "04 56 78 90 12",
			Services:     []matrix.Service{{Name: "Mise aux normes"}},
			Cities:       []matrix.City{{Name: "Grenoble"}},
		},
		OutputDir: dir,
		Workers:   2,
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	result := handler.Result()
	if result == nil || result.PagesBuilt != 1 {
		t.Fatalf("expected 1 built page, got %+v", result)
	}

	target := filepath.Join(dir, "mise-aux-normes-grenoble", "index.html")
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("exported page missing: %v", err)
	}
	doc := string(raw)
	if !strings.Contains(doc, "<!DOCTYPE html>") {
		t.Fatalf("exported file is not a document")
	}
	if !strings.Contains(doc, "Grenoble") {
		t.Fatalf("document should mention the city")
	}
	if !strings.Contains(doc, "application/ld+json") {
		t.Fatalf("document missing structured data")
	}
}

func TestGenerateSiteHandlerRejectsMissingProfile(t *testing.T) {
	handler := NewGenerateSiteHandler(nil)
	if err := handler.Execute(context.Background(), GenerateSiteCommand{}); err == nil {
		t.Fatalf("expected validation failure")
	}
}
