package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookupFindsBuiltinCopy(t *testing.T) {
	library := NewLibrary()

	entry, ok := library.Lookup("plombier", "Débouchage canalisation")
	if !ok {
		t.Fatalf("builtin copy missing for plombier/debouchage-canalisation")
	}
	if entry.Generic {
		t.Fatalf("builtin copy must not be marked generic")
	}
	if len(entry.Benefits) == 0 || len(entry.Process) == 0 {
		t.Fatalf("builtin copy incomplete: %+v", entry)
	}
}

func TestResolveSubstitutesCity(t *testing.T) {
	library := NewLibrary()

	entry, warnings := library.Resolve("plombier", "Débouchage canalisation", "Lyon", "Plomberie Durand")
	if len(warnings) != 0 {
		t.Fatalf("builtin resolve should not warn: %v", warnings)
	}
	if !strings.Contains(entry.Body, "Lyon") {
		t.Fatalf("body should carry the city: %q", entry.Body)
	}
	if strings.Contains(entry.Body, "{city}") || strings.Contains(entry.LocalNote, "{city}") {
		t.Fatalf("placeholder left unsubstituted")
	}
}

func TestResolveSynthesizesGenericCopyWithWarning(t *testing.T) {
	library := NewLibrary()

	entry, warnings := library.Resolve("plombier", "Pose de velux", "Nantes", "Plomberie Durand")
	if !entry.Generic {
		t.Fatalf("unknown service should synthesize generic copy")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warnings)
	}
	for _, fragment := range []string{"Pose de velux", "Nantes", "Plomberie Durand"} {
		if !strings.Contains(entry.Body, fragment) {
			t.Fatalf("generic body missing %q: %s", fragment, entry.Body)
		}
	}
	if len(entry.Benefits) == 0 {
		t.Fatalf("generic copy should still carry benefits")
	}
}

func TestLoadDirOverlaysMarkdownCopy(t *testing.T) {
	dir := t.TempDir()
	doc := `---
title: Pose de velux
businessType: plombier
service: Pose de velux
benefits:
  - Pose certifiée
guarantee: Étanchéité garantie 10 ans.
localNote: Showroom ouvert à {city}.
---
## Pose de velux à {city}

Notre équipe installe tous les modèles de fenêtres de toit.
`
	if err := os.WriteFile(filepath.Join(dir, "velux.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	library := NewLibrary()
	if err := library.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	entry, warnings := library.Resolve("plombier", "Pose de velux", "Rennes", "Plomberie Durand")
	if len(warnings) != 0 {
		t.Fatalf("loaded copy should resolve without warnings: %v", warnings)
	}
	if entry.Generic {
		t.Fatalf("loaded copy must not be generic")
	}
	if !strings.Contains(entry.Body, "fenêtres de toit") {
		t.Fatalf("markdown body not loaded: %q", entry.Body)
	}
	if entry.LocalNote != "Showroom ouvert à Rennes." {
		t.Fatalf("local note = %q", entry.LocalNote)
	}
	if len(entry.Benefits) != 1 || entry.Benefits[0] != "Pose certifiée" {
		t.Fatalf("benefits = %v", entry.Benefits)
	}
}

func TestLoadDirSkipsDocumentsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	doc := "---\ntitle: Sans cible\n---\ncorps\n"
	if err := os.WriteFile(filepath.Join(dir, "broken.md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	library := NewLibrary()
	if err := library.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir should skip incomplete documents, got %v", err)
	}
}
