package matrix

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	goerrors "github.com/goliatone/go-errors"
)

const exportFailCode = "SITE_EXPORT_FAILED"

// Export writes every generated page under dir as <slug>/index.html, plus an
// assets.json manifest when the page references external assets. Pages that
// failed to build (nil bundle) are skipped.
func Export(result *Result, dir string) error {
	if result == nil {
		return nil
	}
	for i := range result.Pages {
		page := &result.Pages[i]
		if page.Bundle == nil || page.Document == "" {
			continue
		}
		pageDir := filepath.Join(dir, page.Slug)
		if err := os.MkdirAll(pageDir, 0o755); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryOperation,
				fmt.Sprintf("matrix: create export dir for %s", page.Slug)).
				WithTextCode(exportFailCode)
		}
		target := filepath.Join(pageDir, "index.html")
		if err := os.WriteFile(target, []byte(page.Document), 0o644); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryOperation,
				fmt.Sprintf("matrix: write page %s", page.Slug)).
				WithTextCode(exportFailCode)
		}
		if len(page.Bundle.Assets) > 0 {
			if err := writeAssetManifest(pageDir, page); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAssetManifest(pageDir string, page *GeneratedPage) error {
	data, err := json.MarshalIndent(page.Bundle.Assets, "", "  ")
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation,
			fmt.Sprintf("matrix: encode asset manifest for %s", page.Slug)).
			WithTextCode(exportFailCode)
	}
	target := filepath.Join(pageDir, "assets.json")
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation,
			fmt.Sprintf("matrix: write asset manifest for %s", page.Slug)).
			WithTextCode(exportFailCode)
	}
	return nil
}
