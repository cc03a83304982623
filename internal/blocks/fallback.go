package blocks

import (
	"fmt"
	"html"
)

// fallbackResult renders the minimal degraded markup used when a renderer
// panics or returns nothing. The page keeps its section; the error entry
// carries the cause with FallbackUsed set.
func fallbackResult(req Request, message string) Result {
	title := propString(req.Props, "title")
	if title == "" {
		title = string(req.Instance.BlockType)
	}
	return Result{
		HTML: fmt.Sprintf(
			`<section class="sg-fallback sg-fallback--%s"><h2>%s</h2></section>`,
			html.EscapeString(string(req.Instance.BlockType)),
			html.EscapeString(title),
		),
		CSS: ".sg-fallback{padding:3rem 1rem;text-align:center;color:#6b7280;}",
		Errors: []RenderError{{
			BlockID:      req.Instance.ID,
			BlockType:    req.Instance.BlockType,
			Message:      message,
			FallbackUsed: true,
		}},
	}
}

// unsupportedResult emits a visible placeholder for kinds the registry does
// not know, keeping page structure intact while surfacing the problem as a
// warning.
func unsupportedResult(inst *Instance) Result {
	kind := html.EscapeString(string(inst.BlockType))
	message := fmt.Sprintf("no renderer registered for block type %q", inst.BlockType)
	return Result{
		HTML: fmt.Sprintf(
			`<section class="sg-unsupported sg-unsupported--%s"><p>Bloc non pris en charge : %s</p></section>`,
			kind, kind,
		),
		CSS:      ".sg-unsupported{padding:2rem 1rem;text-align:center;color:#991b1b;background:#fef2f2;border:1px dashed #fca5a5;}",
		Warnings: []string{message},
		Errors: []RenderError{{
			BlockID:      inst.ID,
			BlockType:    inst.BlockType,
			Message:      message,
			FallbackUsed: true,
		}},
	}
}
