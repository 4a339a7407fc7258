package web

import (
	"net/http"

	"github.com/ewinters/slate/internal/ops"
	"github.com/ewinters/slate/internal/render"
)

// Handlers holds dependencies for the preview HTTP handlers. The input
// file is re-read on every request so the preview tracks edits without a
// restart.
type Handlers struct {
	inputPath string
	renderer  *Renderer
}

// HandleSchedule serves the shooting schedule view.
func (h *Handlers) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	segments, err := ops.ScanFile(h.inputPath)
	if err != nil {
		h.renderer.RenderError(w, h.inputPath, err)
		return
	}

	h.renderer.Render(w, "view.html", ViewPageData{
		PageData: PageData{
			Title:     "Shooting schedule",
			Version:   h.renderer.version,
			Nav:       "schedule",
			InputPath: h.inputPath,
		},
		RenderedHTML: renderMarkdown(render.Schedule(segments)),
		Stats:        ops.Summarize(segments),
	})
}

// HandleScreenplay serves the annotated screenplay view.
func (h *Handlers) HandleScreenplay(w http.ResponseWriter, r *http.Request) {
	segments, err := ops.ScanFile(h.inputPath)
	if err != nil {
		h.renderer.RenderError(w, h.inputPath, err)
		return
	}

	h.renderer.Render(w, "view.html", ViewPageData{
		PageData: PageData{
			Title:     "Annotated screenplay",
			Version:   h.renderer.version,
			Nav:       "screenplay",
			InputPath: h.inputPath,
		},
		RenderedHTML: renderPre(render.Screenplay(segments)),
		Stats:        ops.Summarize(segments),
	})
}

// HandleSetups serves the setup inventory page, including the check report.
func (h *Handlers) HandleSetups(w http.ResponseWriter, r *http.Request) {
	lines, err := ops.ReadLines(h.inputPath)
	if err != nil {
		h.renderer.RenderError(w, h.inputPath, err)
		return
	}

	check, err := ops.Inspect(lines)
	if err != nil {
		h.renderer.RenderError(w, h.inputPath, err)
		return
	}

	segments, err := ops.ScanFile(h.inputPath)
	if err != nil {
		h.renderer.RenderError(w, h.inputPath, err)
		return
	}
	inventory := ops.InventorySetups(segments)

	h.renderer.Render(w, "setups.html", SetupsPageData{
		PageData: PageData{
			Title:     "Setups",
			Version:   h.renderer.version,
			Nav:       "setups",
			InputPath: h.inputPath,
		},
		Setups: inventory.Setups,
		Check:  check,
		Stats:  inventory.Stats,
	})
}
