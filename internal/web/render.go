package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/ewinters/slate/internal/errors"
	"github.com/ewinters/slate/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title     string
	Version   string
	Nav       string // active nav item: "schedule", "screenplay", "setups"
	InputPath string
}

// ViewPageData is the template data for the schedule and screenplay pages.
type ViewPageData struct {
	PageData
	RenderedHTML template.HTML
	Stats        ops.Stats
}

// SetupsPageData is the template data for the setups inventory page.
type SetupsPageData struct {
	PageData
	Setups []ops.SetupItem
	Check  *ops.CheckOutput
	Stats  ops.Stats
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	pages := []string{"view.html", "setups.html", "error.html"}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "base.html", page)
		if err != nil {
			log.Fatalf("failed to parse template %s: %v", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates, version: version}
}

// Render executes the named page template.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template error doesn't emit a half page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("template %s: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// RenderError renders the error page with the status mapped from a
// structured error.
func (r *Renderer) RenderError(w http.ResponseWriter, inputPath string, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	if sErr, ok := err.(*errors.SlateError); ok {
		status = sErr.Status
		message = sErr.Message
	}

	w.WriteHeader(status)
	r.Render(w, "error.html", ErrorPageData{
		PageData: PageData{
			Title:     fmt.Sprintf("Error %d", status),
			Version:   r.version,
			InputPath: inputPath,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderMarkdown converts rendered view text to HTML using goldmark. The
// schedule view's # SETUP headings and --- separators are markdown, so the
// preview gets real headings and rules for free.
func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// renderPre wraps view text in a <pre> block, escaped. Used for the
// screenplay view, where dialogue must keep its exact layout.
func renderPre(text string) template.HTML {
	return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
}
