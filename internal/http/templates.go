package httpx

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	domainauth "github.com/teamboard/teamboard/internal/domain/auth"
	"github.com/teamboard/teamboard/internal/nav"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// pageNames lists templates rendered inside the shared layout.
var pageNames = []string{"dashboard", "team", "activities", "admin"}

// standaloneNames lists templates rendered without the layout chrome.
var standaloneNames = []string{"login", "error"}

// PageData is the view model shared by all layout pages.
type PageData struct {
	Title  string
	Active string
	User   *domainauth.User
	Nav    []nav.Item
	Data   any
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses the embedded templates. Each layout page gets its own
// template set so page-level blocks cannot collide.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pages := make(map[string]*template.Template, len(pageNames)+len(standaloneNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	for _, name := range standaloneNames {
		t, err := template.ParseFS(templateFS, "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// Render writes a page to the response. Templates execute into a buffer first
// so a mid-render failure produces a clean error page instead of a truncated
// document.
func (t *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := t.pages[name]
	if !ok {
		t.logger.Error("unknown template", "name", name)
		t.RenderError(w, http.StatusInternalServerError)
		return
	}
	// Layout pages execute the layout, which pulls in the page's content
	// block. Standalone pages execute their own file.
	entry := name + ".tmpl"
	if tmpl.Lookup("layout.tmpl") != nil {
		entry = "layout.tmpl"
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, data); err != nil {
		t.logger.Error("template render failed", "name", name, "error", err)
		t.RenderError(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError writes the standalone error page for the given status.
func (t *Renderer) RenderError(w http.ResponseWriter, status int) {
	tmpl, ok := t.pages["error"]
	if !ok {
		http.Error(w, http.StatusText(status), status)
		return
	}
	var buf bytes.Buffer
	data := struct {
		Status  int
		Message string
	}{Status: status, Message: http.StatusText(status)}
	if err := tmpl.ExecuteTemplate(&buf, "error.tmpl", data); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
