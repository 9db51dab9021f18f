// Package webui serves the HTML shell: the sidebar and the panel it selects.
package webui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"nexus.regintel.org/internal/app"
	"nexus.regintel.org/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// contentSecurityPolicy allows the shell's inline styles and nothing else.
const contentSecurityPolicy = "default-src 'none'; style-src 'unsafe-inline'; frame-ancestors 'none';"

type WebUI struct {
	*app.Application
	templates *template.Template
	router    *httprouter.Router
}

var templateFuncs = template.FuncMap{
	"json": func(v any) (string, error) {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	},
}

// NewWebUI parses the embedded templates and builds the router.
func NewWebUI(application *app.Application) (*WebUI, error) {
	tmpl, err := template.New("webui").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	ui := &WebUI{Application: application, templates: tmpl}

	router := httprouter.New()
	router.GET("/", ui.homeHandler)
	router.GET("/ui/", ui.homeHandler)
	router.GET("/ui/:panel", ui.panelHandler)
	// httprouter cannot mix /ui/feeds/ with /ui/:panel, so the detail view
	// is matched here and checked in the handler.
	router.GET("/ui/:panel/:id", ui.feedDetailHandler)
	if ui.debugEnabled() {
		router.GET("/debug/", ui.debugIndexHandler)
	}
	router.PanicHandler = ui.panicHandler
	ui.router = router

	return ui, nil
}

// SetWebUIRoutes mounts the shell and the debug pages on mux. Every page
// requires an API key; the debug pages are not mounted in production.
func (ui *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	guarded := ui.requireAPIKey(ui.router)
	mux.Handle("GET /{$}", guarded)
	mux.Handle("/ui/", guarded)
	if ui.debugEnabled() {
		mux.Handle("/debug/", guarded)
	}
}

// render executes the named template into a buffer first, so a failing
// template never leaves a half-written page.
func (ui *WebUI) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := ui.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(ui.Logger, "failed to render template", err,
			slog.String("component", "webui"),
			slog.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
