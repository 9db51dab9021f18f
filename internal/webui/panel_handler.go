package webui

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/logging"
	"nexus.regintel.org/internal/utils"
)

type pageData struct {
	Sidebar []dashboard.Section
	Active  string
	Panel   dashboard.Panel
	Error   string
}

func (ui *WebUI) homeHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, "/ui/"+dashboard.KeyDashboard, http.StatusFound)
}

// panelHandler renders the sidebar and the selected panel. Unknown keys show
// the dashboard.
func (ui *WebUI) panelHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("panel")
	if utils.ValidateID(key) != nil {
		key = dashboard.KeyDashboard
	}

	panel, err := ui.Switcher.Resolve(r.Context(), key)
	if err != nil {
		ui.renderError(w, r, http.StatusInternalServerError, "Failed to load panel", err)
		return
	}

	ui.render(w, http.StatusOK, "layout.html", pageData{
		Sidebar: dashboard.Sidebar(),
		Active:  panel.Key,
		Panel:   panel,
	})
}

func (ui *WebUI) feedDetailHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("panel") != dashboard.KeyFeeds {
		http.NotFound(w, r)
		return
	}

	id := ps.ByName("id")
	if err := utils.ValidateID(id); err != nil {
		ui.renderError(w, r, http.StatusBadRequest, "Invalid feed id", nil)
		return
	}

	panel, err := ui.Switcher.FeedDetail(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		ui.renderError(w, r, http.StatusNotFound, "Feed not found", nil)
		return
	}
	if err != nil {
		ui.renderError(w, r, http.StatusInternalServerError, "Failed to fetch feed", err)
		return
	}

	ui.render(w, http.StatusOK, "layout.html", pageData{
		Sidebar: dashboard.Sidebar(),
		Active:  dashboard.KeyFeeds,
		Panel:   panel,
	})
}

// renderError shows text in place of the panel. err, when set, is logged.
func (ui *WebUI) renderError(w http.ResponseWriter, r *http.Request, status int, text string, err error) {
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), text, err,
			slog.String("component", "webui"),
			slog.String("path", r.URL.Path))
	}
	ui.render(w, status, "layout.html", pageData{
		Sidebar: dashboard.Sidebar(),
		Error:   text,
	})
}
