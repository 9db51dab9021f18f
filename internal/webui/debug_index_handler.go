package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/julienschmidt/httprouter"

	"nexus.regintel.org/internal/bookmarks"
)

type debugData struct {
	Title string
	Pre   string
}

var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (ui *WebUI) writeDebugData(w http.ResponseWriter, title string, data any) {
	ui.render(w, http.StatusOK, "debug_index.html", debugData{
		Title: title,
		Pre:   debugConfig.Sdump(data),
	})
}

func (ui *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dataType := r.URL.Query().Get("dataType")
	ctx := r.Context()

	var data any
	var title string
	var err error

	switch dataType {
	case "feeds":
		data, err = ui.Catalog.Feeds(ctx)
		title = "Catalog - Regulatory Feeds"
	case "vendors":
		data, err = ui.Catalog.Vendors(ctx)
		title = "Catalog - Vendors"
	case "consultants":
		data, err = ui.Catalog.Consultants(ctx)
		title = "Catalog - Consultants"
	case "cros":
		data, err = ui.Catalog.CROs(ctx)
		title = "Catalog - CROs"
	case "rfps":
		data = ui.RFPs.List()
		title = "Workflow - RFPs"
	case "notifications":
		data = ui.Notifications.List("")
		title = "Notifications"
	case "bookmarks":
		data = bookmarks.Items()
		title = "Bookmarks"
	default:
		data = map[string]string{
			"error": "Please use one of the following: feeds, vendors, consultants, cros, rfps, notifications, bookmarks.",
		}
		title = "Choose a data type"
	}

	if err != nil {
		ui.renderError(w, r, http.StatusInternalServerError, "Failed to fetch "+dataType, err)
		return
	}
	ui.writeDebugData(w, title, data)
}
