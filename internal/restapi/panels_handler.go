package restapi

import (
	"net/http"

	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/utils"
)

func (api *RestAPI) sidebarHandler(w http.ResponseWriter, r *http.Request) {
	api.sendData(w, r, dashboard.Sidebar())
}

// panelHandler resolves a sidebar key. Unknown keys fall back to the dashboard
// panel, the same as the HTML shell.
func (api *RestAPI) panelHandler(w http.ResponseWriter, r *http.Request) {
	key := utils.ExtractIDFromParams(r, "key")
	if err := utils.ValidateID(key); err != nil {
		api.fieldErrorResponse(w, r, "key", err)
		return
	}

	panel, err := api.Switcher.Resolve(r.Context(), key)
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to load panel")
		return
	}
	api.sendData(w, r, panel)
}
