package restapi

import (
	"errors"
	"net/http"

	"nexus.regintel.org/internal/analytics"
)

func (api *RestAPI) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	report, err := analytics.BuildReport(r.URL.Query().Get("range"))
	if errors.Is(err, analytics.ErrInvalidRange) {
		api.fieldErrorResponse(w, r, "range", err)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to build analytics")
		return
	}
	api.sendData(w, r, report)
}
