package restapi

import (
	"errors"
	"net/http"

	"nexus.regintel.org/internal/utils"
)

func (api *RestAPI) globalSearchHandler(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("q"))
	if err == nil && query == "" {
		err = errors.New("query is required")
	}
	if err != nil {
		api.fieldErrorResponse(w, r, "q", err)
		return
	}

	results, err := api.Catalog.GlobalSearch(r.Context(), query)
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to search")
		return
	}
	api.sendData(w, r, results)
}
