package restapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/utils"
)

func (api *RestAPI) feedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := api.Catalog.Feeds(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to fetch feeds")
		return
	}
	api.sendData(w, r, feeds)
}

func (api *RestAPI) feedHandler(w http.ResponseWriter, r *http.Request) {
	sendEntity(api, w, r, "Feed", api.Catalog.Feed)
}

func (api *RestAPI) searchFeedsHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	filter := catalog.FeedFilter{
		Query:    params.Get("q"),
		Category: params.Get("category"),
		Region:   params.Get("region"),
		Urgency:  params.Get("urgency"),
		Agency:   params.Get("agency"),
		DateFrom: params.Get("dateFrom"),
		DateTo:   params.Get("dateTo"),
	}

	fieldErrors := utils.ValidateFeedSearchParams(filter.Query, filter.Urgency, filter.DateFrom, filter.DateTo, map[string]string{
		"category": filter.Category,
		"region":   filter.Region,
		"agency":   filter.Agency,
	})
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	filter.Query = utils.StripTags(filter.Query)

	feeds, err := api.Catalog.SearchFeeds(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to search feeds")
		return
	}
	api.sendData(w, r, feeds)
}

// sendEntity answers a single-entity lookup by the {id} path value. kind names
// the entity in the not-found and failure messages.
func sendEntity[T any](api *RestAPI, w http.ResponseWriter, r *http.Request, kind string, fetch func(context.Context, string) (T, error)) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.fieldErrorResponse(w, r, "id", err)
		return
	}

	entity, err := fetch(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		api.sendNotFound(w, r, kind+" not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to fetch "+lowerKind(kind))
		return
	}
	api.sendData(w, r, entity)
}

func lowerKind(kind string) string {
	if kind == "CRO" {
		return kind
	}
	return strings.ToLower(kind)
}
