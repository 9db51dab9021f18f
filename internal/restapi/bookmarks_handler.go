package restapi

import (
	"errors"
	"net/http"

	"nexus.regintel.org/internal/bookmarks"
	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/utils"
)

func (api *RestAPI) bookmarksHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	text, err := utils.ValidateAndSanitizeQuery(params.Get("q"))
	if err != nil {
		api.fieldErrorResponse(w, r, "q", err)
		return
	}

	items, err := bookmarks.List(bookmarks.Query{
		Category: params.Get("category"),
		Text:     text,
		Sort:     bookmarks.Sort(params.Get("sort")),
	})
	switch {
	case errors.Is(err, bookmarks.ErrInvalidCategory):
		api.fieldErrorResponse(w, r, "category", err)
		return
	case errors.Is(err, bookmarks.ErrInvalidSort):
		api.fieldErrorResponse(w, r, "sort", err)
		return
	case err != nil:
		api.serverErrorResponse(w, r, err, "Failed to fetch bookmarks")
		return
	}

	api.sendData(w, r, dashboard.BookmarksPanel{Items: items, Stats: bookmarks.CategoryStats()})
}
