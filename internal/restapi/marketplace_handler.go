package restapi

import (
	"context"
	"net/http"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/utils"
)

// marketplaceFilter reads ?q=&category=&minScore=. ok is false when no filter
// was given.
func marketplaceFilter(r *http.Request) (filter catalog.MarketplaceFilter, ok bool, fieldErrors map[string][]string) {
	params := r.URL.Query()
	fieldErrors = make(map[string][]string)

	filter.Query = params.Get("q")
	filter.Category = params.Get("category")
	for name, value := range map[string]string{"q": filter.Query, "category": filter.Category} {
		if err := utils.ValidateQuery(value); err != nil {
			fieldErrors[name] = append(fieldErrors[name], err.Error())
		}
	}
	filter.MinScore, fieldErrors = utils.ParseFloatParam(params, "minScore", fieldErrors)
	if !(filter.MinScore >= 0 && filter.MinScore <= 100) {
		fieldErrors["minScore"] = append(fieldErrors["minScore"], "minScore must be between 0 and 100")
	}
	filter.Query = utils.StripTags(filter.Query)

	ok = params.Has("q") || params.Has("category") || params.Has("minScore")
	return filter, ok, fieldErrors
}

// sendListing answers a marketplace list, filtered when the request carries a filter.
func sendListing[T any](api *RestAPI, w http.ResponseWriter, r *http.Request, plural string,
	list func(context.Context) ([]T, error),
	search func(context.Context, catalog.MarketplaceFilter) ([]T, error),
) {
	filter, filtered, fieldErrors := marketplaceFilter(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	var items []T
	var err error
	if filtered {
		items, err = search(r.Context(), filter)
	} else {
		items, err = list(r.Context())
	}
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to fetch "+plural)
		return
	}
	api.sendData(w, r, items)
}

func (api *RestAPI) vendorsHandler(w http.ResponseWriter, r *http.Request) {
	sendListing(api, w, r, "vendors", api.Catalog.Vendors, api.Catalog.SearchVendors)
}

func (api *RestAPI) vendorHandler(w http.ResponseWriter, r *http.Request) {
	sendEntity(api, w, r, "Vendor", api.Catalog.Vendor)
}

func (api *RestAPI) consultantsHandler(w http.ResponseWriter, r *http.Request) {
	sendListing(api, w, r, "consultants", api.Catalog.Consultants, api.Catalog.SearchConsultants)
}

func (api *RestAPI) consultantHandler(w http.ResponseWriter, r *http.Request) {
	sendEntity(api, w, r, "Consultant", api.Catalog.Consultant)
}

func (api *RestAPI) crosHandler(w http.ResponseWriter, r *http.Request) {
	sendListing(api, w, r, "CROs", api.Catalog.CROs, api.Catalog.SearchCROs)
}

func (api *RestAPI) croHandler(w http.ResponseWriter, r *http.Request) {
	sendEntity(api, w, r, "CRO", api.Catalog.CRO)
}
