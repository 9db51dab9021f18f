package utils

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns the named path parameter, whether the request was
// routed by http.ServeMux or by httprouter.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	if v := r.PathValue(paramName); v != "" {
		return v
	}
	return httprouter.ParamsFromContext(r.Context()).ByName(paramName)
}
