package restapi

import (
	"net/http"
	"time"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// instrument records request metrics under the route pattern, so ids in the
// path do not become label values.
func (api *RestAPI) instrument(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)
		api.Metrics.ObserveRequest(pattern, r.Method, wrapped.statusCode, time.Since(start))
	})
}

// handle registers an authenticated, instrumented route.
func (api *RestAPI) handle(mux *http.ServeMux, pattern string, h handlerFunc) {
	mux.Handle(pattern, api.instrument(pattern, validateAPIKey(api, h)))
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /healthz", api.instrument("GET /healthz", http.HandlerFunc(api.healthHandler)))
	mux.Handle("GET /metrics", api.Metrics.Handler())

	api.handle(mux, "GET /api/feeds", api.feedsHandler)
	api.handle(mux, "GET /api/feeds/search", api.searchFeedsHandler)
	api.handle(mux, "GET /api/feeds/{id}", api.feedHandler)

	api.handle(mux, "GET /api/vendors", api.vendorsHandler)
	api.handle(mux, "GET /api/vendors/{id}", api.vendorHandler)
	api.handle(mux, "GET /api/consultants", api.consultantsHandler)
	api.handle(mux, "GET /api/consultants/{id}", api.consultantHandler)
	api.handle(mux, "GET /api/cros", api.crosHandler)
	api.handle(mux, "GET /api/cros/{id}", api.croHandler)

	api.handle(mux, "GET /api/search", api.globalSearchHandler)

	api.handle(mux, "GET /api/rfps", api.rfpsHandler)
	api.handle(mux, "POST /api/rfps", api.createRFPHandler)
	api.handle(mux, "GET /api/rfps/reference", api.rfpReferenceHandler)
	api.handle(mux, "GET /api/rfps/{id}", api.rfpHandler)
	api.handle(mux, "PATCH /api/rfps/{id}", api.updateRFPHandler)
	api.handle(mux, "POST /api/rfps/{id}/next", api.nextRFPStepHandler)
	api.handle(mux, "POST /api/rfps/{id}/previous", api.previousRFPStepHandler)
	api.handle(mux, "POST /api/rfps/{id}/vendors/{vendorId}", api.toggleRFPVendorHandler)
	api.handle(mux, "POST /api/rfps/{id}/requirements/{key}", api.toggleRFPRequirementHandler)
	api.handle(mux, "POST /api/rfps/{id}/award", api.awardRFPHandler)
	api.handle(mux, "POST /api/rfps/{id}/comments", api.commentRFPHandler)
	api.handle(mux, "GET /api/rfps/{id}/export", api.exportRFPHandler)

	api.handle(mux, "GET /api/quiz", api.quizHandler)
	api.handle(mux, "POST /api/quiz/score", api.scoreQuizHandler)
	api.handle(mux, "POST /api/quiz/sessions", api.createQuizSessionHandler)
	api.handle(mux, "GET /api/quiz/sessions/{id}", api.quizSessionHandler)
	api.handle(mux, "POST /api/quiz/sessions/{id}/answers", api.answerQuizHandler)
	api.handle(mux, "POST /api/quiz/sessions/{id}/next", api.nextQuizQuestionHandler)
	api.handle(mux, "POST /api/quiz/sessions/{id}/previous", api.previousQuizQuestionHandler)
	api.handle(mux, "POST /api/quiz/sessions/{id}/finish", api.finishQuizHandler)

	api.handle(mux, "GET /api/notifications", api.notificationsHandler)
	api.handle(mux, "POST /api/notifications/read-all", api.markAllNotificationsReadHandler)
	api.handle(mux, "POST /api/notifications/{id}/read", api.markNotificationReadHandler)
	api.handle(mux, "POST /api/notifications/{id}/toggle", api.toggleNotificationHandler)

	api.handle(mux, "GET /api/bookmarks", api.bookmarksHandler)
	api.handle(mux, "GET /api/analytics", api.analyticsHandler)

	api.handle(mux, "GET /api/panels", api.sidebarHandler)
	api.handle(mux, "GET /api/panels/{key}", api.panelHandler)
}
