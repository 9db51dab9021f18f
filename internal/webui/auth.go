package webui

import (
	"net/http"

	"nexus.regintel.org/internal/app"
	"nexus.regintel.org/internal/appconf"
)

// apiKeyCookie carries the key between pages once it has been given as ?key=,
// so sidebar links work without repeating it.
const apiKeyCookie = "nexus_api_key"

func (ui *WebUI) requestAPIKey(r *http.Request) (key string, fromCookie bool) {
	if key = app.RequestAPIKey(r); key != "" {
		return key, false
	}
	if c, err := r.Cookie(apiKeyCookie); err == nil {
		return c.Value, true
	}
	return "", false
}

// requireAPIKey guards the shell with the same keys as the REST API.
func (ui *WebUI) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, fromCookie := ui.requestAPIKey(r)
		if ui.IsInvalidAPIKey(key) {
			if fromCookie {
				http.SetCookie(w, &http.Cookie{Name: apiKeyCookie, Path: "/", MaxAge: -1})
			}
			ui.render(w, http.StatusUnauthorized, "layout.html", pageData{Error: "permission denied"})
			return
		}
		if !fromCookie && r.Header.Get("Authorization") == "" {
			http.SetCookie(w, &http.Cookie{
				Name:     apiKeyCookie,
				Value:    key,
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteStrictMode,
			})
		}
		next.ServeHTTP(w, r)
	})
}

// debugEnabled hides the data dumps in production.
func (ui *WebUI) debugEnabled() bool {
	return ui.Config.Env != appconf.Production
}
