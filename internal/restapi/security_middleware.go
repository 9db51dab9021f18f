package restapi

import (
	"net/http"
	"strings"
)

// apiContentSecurityPolicy forbids everything; JSON responses load nothing.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none';"

// shellPrefixes are served by the HTML shell, which sets its own policy.
var shellPrefixes = []string{"/ui/", "/debug/"}

func isShellPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range shellPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// WithSecurityHeaders wraps the given handler with security headers middleware
func (api *RestAPI) WithSecurityHeaders(handler http.Handler) http.Handler {
	return securityHeaders(handler)
}

// securityHeaders sets the common hardening headers, the open CORS policy the
// dashboard front end relies on, and a per-surface policy: API responses get
// a deny-all CSP and are never cached, since they carry workflow state and
// notification read marks.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if !isShellPath(r.URL.Path) {
			h.Set("Content-Security-Policy", apiContentSecurityPolicy)
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			h.Set("Cache-Control", "no-store")
		}

		if r.Header.Get("Origin") != "" {
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
			h.Set("Access-Control-Max-Age", "86400")
		}

		// Preflight requests never reach the handlers.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
