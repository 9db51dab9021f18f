package webui

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus.regintel.org/internal/app"
	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/logging"
)

func createTestWebUI(t *testing.T) *WebUI {
	return createTestWebUIForEnv(t, appconf.Test)
}

func createTestWebUIForEnv(t *testing.T, env appconf.Environment) *WebUI {
	cfg := appconf.Default()
	cfg.Env = env
	cfg.DataPath = ":memory:"
	cfg.ApiKeys = []string{"TEST"}

	application, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, application.Close()) })

	ui, err := NewWebUI(application)
	require.NoError(t, err)
	return ui
}

func serve(t *testing.T, ui *WebUI, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer TEST")
	return serveRequest(t, ui, req)
}

func serveRequest(t *testing.T, ui *WebUI, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	ui.SetWebUIRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRedirectsToDashboard(t *testing.T) {
	ui := createTestWebUI(t)

	for _, path := range []string{"/", "/ui/"} {
		rec := serve(t, ui, path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/ui/dashboard", rec.Header().Get("Location"), path)
	}
}

func TestPanelPages(t *testing.T) {
	ui := createTestWebUI(t)

	tests := []struct {
		path     string
		contains []string
	}{
		{"/ui/dashboard", []string{"<h1>Dashboard</h1>", "Upcoming Deadlines"}},
		{"/ui/feeds", []string{"<h1>Feeds</h1>", `href="/ui/feeds/feed-1"`, "5 updates"}},
		{"/ui/vendors", []string{"RegTech Solutions Inc."}},
		{"/ui/rfp", []string{"RIMS Implementation - Global Pharma", "Phase III CRO Services"}},
		{"/ui/notifications", []string{"3 unread of 8"}},
		{"/ui/settings", []string{"<h1>Settings</h1>", "<pre>"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, ui, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, contentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))
			body := rec.Body.String()
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestUnknownPanelShowsDashboard(t *testing.T) {
	ui := createTestWebUI(t)

	rec := serve(t, ui, "/ui/does-not-exist")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Dashboard</h1>")
	assert.Contains(t, rec.Body.String(), `href="/ui/dashboard" class="active"`)
}

func TestFeedDetailPage(t *testing.T) {
	ui := createTestWebUI(t)

	rec := serve(t, ui, "/ui/feeds/feed-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FDA Announces New Drug Approval Pathway for Rare Diseases")
	assert.Contains(t, rec.Body.String(), "Back to feeds")

	rec = serve(t, ui, "/ui/feeds/feed-404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Feed not found")

	rec = serve(t, ui, "/ui/vendors/vendor-1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugIndex(t *testing.T) {
	ui := createTestWebUI(t)

	rec := serve(t, ui, "/debug/?dataType=vendors")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catalog - Vendors")
	assert.Contains(t, rec.Body.String(), "RegTech Solutions Inc.")

	rec = serve(t, ui, "/debug/?dataType=rfps")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IDMP Compliance Solution")

	rec = serve(t, ui, "/debug/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Choose a data type")
}

func TestPanicRendersFallback(t *testing.T) {
	ui := createTestWebUI(t)
	ui.router.GET("/ui/:panel/:id/boom", func(http.ResponseWriter, *http.Request, httprouter.Params) {
		panic("panel exploded")
	})

	var logs bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/ui/feeds/feed-1/boom?x=1", nil)
	req.Header.Set("Authorization", "Bearer TEST")
	req = req.WithContext(logging.WithLogger(req.Context(), logging.NewStructuredLogger(&logs, slog.LevelInfo)))

	rec := serveRequest(t, ui, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), `"panic":"panel exploded"`)
	assert.Contains(t, logs.String(), `"path":"/ui/feeds/feed-1/boom"`)
	body := rec.Body.String()
	assert.Contains(t, body, "Something went wrong")
	assert.Contains(t, body, "Try Again")
	assert.Contains(t, body, "Reload")
	assert.Contains(t, body, `href="/ui/dashboard"`)
	assert.Contains(t, body, "/ui/feeds/feed-1/boom?x=1")
}

func TestPagesRequireAPIKey(t *testing.T) {
	ui := createTestWebUI(t)

	for _, path := range []string{"/", "/ui/rfp", "/ui/feeds/feed-1", "/debug/?dataType=rfps", "/ui/rfp?key=wrong"} {
		t.Run(path, func(t *testing.T) {
			rec := serveRequest(t, ui, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "permission denied")
			assert.NotContains(t, body, "RIMS Implementation")
		})
	}
}

func TestQueryKeyIsRememberedInCookie(t *testing.T) {
	ui := createTestWebUI(t)

	rec := serveRequest(t, ui, httptest.NewRequest(http.MethodGet, "/ui/rfp?key=TEST", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, apiKeyCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/ui/notifications", nil)
	req.AddCookie(cookies[0])
	rec = serveRequest(t, ui, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/ui/notifications", nil)
	req.AddCookie(&http.Cookie{Name: apiKeyCookie, Value: "stale"})
	rec = serveRequest(t, ui, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestDebugPagesHiddenInProduction(t *testing.T) {
	ui := createTestWebUIForEnv(t, appconf.Production)

	rec := serve(t, ui, "/debug/?dataType=rfps")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "RIMS Implementation")

	rec = serve(t, ui, "/ui/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
}
