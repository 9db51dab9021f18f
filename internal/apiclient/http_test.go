package apiclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus.regintel.org/internal/app"
	"nexus.regintel.org/internal/appconf"
	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/restapi"
)

// newAPIServer runs the real REST API over an in-memory store.
func newAPIServer(t *testing.T) *httptest.Server {
	cfg := appconf.Default()
	cfg.Env = appconf.Test
	cfg.DataPath = ":memory:"
	cfg.ApiKeys = []string{"TEST"}

	application, err := app.New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	api := restapi.NewRestAPI(application)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(api.Handler(mux))

	t.Cleanup(func() {
		server.Close()
		api.Shutdown()
		_ = application.Close()
	})
	return server
}

func TestHTTPClientAgainstServer(t *testing.T) {
	server := newAPIServer(t)
	c := NewHTTPClient(server.URL+"/", "TEST")
	ctx := context.Background()

	feeds, err := c.GetFeeds(ctx)
	require.NoError(t, err)
	assert.True(t, feeds.Success)
	assert.Equal(t, catalog.SampleFeeds(), feeds.Data)

	feed, err := c.GetFeed(ctx, "feed-2")
	require.NoError(t, err)
	assert.Equal(t, "feed-2", feed.Data.ID)

	missing, err := c.GetFeed(ctx, "feed-404")
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, "Feed not found", missing.Error)

	high, err := c.SearchFeeds(ctx, catalog.FeedFilter{Urgency: "High", DateFrom: "2024-01-01"})
	require.NoError(t, err)
	assert.Len(t, high.Data, 2)

	vendors, err := c.SearchVendors(ctx, catalog.MarketplaceFilter{MinScore: 90})
	require.NoError(t, err)
	assert.Len(t, vendors.Data, 2)

	consultant, err := c.GetConsultant(ctx, "consultant-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Mitchell", consultant.Data.Name)

	cro, err := c.GetCRO(ctx, "cro-9")
	require.NoError(t, err)
	assert.Equal(t, "CRO not found", cro.Error)

	search, err := c.GlobalSearch(ctx, "BioTrials")
	require.NoError(t, err)
	require.Len(t, search.Data.CROs, 1)
	assert.Equal(t, "BioTrials Excellence", search.Data.CROs[0].Name)
}

func TestHTTPClientSendsBearerToken(t *testing.T) {
	server := newAPIServer(t)

	resp, err := NewHTTPClient(server.URL, "wrong").GetVendors(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "permission denied", resp.Error)
}

func TestHTTPClientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/api/feeds":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"Failed to fetch feeds"}`))
		case "/api/vendors":
			_, _ = w.Write([]byte(`<html>not json</html>`))
		default:
			time.Sleep(200 * time.Millisecond)
		}
	}))
	defer server.Close()

	c := NewHTTPClient(server.URL, "TEST", WithTimeout(50*time.Millisecond))
	ctx := context.Background()

	feeds, err := c.GetFeeds(ctx)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, feeds.Success)
	assert.Equal(t, "Failed to fetch feeds", feeds.Error)

	vendors, err := c.GetVendors(ctx)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, vendors.Success)

	cros, err := c.GetCROs(ctx)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.False(t, cros.Success)

	// one request each, no retries
	assert.Equal(t, int32(3), calls.Load())
}
