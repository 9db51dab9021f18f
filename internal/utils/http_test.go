package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
	}{
		{name: "Basic ID", id: "feed-1"},
		{name: "ID with dots", id: "v1.2.json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" ServeMux", func(t *testing.T) {
			mux := http.NewServeMux()
			var result string
			mux.HandleFunc("GET /api/feeds/{id}", func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "id")
			})

			mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/feeds/"+tc.id, nil))
			assert.Equal(t, tc.id, result)
		})

		t.Run(tc.name+" httprouter", func(t *testing.T) {
			router := httprouter.New()
			var result string
			router.Handler(http.MethodGet, "/ui/feeds/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractIDFromParams(r, "id")
			}))

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ui/feeds/"+tc.id, nil))
			assert.Equal(t, tc.id, result)
		})
	}
}

func TestExtractIDFromParamsMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", ExtractIDFromParams(r, "id"))
}
