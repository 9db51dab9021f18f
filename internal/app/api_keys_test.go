package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"nexus.regintel.org/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
	assert.True(t, app.IsInvalidAPIKey("other"))
	assert.False(t, app.IsInvalidAPIKey("key"))
}

func TestRequestAPIKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/feeds?key=query-key", nil)
	assert.Equal(t, "query-key", RequestAPIKey(r))

	r.Header.Set("Authorization", "Bearer header-key")
	assert.Equal(t, "header-key", RequestAPIKey(r), "bearer token wins over the query parameter")

	r = httptest.NewRequest("GET", "/api/feeds", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Equal(t, "", RequestAPIKey(r))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{Config: appconf.Config{ApiKeys: []string{"test"}}}

	r := httptest.NewRequest("GET", "/api/feeds", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))

	r.Header.Set("Authorization", "Bearer test")
	assert.False(t, app.RequestHasInvalidAPIKey(r))
}
