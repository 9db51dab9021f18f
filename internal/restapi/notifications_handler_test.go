package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/notifications"
)

func TestNotificationsHandler(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		tab   string
		count int
	}{
		{"", 8},
		{"all", 8},
		{"unread", 3},
		{"high", 2},
		{"regulatory", 2},
		{"marketplace", 2},
	}
	for _, tt := range tests {
		t.Run("tab="+tt.tab, func(t *testing.T) {
			resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/notifications?tab="+tt.tab)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			panel := decodeData[dashboard.NotificationsPanel](t, model)
			assert.Len(t, panel.Items, tt.count)
			assert.Equal(t, notifications.Counts{Total: 8, Unread: 3, High: 2}, panel.Counts)
		})
	}

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/notifications?tab=urgent")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, model.FieldErrors, "tab")
}

func TestNotificationReadHandlers(t *testing.T) {
	api := createTestApi(t)

	resp, model := doRequest(t, api, http.MethodPost, "/api/notifications/1/read", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeData[notifications.Notification](t, model).Read)
	assert.Equal(t, 2, api.Notifications.Counts().Unread)

	resp, model = doRequest(t, api, http.MethodPost, "/api/notifications/1/toggle", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeData[notifications.Notification](t, model).Read)

	resp, model = doRequest(t, api, http.MethodPost, "/api/notifications/99/read", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Notification not found", model.Error)

	resp, model = doRequest(t, api, http.MethodPost, "/api/notifications/abc/read", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, model.FieldErrors, "id")

	resp, model = doRequest(t, api, http.MethodPost, "/api/notifications/read-all", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeData[markAllReadResult](t, model)
	assert.Equal(t, 3, result.Updated)
	assert.Equal(t, 0, result.Counts.Unread)
}
