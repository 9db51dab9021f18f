package restapi

import (
	"errors"
	"net/http"

	"nexus.regintel.org/internal/dashboard"
	"nexus.regintel.org/internal/notifications"
	"nexus.regintel.org/internal/utils"
)

type markAllReadResult struct {
	Updated int                  `json:"updated"`
	Counts  notifications.Counts `json:"counts"`
}

func (api *RestAPI) notificationsHandler(w http.ResponseWriter, r *http.Request) {
	tab, err := notifications.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		api.fieldErrorResponse(w, r, "tab", err)
		return
	}
	api.sendData(w, r, dashboard.NotificationsPanel{
		Items:  api.Notifications.List(tab),
		Counts: api.Notifications.Counts(),
	})
}

func (api *RestAPI) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	api.updateNotification(w, r, api.Notifications.MarkRead)
}

func (api *RestAPI) toggleNotificationHandler(w http.ResponseWriter, r *http.Request) {
	api.updateNotification(w, r, api.Notifications.ToggleRead)
}

func (api *RestAPI) markAllNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	updated := api.Notifications.MarkAllRead()
	api.sendData(w, r, markAllReadResult{Updated: updated, Counts: api.Notifications.Counts()})
}

func (api *RestAPI) updateNotification(w http.ResponseWriter, r *http.Request, fn func(int) (notifications.Notification, error)) {
	id, err := utils.ParseIntID(utils.ExtractIDFromParams(r, "id"))
	if err != nil {
		api.fieldErrorResponse(w, r, "id", err)
		return
	}
	n, err := fn(id)
	if errors.Is(err, notifications.ErrNotFound) {
		api.sendNotFound(w, r, "Notification not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err, "Failed to update notification")
		return
	}
	api.sendData(w, r, n)
}
