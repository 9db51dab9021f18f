package restapi

import "net/http"

type healthStatus struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendData(w, r, healthStatus{Status: "ok", Env: api.Config.Env.String()})
}
