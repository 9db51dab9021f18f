package webui

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"nexus.regintel.org/internal/logging"
)

type fallbackData struct {
	RetryURL string
	HomeURL  string
}

// panicHandler stands in for a crashed panel: it logs the panic and shows a
// static card with ways back into the shell.
func (ui *WebUI) panicHandler(w http.ResponseWriter, r *http.Request, recovered any) {
	logging.FromContext(r.Context()).Error("panic while rendering page",
		slog.String("component", "webui"),
		slog.String("path", r.URL.Path),
		slog.String("panic", fmt.Sprint(recovered)),
		slog.String("stack", string(debug.Stack())))

	ui.render(w, http.StatusInternalServerError, "fallback.html", fallbackData{
		RetryURL: r.URL.RequestURI(),
		HomeURL:  "/ui/dashboard",
	})
}
