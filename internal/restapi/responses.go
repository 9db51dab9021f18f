package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"nexus.regintel.org/internal/logging"
	"nexus.regintel.org/internal/models"
)

// maxBodyBytes bounds the JSON bodies the write endpoints accept.
const maxBodyBytes = 1 << 20

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, status int, response models.ResponseModel) {
	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
			slog.String("component", "restapi"),
			slog.String("path", r.URL.Path))
	}
}

func (api *RestAPI) sendData(w http.ResponseWriter, r *http.Request, data any) {
	api.sendResponse(w, r, http.StatusOK, models.NewSuccessResponse(data))
}

func (api *RestAPI) sendCreated(w http.ResponseWriter, r *http.Request, data any) {
	api.sendResponse(w, r, http.StatusCreated, models.NewSuccessResponse(data))
}

// sendNotFound answers 404 with text such as "Feed not found".
func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request, text string) {
	api.sendResponse(w, r, http.StatusNotFound, models.NewErrorResponse(text))
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, status int, text string) {
	api.sendResponse(w, r, status, models.NewErrorResponse(text))
}

func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusUnauthorized, "permission denied")
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	api.sendResponse(w, r, http.StatusBadRequest, models.NewValidationErrorResponse(fieldErrors))
}

func (api *RestAPI) fieldErrorResponse(w http.ResponseWriter, r *http.Request, field string, err error) {
	api.validationErrorResponse(w, r, map[string][]string{field: {err.Error()}})
}

// serverErrorResponse logs err and answers 500 with text, e.g. "Failed to fetch feeds".
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error, text string) {
	logging.LogError(logging.FromContext(r.Context()), text, err,
		slog.String("component", "restapi"),
		slog.String("operation", r.Method+" "+r.URL.Path))
	api.sendError(w, r, http.StatusInternalServerError, text)
}

// decodeJSONBody reads a JSON body into dst. An empty body leaves dst unchanged.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("body must not be larger than %d bytes", maxErr.Limit)
	}
	return fmt.Errorf("body contains invalid JSON: %w", err)
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
