package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"campusai-backend/internal/logging"
	"campusai-backend/internal/models"
	"campusai-backend/internal/services"
)

const genericErrorMessage = "Internal Server Error"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     message,
		RequestID: r.Header.Get("X-Request-ID"),
	}
}

func errorRespWithFields(message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     message,
		Fields:    fields,
		RequestID: r.Header.Get("X-Request-ID"),
	}
}

// handleServiceError maps service errors onto the two client-visible outcomes.
// Anything that is not a validation error is a generic 500; the cause is only logged.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields(verr.Message, verr.Fields, r))
		return
	}

	logging.FromContext(r.Context()).
		WithError(err).
		WithField("path", r.URL.Path).
		Error("Error in AI handler")
	writeJSON(w, http.StatusInternalServerError, errorResp(genericErrorMessage, r))
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads exactly one JSON value from the request body into dst. An
// empty body decodes as an empty object so that required-field checks produce
// the usual messages.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
