package common

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vidtube/internal/logging"
)

// APIResponse is the envelope used by every endpoint, success or failure.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// WriteJSON marshals the envelope before writing the status, so a payload
// that cannot be encoded becomes a 500 envelope instead of an empty body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any, message string) {
	body, err := json.Marshal(APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
	if err != nil {
		logging.FromContext(context.Background()).WithError(err).Error("failed to encode response")
		statusCode = http.StatusInternalServerError
		body, _ = json.Marshal(APIResponse{
			StatusCode: statusCode,
			Message:    "Internal server error",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logging.FromContext(context.Background()).WithError(err).Warn("failed to write response")
	}
}

// WriteError renders err in the envelope. 5xx responses are logged with the
// request logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).WithError(err).Error("request failed")
	}
	WriteJSON(w, code, nil, ErrorMessage(err))
}

// DecodeJSON reads a JSON body into dst and runs struct validation on it.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return InvalidArgument("request body is required")
		}
		return InvalidArgument("malformed JSON body")
	}
	return ValidateStruct(dst)
}
