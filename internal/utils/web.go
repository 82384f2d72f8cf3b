package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/goaltrack-dev/goaltrack/internal/errors"
	"github.com/goaltrack-dev/goaltrack/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// WriteErrorAndStatusCode translates a domain error into the API's
// `{"message": ...}` error body. Errors without an explicit status code
// are unexpected: they are logged in full and surfaced as a generic 500
// so internals don't leak to clients.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		WriteMessage(w, e.StatusCode, e.Message)
		return
	}
	logger.Log.Error("unexpected error", "error", err)
	WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}

// WriteMessage writes a `{"message": ...}` JSON body with the given status.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Message: message})
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}
