package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}
	return nil
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, map[string]string{"error": message})
}

// writeWrappedError logs err with context and answers with the status its
// sentinel maps to. fallback is used when no sentinel matches.
func writeWrappedError(w http.ResponseWriter, log *zap.SugaredLogger, err error, msg string, fallback int) {
	status := statusFor(err, fallback)
	if status >= 500 {
		log.Errorw(msg, logger.FieldError, err, logger.FieldStatus, status)
	} else {
		log.Debugw(msg, logger.FieldError, err, logger.FieldStatus, status)
	}
	writeError(w, status, fmt.Sprintf("%s: %v", msg, err))
}

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error, fallback int) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsInvalidRequestError(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrLocationNotFound), errors.Is(err, errors.ErrNoCoordinates):
		return http.StatusUnprocessableEntity
	case errors.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.IsServiceUnavailableError(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, errors.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return fallback
	}
}

// readJSON reads and decodes a JSON request body
func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return err
	}
	return nil
}
