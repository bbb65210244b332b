package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse adds per-field messages to a 422 reply
type ValidationErrorResponse struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a bare acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON encodes payload before touching the response so an encoding
// failure can still be reported as a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

func respondValidation(w http.ResponseWriter, detail string, fields map[string]string) {
	respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: detail, Fields: fields})
}

// respondServiceError maps a service error to a status code and a client-safe detail.
// Unexpected errors are logged with their cause and reported generically.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, detail := mapServiceError(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(LogMsgUnhandledError, "operation", op, "error", err)
	}
	if status == http.StatusUnprocessableEntity {
		respondValidation(w, detail, nil)
		return
	}
	respondError(w, status, detail)
}

func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, validationDetail(err)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, kindMessage(err, domain.ErrNotFound)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, kindMessage(err, domain.ErrConflict)
	case errors.Is(err, domain.ErrTelegramAuthExpired):
		return http.StatusUnauthorized, ErrMsgTelegramExpired
	case errors.Is(err, domain.ErrInvalidTelegramHash):
		return http.StatusUnauthorized, ErrMsgInvalidTelegram
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentials
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgNotAuthenticated
	}
	return http.StatusInternalServerError, ErrMsgInternalServerError
}

// validationDetail strips the generic "validation failed: " prefix
func validationDetail(err error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, domain.ErrMsgValidation+": "); ok {
		return detail
	}
	return msg
}

// kindMessage returns the most specific domain message in the chain, such as
// "fight not found", without any wrapping context added on the way up.
func kindMessage(err error, kind error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if errors.Is(e, kind) && errors.Unwrap(e) == kind {
			return e.Error()
		}
	}
	return kind.Error()
}
