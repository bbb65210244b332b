package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/fightpicks/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// Malformed JSON gets a 400; a well-formed body that fails validation gets a 422
// with per-field messages.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req domain.PredictionInput
//	if err := DecodeAndValidateRequest(r, w, &req, "Create prediction"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondValidation(w, ErrMsgValidationFailed, map[string]string{typeErr.Field: FieldMsgInvalid})
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(LogMsgRequestInvalid, "action", actionName, "error", err)
		respondValidation(w, ErrMsgValidationFailed, FormatValidationError(err))
		return err
	}

	return nil
}

// pathID parses a positive integer URL parameter, answering 422 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		respondValidation(w, ErrMsgValidationFailed, map[string]string{name: fmt.Sprintf(ErrMsgInvalidPathParam, name)})
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter
func queryInt(w http.ResponseWriter, r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondValidation(w, ErrMsgValidationFailed, map[string]string{name: fmt.Sprintf(ErrMsgInvalidQueryParam, name)})
		return 0, false
	}
	return v, true
}

// queryBool reads an optional boolean query parameter
func queryBool(w http.ResponseWriter, r *http.Request, name string, defaultValue bool) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respondValidation(w, ErrMsgValidationFailed, map[string]string{name: fmt.Sprintf(ErrMsgInvalidQueryParam, name)})
		return false, false
	}
	return v, true
}
