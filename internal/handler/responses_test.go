package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fightpicks/fightpicks/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation keeps detail only",
			err:        fmt.Errorf("%w: %s", domain.ErrValidation, "finish_round must be between 1 and 3"),
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "finish_round must be between 1 and 3",
		},
		{
			name:       "specific not found",
			err:        fmt.Errorf("load fight: %w", domain.ErrFightNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: domain.ErrMsgFightNotFound,
		},
		{
			name:       "generic not found",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: domain.ErrMsgNotFound,
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("insert: %w", domain.ErrPredictionExists),
			wantStatus: http.StatusConflict,
			wantDetail: domain.ErrMsgPredictionExists,
		},
		{
			name:       "telegram expired",
			err:        domain.ErrTelegramAuthExpired,
			wantStatus: http.StatusUnauthorized,
			wantDetail: ErrMsgTelegramExpired,
		},
		{
			name:       "telegram hash",
			err:        fmt.Errorf("verify: %w", domain.ErrInvalidTelegramHash),
			wantStatus: http.StatusUnauthorized,
			wantDetail: ErrMsgInvalidTelegram,
		},
		{
			name:       "unexpected error hides cause",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: ErrMsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestRespondServiceError_ValidationShape(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(w, r, "test", fmt.Errorf("%w: %s", domain.ErrValidation, "bad round"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"bad round"}`, w.Body.String())
}
