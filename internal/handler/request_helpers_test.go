package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
)

func TestDecodeAndValidateRequest(t *testing.T) {
	InitValidator()

	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantStatus int
		wantField  string
	}{
		{
			name: "valid",
			body: `{"fight_id": 4, "predicted_winner": "fighter1", "win_method": "ko_tko", "confidence": 3}`,
		},
		{
			name:       "malformed json",
			body:       `{"fight_id": `,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong type",
			body:       `{"fight_id": "four", "predicted_winner": "fighter1", "win_method": "ko_tko"}`,
			wantErr:    true,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "fight_id",
		},
		{
			name:       "bad enum",
			body:       `{"fight_id": 4, "predicted_winner": "draw", "win_method": "ko_tko"}`,
			wantErr:    true,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "predicted_winner",
		},
		{
			name:       "confidence out of range",
			body:       `{"fight_id": 4, "predicted_winner": "fighter2", "win_method": "dq", "confidence": 6}`,
			wantErr:    true,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "confidence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var in domain.PredictionInput
			err := DecodeAndValidateRequest(r, w, &in, "test")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, 4, in.FightID)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				resp := decodeBody[ValidationErrorResponse](t, w)
				assert.Contains(t, resp.Fields, tt.wantField)
			}
		})
	}
}

func TestDecodeAndValidateRequest_TooLarge(t *testing.T) {
	body := `{"fight_id": 4, "predicted_winner": "fighter1", "win_method": "decision"}`
	r := httptest.NewRequest(http.MethodPost, "/predictions", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 8)

	var in domain.PredictionInput
	require.Error(t, DecodeAndValidateRequest(r, w, &in, "test"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPathID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", ""} {
		t.Run("rejects "+raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, ok := pathID(w, newRequest(http.MethodGet, "/", "", idParam(raw)), ParamID)
			assert.False(t, ok)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	w := httptest.NewRecorder()
	id, ok := pathID(w, newRequest(http.MethodGet, "/", "", idParam("42")), ParamID)
	assert.True(t, ok)
	assert.Equal(t, 42, id)
}
