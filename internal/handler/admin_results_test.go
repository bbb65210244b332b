package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/mocks"
)

const decisionResult = `{
	"winner": "fighter1",
	"method": "decision",
	"official_scorecards": [
		{"judge_name": "Sal D'Amato", "round_scores": [
			{"round_number": 1, "fighter1_score": 10, "fighter2_score": 9},
			{"round_number": 2, "fighter1_score": 10, "fighter2_score": 9},
			{"round_number": 3, "fighter1_score": 9, "fighter2_score": 10}]}
	]
}`

func TestAdminResultHandler(t *testing.T) {
	InitValidator()

	t.Run("record", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)
		svc.On("RecordResult", mock.Anything, 15, mock.MatchedBy(func(in *domain.FightResultInput) bool {
			return in.Method == domain.MethodDecision && len(in.OfficialScorecards) == 1 &&
				len(in.OfficialScorecards[0].RoundScores) == 3
		})).Return(&domain.FightResult{ID: 2, FightID: 15, IsResolved: true}, nil)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleRecordResult(w, newRequest(http.MethodPost, "/admin/fights/15/result", decisionResult, idParam("15")))

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.True(t, decodeBody[domain.FightResult](t, w).IsResolved)
	})

	t.Run("record twice", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)
		svc.On("RecordResult", mock.Anything, 15, mock.Anything).Return(nil, domain.ErrResultExists)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleRecordResult(w, newRequest(http.MethodPost, "/admin/fights/15/result", decisionResult, idParam("15")))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domain.ErrMsgResultExists, decodeBody[ErrorResponse](t, w).Detail)
	})

	t.Run("finish round beyond schedule", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)
		svc.On("UpdateResult", mock.Anything, 15, mock.Anything).
			Return(nil, domain.ErrValidation)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleUpdateResult(w, newRequest(http.MethodPut, "/admin/fights/15/result",
			`{"winner": "fighter2", "method": "ko_tko", "finish_round": 4, "finish_time": "1:02"}`, idParam("15")))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad finish time", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleUpdateResult(w, newRequest(http.MethodPut, "/admin/fights/15/result",
			`{"winner": "fighter2", "method": "ko_tko", "finish_time": "one minute"}`, idParam("15")))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, FieldMsgFinish, decodeBody[ValidationErrorResponse](t, w).Fields["finish_time"])
	})

	t.Run("get missing", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)
		svc.On("GetResult", mock.Anything, 15).Return(nil, domain.ErrResultNotFound)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleGetResult(w, newRequest(http.MethodGet, "/admin/fights/15/result", "", idParam("15")))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.ErrMsgResultNotFound, decodeBody[ErrorResponse](t, w).Detail)
	})

	t.Run("delete", func(t *testing.T) {
		svc := mocks.NewMockResolutionService(t)
		svc.On("DeleteResult", mock.Anything, 15).Return(nil)

		w := httptest.NewRecorder()
		NewAdminResultHandler(svc).HandleDeleteResult(w, newRequest(http.MethodDelete, "/admin/fights/15/result", "", idParam("15")))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
