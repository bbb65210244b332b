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

const predictionBody = `{"fight_id": 12, "predicted_winner": "fighter2", "win_method": "submission", "confidence": 4}`

func TestHandleCreatePrediction(t *testing.T) {
	InitValidator()

	tests := []struct {
		name       string
		body       string
		userID     int
		setupMock  func(*mocks.MockPredictionService)
		wantStatus int
		wantDetail string
	}{
		{
			name:   "created",
			body:   predictionBody,
			userID: 8,
			setupMock: func(m *mocks.MockPredictionService) {
				m.On("Create", mock.Anything, 8, mock.MatchedBy(func(in *domain.PredictionInput) bool {
					return in.FightID == 12 && in.PredictedWinner == domain.PredictedFighter2 && *in.Confidence == 4
				})).Return(&domain.Prediction{ID: 1, UserID: 8, FightID: 12}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "anonymous",
			body:       predictionBody,
			setupMock:  func(m *mocks.MockPredictionService) {},
			wantStatus: http.StatusUnauthorized,
			wantDetail: ErrMsgNotAuthenticated,
		},
		{
			name:   "duplicate",
			body:   predictionBody,
			userID: 8,
			setupMock: func(m *mocks.MockPredictionService) {
				m.On("Create", mock.Anything, 8, mock.Anything).Return(nil, domain.ErrPredictionExists)
			},
			wantStatus: http.StatusConflict,
			wantDetail: domain.ErrMsgPredictionExists,
		},
		{
			name:   "fight already decided",
			body:   predictionBody,
			userID: 8,
			setupMock: func(m *mocks.MockPredictionService) {
				m.On("Create", mock.Anything, 8, mock.Anything).
					Return(nil, domain.ErrFightResolved)
			},
			wantStatus: http.StatusConflict,
			wantDetail: domain.ErrMsgFightResolved,
		},
		{
			name:       "invalid method never reaches service",
			body:       `{"fight_id": 12, "predicted_winner": "fighter2", "win_method": "split"}`,
			userID:     8,
			setupMock:  func(m *mocks.MockPredictionService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPredictionService(t)
			tt.setupMock(svc)

			req := newRequest(http.MethodPost, "/predictions", tt.body, nil)
			if tt.userID != 0 {
				req = asUser(req, tt.userID)
			}
			w := httptest.NewRecorder()
			HandleCreatePrediction(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeBody[ErrorResponse](t, w).Detail)
			}
		})
	}
}

func TestHandleListMyPredictions_EmptyIsArray(t *testing.T) {
	svc := mocks.NewMockPredictionService(t)
	svc.On("ListMine", mock.Anything, 8).Return(nil, nil)

	w := httptest.NewRecorder()
	HandleListMyPredictions(svc).ServeHTTP(w, asUser(newRequest(http.MethodGet, "/predictions/mine", "", nil), 8))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestHandleGetMyFightPrediction(t *testing.T) {
	svc := mocks.NewMockPredictionService(t)
	svc.On("GetMineForFight", mock.Anything, 8, 12).Return(nil, domain.ErrPredictionNotFound)

	w := httptest.NewRecorder()
	HandleGetMyFightPrediction(svc).ServeHTTP(w, asUser(newRequest(http.MethodGet, "/predictions/mine/fight/12", "", idParam("12")), 8))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrMsgPredictionNotFound, decodeBody[ErrorResponse](t, w).Detail)
}

func TestHandleListFightPredictions(t *testing.T) {
	svc := mocks.NewMockPredictionService(t)
	svc.On("ListForFight", mock.Anything, 12).Return([]domain.Prediction{{ID: 1}, {ID: 2}}, nil)

	w := httptest.NewRecorder()
	HandleListFightPredictions(svc).ServeHTTP(w, newRequest(http.MethodGet, "/predictions/fight/12", "", idParam("12")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]domain.Prediction](t, w), 2)
}

func TestHandleCreateScorecard(t *testing.T) {
	InitValidator()

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockScorecardService(t)
		svc.On("Create", mock.Anything, 8, mock.MatchedBy(func(in *domain.ScorecardInput) bool {
			return in.FightID == 12 && len(in.RoundScores) == 3
		})).Return(&domain.Scorecard{ID: 5, TotalFighter1: 29, TotalFighter2: 28, Winner: domain.ScorecardFighter1}, nil)

		body := `{"fight_id": 12, "round_scores": [
			{"round_number": 1, "fighter1_score": 10, "fighter2_score": 9},
			{"round_number": 2, "fighter1_score": 9, "fighter2_score": 10},
			{"round_number": 3, "fighter1_score": 10, "fighter2_score": 9}]}`
		w := httptest.NewRecorder()
		HandleCreateScorecard(svc).ServeHTTP(w, asUser(newRequest(http.MethodPost, "/scorecards", body, nil), 8))

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, domain.ScorecardFighter1, decodeBody[domain.Scorecard](t, w).Winner)
	})

	t.Run("score out of range names the round", func(t *testing.T) {
		svc := mocks.NewMockScorecardService(t)

		body := `{"fight_id": 12, "round_scores": [{"round_number": 1, "fighter1_score": 10, "fighter2_score": 6}]}`
		w := httptest.NewRecorder()
		HandleCreateScorecard(svc).ServeHTTP(w, asUser(newRequest(http.MethodPost, "/scorecards", body, nil), 8))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeBody[ValidationErrorResponse](t, w).Fields, "round_scores[0].fighter2_score")
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := mocks.NewMockScorecardService(t)
		svc.On("Create", mock.Anything, 8, mock.Anything).Return(nil, domain.ErrScorecardExists)

		body := `{"fight_id": 12, "round_scores": [{"round_number": 1, "fighter1_score": 10, "fighter2_score": 9}]}`
		w := httptest.NewRecorder()
		HandleCreateScorecard(svc).ServeHTTP(w, asUser(newRequest(http.MethodPost, "/scorecards", body, nil), 8))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domain.ErrMsgScorecardExists, decodeBody[ErrorResponse](t, w).Detail)
	})
}

func TestHandleGetMyFightScorecard(t *testing.T) {
	svc := mocks.NewMockScorecardService(t)
	svc.On("GetMineForFight", mock.Anything, 8, 12).Return(&domain.Scorecard{ID: 5, FightID: 12}, nil)

	w := httptest.NewRecorder()
	HandleGetMyFightScorecard(svc).ServeHTTP(w, asUser(newRequest(http.MethodGet, "/scorecards/mine/fight/12", "", idParam("12")), 8))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decodeBody[domain.Scorecard](t, w).FightID)
}

func TestHandleStats(t *testing.T) {
	st := mocks.NewMockStatsService(t)
	st.On("GetPredictionStats", mock.Anything, 12).Return(&domain.PredictionStats{TotalPredictions: 0}, nil)
	st.On("GetScorecardStats", mock.Anything, 12).Return(&domain.ScorecardStats{TotalScorecards: 2}, nil)

	w := httptest.NewRecorder()
	HandleGetPredictionStats(st).ServeHTTP(w, newRequest(http.MethodGet, "/predictions/fight/12/stats", "", idParam("12")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	HandleGetScorecardStats(st).ServeHTTP(w, newRequest(http.MethodGet, "/scorecards/fight/12/stats", "", idParam("12")))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeBody[domain.ScorecardStats](t, w).TotalScorecards)
}
