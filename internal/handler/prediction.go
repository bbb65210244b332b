package handler

import (
	"context"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/auth"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/prediction"
)

// HandleCreatePrediction submits the caller's pick for an upcoming fight
// @Summary Create prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.PredictionInput true "Pick"
// @Success 201 {object} domain.Prediction
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /predictions [post]
func HandleCreatePrediction(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		writeAction(w, r, "Create prediction", http.StatusCreated,
			func(ctx context.Context, in *domain.PredictionInput) (*domain.Prediction, error) {
				return svc.Create(ctx, userID, in)
			})
	}
}

// HandleListFightPredictions lists every pick made for a fight
// @Summary List predictions for a fight
// @Tags predictions
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {array} domain.Prediction
// @Router /predictions/fight/{id} [get]
func HandleListFightPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "List fight predictions", func(ctx context.Context, id int) ([]domain.Prediction, error) {
			preds, err := svc.ListForFight(ctx, id)
			if preds == nil && err == nil {
				preds = []domain.Prediction{}
			}
			return preds, err
		})
	}
}

// HandleListMyPredictions lists the caller's picks, newest first
// @Summary List my predictions
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Prediction
// @Failure 401 {object} ErrorResponse
// @Router /predictions/mine [get]
func HandleListMyPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		preds, err := svc.ListMine(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List my predictions", err)
			return
		}
		if preds == nil {
			preds = []domain.Prediction{}
		}
		respondJSON(w, http.StatusOK, preds)
	}
}

// HandleGetMyFightPrediction returns the caller's pick for one fight
// @Summary Get my prediction for a fight
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.Prediction
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions/mine/fight/{id} [get]
func HandleGetMyFightPrediction(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		readByID(w, r, "Get my prediction", func(ctx context.Context, fightID int) (*domain.Prediction, error) {
			return svc.GetMineForFight(ctx, userID, fightID)
		})
	}
}

// requireUserID reads the authenticated user set by auth.RequireUser.
func requireUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgNotAuthenticated)
		return 0, false
	}
	return userID, true
}
