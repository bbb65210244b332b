package handler

import (
	"context"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/scorecard"
)

// HandleCreateScorecard submits the caller's round-by-round card for an upcoming fight
// @Summary Create scorecard
// @Tags scorecards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.ScorecardInput true "Round scores"
// @Success 201 {object} domain.Scorecard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /scorecards [post]
func HandleCreateScorecard(svc scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		writeAction(w, r, "Create scorecard", http.StatusCreated,
			func(ctx context.Context, in *domain.ScorecardInput) (*domain.Scorecard, error) {
				return svc.Create(ctx, userID, in)
			})
	}
}

// HandleListFightScorecards lists every card submitted for a fight
// @Summary List scorecards for a fight
// @Tags scorecards
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {array} domain.Scorecard
// @Router /scorecards/fight/{id} [get]
func HandleListFightScorecards(svc scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "List fight scorecards", func(ctx context.Context, id int) ([]domain.Scorecard, error) {
			cards, err := svc.ListForFight(ctx, id)
			if cards == nil && err == nil {
				cards = []domain.Scorecard{}
			}
			return cards, err
		})
	}
}

// HandleListMyScorecards lists the caller's scorecards, newest first
// @Summary List my scorecards
// @Tags scorecards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Scorecard
// @Failure 401 {object} ErrorResponse
// @Router /scorecards/mine [get]
func HandleListMyScorecards(svc scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		cards, err := svc.ListMine(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List my scorecards", err)
			return
		}
		if cards == nil {
			cards = []domain.Scorecard{}
		}
		respondJSON(w, http.StatusOK, cards)
	}
}

// HandleGetMyFightScorecard returns the caller's scorecard for one fight
// @Summary Get my scorecard for a fight
// @Tags scorecards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.Scorecard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /scorecards/mine/fight/{id} [get]
func HandleGetMyFightScorecard(svc scorecard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		readByID(w, r, "Get my scorecard", func(ctx context.Context, fightID int) (*domain.Scorecard, error) {
			return svc.GetMineForFight(ctx, userID, fightID)
		})
	}
}
