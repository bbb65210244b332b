package handler

import (
	"fmt"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/domain"
)

// MaxFighterFightsLimit caps the fighter history page
const MaxFighterFightsLimit = 50

// HandleGetFighter returns a fighter profile
// @Summary Get fighter
// @Tags fighters
// @Produce json
// @Param id path int true "Fighter ID"
// @Success 200 {object} domain.Fighter
// @Failure 404 {object} ErrorResponse
// @Router /fighters/{id} [get]
func HandleGetFighter(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get fighter", svc.GetFighter)
	}
}

// HandleListFighterFights returns a fighter's recent bouts, newest first
// @Summary List fighter fights
// @Tags fighters
// @Produce json
// @Param id path int true "Fighter ID"
// @Param limit query int false "Maximum fights" default(10)
// @Success 200 {array} domain.Fight
// @Failure 404 {object} ErrorResponse
// @Router /fighters/{id}/fights [get]
func HandleListFighterFights(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		limit, ok := queryInt(w, r, QueryLimit, domain.DefaultFighterFightsLimit)
		if !ok {
			return
		}
		if limit < 1 || limit > MaxFighterFightsLimit {
			respondValidation(w, ErrMsgValidationFailed, map[string]string{
				QueryLimit: fmt.Sprintf("Must be between 1 and %d", MaxFighterFightsLimit),
			})
			return
		}

		fights, err := svc.ListFighterFights(r.Context(), id, limit)
		if err != nil {
			respondServiceError(w, r, "List fighter fights", err)
			return
		}
		if fights == nil {
			fights = []domain.Fight{}
		}
		respondJSON(w, http.StatusOK, fights)
	}
}
