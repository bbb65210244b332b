package handler

import (
	"net/http"

	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/stats"
)

// HandleGetFight returns a fight with fighters and result
// @Summary Get fight
// @Tags fights
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.Fight
// @Failure 404 {object} ErrorResponse
// @Router /fights/{id} [get]
func HandleGetFight(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get fight", svc.GetFight)
	}
}

// HandleGetFightStats returns a fight together with its pick statistics
// @Summary Get fight statistics
// @Tags fights
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.FightStats
// @Failure 404 {object} ErrorResponse
// @Router /fights/{id}/stats [get]
func HandleGetFightStats(cat catalog.Service, st stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, ParamID)
		if !ok {
			return
		}
		fight, err := cat.GetFight(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get fight stats", err)
			return
		}
		res, err := st.GetFightStats(r.Context(), fight)
		if err != nil {
			respondServiceError(w, r, "Get fight stats", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
