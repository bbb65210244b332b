package handler

import (
	"net/http"

	"github.com/fightpicks/fightpicks/internal/stats"
)

// HandleGetPredictionStats aggregates the community picks for a fight
// @Summary Prediction statistics for a fight
// @Tags predictions
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.PredictionStats
// @Router /predictions/fight/{id}/stats [get]
func HandleGetPredictionStats(st stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get prediction stats", st.GetPredictionStats)
	}
}

// HandleGetScorecardStats aggregates the community scorecards for a fight
// @Summary Scorecard statistics for a fight
// @Tags scorecards
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.ScorecardStats
// @Router /scorecards/fight/{id}/stats [get]
func HandleGetScorecardStats(st stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get scorecard stats", st.GetScorecardStats)
	}
}
