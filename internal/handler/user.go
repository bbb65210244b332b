package handler

import (
	"net/http"

	"github.com/fightpicks/fightpicks/internal/stats"
	"github.com/fightpicks/fightpicks/internal/user"
)

// HandleGetUser returns a public profile
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get user", svc.GetByID)
	}
}

// HandleGetMe returns the authenticated user
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func HandleGetMe(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		u, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get me", err)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGetUserStats returns a user's accuracy report
// @Summary Get user statistics
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/stats [get]
func HandleGetUserStats(st stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readByID(w, r, "Get user stats", st.GetUserStats)
	}
}

// HandleGetMyStats returns the authenticated user's accuracy report
// @Summary Get my statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserStats
// @Failure 401 {object} ErrorResponse
// @Router /users/me/stats [get]
func HandleGetMyStats(st stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		res, err := st.GetUserStats(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get my stats", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
