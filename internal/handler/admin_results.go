package handler

import (
	"net/http"

	"github.com/fightpicks/fightpicks/internal/resolution"
)

// AdminResultHandler records official fight results. Every write re-grades
// the fight's predictions and scorecards.
type AdminResultHandler struct {
	resolution resolution.Service
}

// NewAdminResultHandler creates a new admin result handler
func NewAdminResultHandler(svc resolution.Service) *AdminResultHandler {
	return &AdminResultHandler{resolution: svc}
}

// HandleGetResult returns the recorded result with official scorecards
// @Summary Get fight result
// @Tags admin
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.FightResult
// @Failure 404 {object} ErrorResponse
// @Router /admin/fights/{id}/result [get]
func (h *AdminResultHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	readByID(w, r, "Get result", h.resolution.GetResult)
}

// HandleRecordResult records a result and resolves the fight
// @Summary Record fight result
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Fight ID"
// @Param request body domain.FightResultInput true "Result"
// @Success 201 {object} domain.FightResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /admin/fights/{id}/result [post]
func (h *AdminResultHandler) HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	writeActionByID(w, r, "Record result", http.StatusCreated, h.resolution.RecordResult)
}

// HandleUpdateResult replaces a result and re-resolves the fight
// @Summary Update fight result
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Fight ID"
// @Param request body domain.FightResultInput true "Result"
// @Success 200 {object} domain.FightResult
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /admin/fights/{id}/result [put]
func (h *AdminResultHandler) HandleUpdateResult(w http.ResponseWriter, r *http.Request) {
	writeActionByID(w, r, "Update result", http.StatusOK, h.resolution.UpdateResult)
}

// HandleDeleteResult removes a result and clears every grade for the fight
// @Summary Delete fight result
// @Tags admin
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/fights/{id}/result [delete]
func (h *AdminResultHandler) HandleDeleteResult(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, "Delete result", h.resolution.DeleteResult)
}
