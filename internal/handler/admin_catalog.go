package handler

import (
	"fmt"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/domain"
)

// AdminCatalogHandler serves fighter, event and fight management
type AdminCatalogHandler struct {
	catalog catalog.Service
}

// NewAdminCatalogHandler creates a new admin catalog handler
func NewAdminCatalogHandler(svc catalog.Service) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: svc}
}

// HandleListFighters lists fighters by name
// @Summary List fighters
// @Tags admin
// @Produce json
// @Param search query string false "Name substring"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.Fighter
// @Router /admin/fighters [get]
func (h *AdminCatalogHandler) HandleListFighters(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(w, r, QuerySkip, 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, QueryLimit, domain.DefaultAdminListLimit)
	if !ok {
		return
	}
	if skip < 0 {
		respondValidation(w, ErrMsgValidationFailed, map[string]string{QuerySkip: fmt.Sprintf(FieldMsgMin, "0")})
		return
	}

	fighters, err := h.catalog.ListFighters(r.Context(), domain.FighterFilter{
		Search: r.URL.Query().Get(QuerySearch),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		respondServiceError(w, r, "List fighters", err)
		return
	}
	if fighters == nil {
		fighters = []domain.Fighter{}
	}
	respondJSON(w, http.StatusOK, fighters)
}

// HandleGetFighter returns one fighter
// @Summary Get fighter (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Fighter ID"
// @Success 200 {object} domain.Fighter
// @Router /admin/fighters/{id} [get]
func (h *AdminCatalogHandler) HandleGetFighter(w http.ResponseWriter, r *http.Request) {
	readByID(w, r, "Get fighter", h.catalog.GetFighter)
}

// HandleCreateFighter adds a fighter
// @Summary Create fighter
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.FighterInput true "Fighter"
// @Success 201 {object} domain.Fighter
// @Router /admin/fighters [post]
func (h *AdminCatalogHandler) HandleCreateFighter(w http.ResponseWriter, r *http.Request) {
	writeAction(w, r, "Create fighter", http.StatusCreated, h.catalog.CreateFighter)
}

// HandleUpdateFighter replaces a fighter's fields
// @Summary Update fighter
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Fighter ID"
// @Param request body domain.FighterInput true "Fighter"
// @Success 200 {object} domain.Fighter
// @Router /admin/fighters/{id} [put]
func (h *AdminCatalogHandler) HandleUpdateFighter(w http.ResponseWriter, r *http.Request) {
	writeActionByID(w, r, "Update fighter", http.StatusOK, h.catalog.UpdateFighter)
}

// HandleDeleteFighter removes a fighter
// @Summary Delete fighter
// @Tags admin
// @Produce json
// @Param id path int true "Fighter ID"
// @Success 200 {object} MessageResponse
// @Router /admin/fighters/{id} [delete]
func (h *AdminCatalogHandler) HandleDeleteFighter(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, "Delete fighter", h.catalog.DeleteFighter)
}

// HandleListEvents lists every event, optionally narrowed by organization
// @Summary List events (admin)
// @Tags admin
// @Produce json
// @Param upcoming_only query bool false "Only upcoming events" default(false)
// @Param organization query string false "Organization"
// @Success 200 {array} domain.Event
// @Router /admin/events [get]
func (h *AdminCatalogHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	upcoming, ok := queryBool(w, r, QueryUpcomingOnly, false)
	if !ok {
		return
	}
	listEvents(w, r, h.catalog, domain.EventFilter{
		UpcomingOnly: upcoming,
		Organization: r.URL.Query().Get(QueryOrganization),
	})
}

// HandleGetEvent returns one event
// @Summary Get event (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Router /admin/events/{id} [get]
func (h *AdminCatalogHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	readByID(w, r, "Get event", h.catalog.GetEvent)
}

// HandleCreateEvent adds an event
// @Summary Create event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.EventInput true "Event"
// @Success 201 {object} domain.Event
// @Failure 409 {object} ErrorResponse
// @Router /admin/events [post]
func (h *AdminCatalogHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	writeAction(w, r, "Create event", http.StatusCreated, h.catalog.CreateEvent)
}

// HandleUpdateEvent replaces an event's fields
// @Summary Update event
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body domain.EventInput true "Event"
// @Success 200 {object} domain.Event
// @Router /admin/events/{id} [put]
func (h *AdminCatalogHandler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	writeActionByID(w, r, "Update event", http.StatusOK, h.catalog.UpdateEvent)
}

// HandleDeleteEvent removes an event and its card
// @Summary Delete event
// @Tags admin
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} MessageResponse
// @Router /admin/events/{id} [delete]
func (h *AdminCatalogHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, "Delete event", h.catalog.DeleteEvent)
}

// HandleListOrganizations lists promotions with their event counts
// @Summary List organizations
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Organization
// @Router /admin/organizations [get]
func (h *AdminCatalogHandler) HandleListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.catalog.ListOrganizations(r.Context())
	if err != nil {
		respondServiceError(w, r, "List organizations", err)
		return
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}
	respondJSON(w, http.StatusOK, orgs)
}

// HandleListFights lists fights, optionally for one event
// @Summary List fights (admin)
// @Tags admin
// @Produce json
// @Param event_id query int false "Event ID"
// @Success 200 {array} domain.Fight
// @Router /admin/fights [get]
func (h *AdminCatalogHandler) HandleListFights(w http.ResponseWriter, r *http.Request) {
	var eventID *int
	if r.URL.Query().Get(QueryEventID) != "" {
		id, ok := queryInt(w, r, QueryEventID, 0)
		if !ok {
			return
		}
		eventID = &id
	}

	fights, err := h.catalog.ListFights(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, "List fights", err)
		return
	}
	if fights == nil {
		fights = []domain.Fight{}
	}
	respondJSON(w, http.StatusOK, fights)
}

// HandleGetFight returns one fight
// @Summary Get fight (admin)
// @Tags admin
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} domain.Fight
// @Router /admin/fights/{id} [get]
func (h *AdminCatalogHandler) HandleGetFight(w http.ResponseWriter, r *http.Request) {
	readByID(w, r, "Get fight", h.catalog.GetFight)
}

// HandleCreateFight adds a bout to an event card
// @Summary Create fight
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.FightInput true "Fight"
// @Success 201 {object} domain.Fight
// @Router /admin/fights [post]
func (h *AdminCatalogHandler) HandleCreateFight(w http.ResponseWriter, r *http.Request) {
	writeAction(w, r, "Create fight", http.StatusCreated, h.catalog.CreateFight)
}

// HandleUpdateFight replaces a bout's fields
// @Summary Update fight
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Fight ID"
// @Param request body domain.FightInput true "Fight"
// @Success 200 {object} domain.Fight
// @Router /admin/fights/{id} [put]
func (h *AdminCatalogHandler) HandleUpdateFight(w http.ResponseWriter, r *http.Request) {
	writeActionByID(w, r, "Update fight", http.StatusOK, h.catalog.UpdateFight)
}

// HandleDeleteFight removes a bout with its picks and result
// @Summary Delete fight
// @Tags admin
// @Produce json
// @Param id path int true "Fight ID"
// @Success 200 {object} MessageResponse
// @Router /admin/fights/{id} [delete]
func (h *AdminCatalogHandler) HandleDeleteFight(w http.ResponseWriter, r *http.Request) {
	deleteByID(w, r, "Delete fight", h.catalog.DeleteFight)
}
