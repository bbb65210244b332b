package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/domain"
)

// HandleListEvents lists events with their headline bout
// @Summary List events
// @Tags events
// @Produce json
// @Param upcoming_only query bool false "Only upcoming events" default(true)
// @Param organization query string false "Filter by organization"
// @Success 200 {array} domain.Event
// @Router /events [get]
func HandleListEvents(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upcoming, ok := queryBool(w, r, QueryUpcomingOnly, true)
		if !ok {
			return
		}
		listEvents(w, r, svc, domain.EventFilter{
			UpcomingOnly: upcoming,
			Organization: r.URL.Query().Get(QueryOrganization),
		})
	}
}

func listEvents(w http.ResponseWriter, r *http.Request, svc catalog.Service, filter domain.EventFilter) {
	events, err := svc.ListEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "List events", err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

// HandleGetEvent returns an event's full card
// @Summary Get event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} domain.EventDetail
// @Failure 404 {object} ErrorResponse
// @Router /events/{slug} [get]
func HandleGetEvent(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := svc.GetEventBySlug(r.Context(), chi.URLParam(r, ParamSlug))
		if err != nil {
			respondServiceError(w, r, "Get event", err)
			return
		}
		if detail.Fights == nil {
			detail.Fights = []domain.Fight{}
		}
		respondJSON(w, http.StatusOK, detail)
	}
}
