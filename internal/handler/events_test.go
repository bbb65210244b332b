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

func TestHandleListEvents(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(*mocks.MockCatalogService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "defaults to upcoming",
			target: "/events",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("ListEvents", mock.Anything, domain.EventFilter{UpcomingOnly: true}).
					Return([]domain.Event{{ID: 1, Name: "UFC 300", Slug: "ufc-300", IsUpcoming: true}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "past events of one organization",
			target: "/events?upcoming_only=false&organization=PFL",
			setupMock: func(m *mocks.MockCatalogService) {
				m.On("ListEvents", mock.Anything, domain.EventFilter{Organization: "PFL"}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]\n",
		},
		{
			name:       "bad flag",
			target:     "/events?upcoming_only=maybe",
			setupMock:  func(m *mocks.MockCatalogService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			HandleListEvents(svc).ServeHTTP(w, newRequest(http.MethodGet, tt.target, "", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandleGetEvent(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("GetEventBySlug", mock.Anything, "ufc-300").
			Return(&domain.EventDetail{Event: domain.Event{ID: 7, Slug: "ufc-300"}}, nil)

		w := httptest.NewRecorder()
		HandleGetEvent(svc).ServeHTTP(w, newRequest(http.MethodGet, "/events/ufc-300", "", map[string]string{ParamSlug: "ufc-300"}))

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.EventDetail](t, w)
		assert.Equal(t, 7, got.ID)
		assert.NotNil(t, got.Fights)
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewMockCatalogService(t)
		svc.On("GetEventBySlug", mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

		w := httptest.NewRecorder()
		HandleGetEvent(svc).ServeHTTP(w, newRequest(http.MethodGet, "/events/nope", "", map[string]string{ParamSlug: "nope"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domain.ErrMsgEventNotFound, decodeBody[ErrorResponse](t, w).Detail)
	})
}
