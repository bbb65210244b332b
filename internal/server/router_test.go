package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/auth"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/mocks"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

type routerFixture struct {
	router     http.Handler
	tokens     *auth.TokenProvider
	catalog    *mocks.MockCatalogService
	prediction *mocks.MockPredictionService
	user       *mocks.MockUserService
	resolution *mocks.MockResolutionService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	f := &routerFixture{
		tokens:     auth.NewTokenProvider("router-secret", time.Hour),
		catalog:    mocks.NewMockCatalogService(t),
		prediction: mocks.NewMockPredictionService(t),
		user:       mocks.NewMockUserService(t),
		resolution: mocks.NewMockResolutionService(t),
	}
	sessions := auth.NewAdminSessions(auth.AdminConfig{Username: "admin", Password: "pw"})
	f.router = NewRouter(Options{
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		AdminSessionTTL:    time.Hour,
	}, stubPool{}, Services{
		Catalog:    f.catalog,
		Prediction: f.prediction,
		Scorecard:  mocks.NewMockScorecardService(t),
		Stats:      mocks.NewMockStatsService(t),
		User:       f.user,
		Resolution: f.resolution,
	}, f.tokens, sessions)
	return f
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	rec := f.do(httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"pw"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestRouter_Operational(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := f.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.catalog.On("ListEvents", mock.Anything, domain.EventFilter{UpcomingOnly: true}).Return([]domain.Event{}, nil)
	f.catalog.On("GetFight", mock.Anything, 5).Return(&domain.Fight{ID: 5}, nil)

	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/events", nil)).Code)
	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/fights/5", nil)).Code)
	assert.Equal(t, http.StatusNotFound, f.do(httptest.NewRequest(http.MethodGet, "/nowhere", nil)).Code)
}

func TestRouter_Logout(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodPost, "/auth/logout", nil)).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(httptest.NewRequest(http.MethodGet, "/auth/logout", nil)).Code)
}

func TestRouter_UserRoutesNeedBearer(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/predictions/mine", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())

	bad := httptest.NewRequest(http.MethodGet, "/predictions/mine", nil)
	bad.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, f.do(bad).Code)

	token, err := f.tokens.IssueUserToken(&domain.User{ID: 21, TelegramID: 777})
	require.NoError(t, err)
	f.prediction.On("ListMine", mock.Anything, 21).Return([]domain.Prediction{{ID: 1, UserID: 21}}, nil)
	f.user.On("GetByID", mock.Anything, 21).Return(&domain.User{ID: 21}, nil)

	req := httptest.NewRequest(http.MethodGet, "/predictions/mine", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, f.do(req).Code)

	me := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	me.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, f.do(me).Code)
}

func TestRouter_AdminRoutesNeedSession(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodGet, "/admin/me", nil)).Code)

	cookie := f.adminCookie(t)
	f.resolution.On("GetResult", mock.Anything, 9).Return(&domain.FightResult{FightID: 9, Winner: domain.WinnerDraw}, nil)

	me := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	me.AddCookie(cookie)
	rec := f.do(me)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":true}`, rec.Body.String())

	result := httptest.NewRequest(http.MethodGet, "/admin/fights/9/result", nil)
	result.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, f.do(result).Code)

	logout := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	logout.AddCookie(cookie)
	assert.Equal(t, http.StatusOK, f.do(logout).Code)

	again := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	again.AddCookie(cookie)
	assert.Equal(t, http.StatusUnauthorized, f.do(again).Code)
}

func TestRouter_LoginRateLimited(t *testing.T) {
	f := newRouterFixture(t)

	var last int
	for i := 0; i <= LoginBurst; i++ {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"guess"}`))
		req.RemoteAddr = "198.51.100.23:1000"
		last = f.do(req).Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestRouter_CORSPreflight(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/predictions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := f.do(req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	other := httptest.NewRequest(http.MethodOptions, "/predictions", nil)
	other.Header.Set("Origin", "https://evil.example")
	other.Header.Set("Access-Control-Request-Method", http.MethodPost)
	assert.Empty(t, f.do(other).Header().Get("Access-Control-Allow-Origin"))
}
