package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fightpicks/fightpicks/internal/auth"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/user"
)

// AdminLoginRequest carries the admin form credentials
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// AdminStatusResponse answers GET /admin/me
type AdminStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// AdminSessionStore is the subset of auth.AdminSessions the handlers need.
type AdminSessionStore interface {
	Login(username, password string) (string, error)
	Logout(token string)
}

// HandleTelegramLogin verifies a Telegram widget payload and returns a bearer token
// @Summary Log in with Telegram
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.TelegramAuthData true "Telegram widget payload"
// @Success 200 {object} domain.TokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /auth/telegram [post]
func HandleTelegramLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeAction(w, r, "Telegram login", http.StatusOK,
			func(ctx context.Context, in *domain.TelegramAuthData) (*domain.TokenResponse, error) {
				return svc.LoginWithTelegram(ctx, in)
			})
	}
}

// HandleTelegramLogout acknowledges a user logout. Bearer tokens are
// stateless, so the client is expected to discard its token.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func HandleTelegramLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, MessageResponse{Message: MsgTokenDiscard})
	}
}

// AdminAuthHandler manages the admin session cookie
type AdminAuthHandler struct {
	sessions AdminSessionStore
	ttl      time.Duration
	secure   bool
}

// NewAdminAuthHandler creates the handler. secure marks the cookie HTTPS-only.
func NewAdminAuthHandler(sessions AdminSessionStore, ttl time.Duration, secure bool) *AdminAuthHandler {
	if ttl <= 0 {
		ttl = auth.DefaultAdminSessionTTL
	}
	return &AdminAuthHandler{sessions: sessions, ttl: ttl, secure: secure}
}

// HandleLogin opens an admin session
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Credentials"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/login [post]
func (h *AdminAuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AdminLoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Admin login"); err != nil {
		return
	}

	token, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		metrics.RecordLogin(metrics.KindAdmin, false)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			log.Warn(LogMsgAdminLoginFailed, "username", req.Username)
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidCredentials)
			return
		}
		respondServiceError(w, r, "Admin login", err)
		return
	}
	metrics.RecordLogin(metrics.KindAdmin, true)

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieAdminSession,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	log.Info(LogMsgAdminLoggedIn, "username", req.Username)
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgLoggedIn})
}

// HandleLogout closes the current admin session
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /admin/logout [post]
func (h *AdminAuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieAdminSession); err == nil {
		h.sessions.Logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieAdminSession,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	logger.FromContext(r.Context()).Info(LogMsgAdminLoggedOut)
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgLoggedOut})
}

// HandleMe confirms the admin session. Only reachable behind auth.RequireAdmin.
// @Summary Current admin session
// @Tags admin
// @Produce json
// @Success 200 {object} AdminStatusResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/me [get]
func (h *AdminAuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, AdminStatusResponse{Authenticated: auth.IsAdmin(r.Context())})
}
