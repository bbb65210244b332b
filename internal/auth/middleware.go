package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fightpicks/fightpicks/internal/logger"
)

// TokenParser validates bearer tokens
type TokenParser interface {
	ParseUserToken(token string) (*UserClaims, error)
}

// SessionChecker validates admin session tokens
type SessionChecker interface {
	Valid(token string) bool
}

// RequireUser rejects requests without a valid bearer token and stores the
// user id in the request context.
func RequireUser(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := BearerToken(r)
			if !ok {
				writeUnauthorized(w, ErrMsgMissingToken)
				return
			}

			claims, err := tokens.ParseUserToken(raw)
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "error", err)
				writeUnauthorized(w, ErrMsgInvalidToken)
				return
			}
			id, err := claims.UserID()
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "error", err)
				writeUnauthorized(w, ErrMsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

// RequireAdmin rejects requests without a live admin session cookie
func RequireAdmin(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieAdminSession)
			if err != nil || !sessions.Valid(cookie.Value) {
				writeUnauthorized(w, ErrMsgAdminRequired)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context())))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get(HeaderAuthorization)
	if len(h) <= len(BearerPrefix) || !strings.EqualFold(h[:len(BearerPrefix)], BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(BearerPrefix):])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	writeDetail(w, http.StatusUnauthorized, detail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
