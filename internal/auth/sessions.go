package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// AdminConfig holds the single admin credential pair
type AdminConfig struct {
	Username   string
	Password   string
	SessionTTL time.Duration
}

// AdminSessions keeps admin login sessions in memory.
// Sessions do not survive a restart.
type AdminSessions struct {
	username []byte
	password []byte
	store    *expirable.LRU[string, time.Time]
}

// NewAdminSessions creates the session store. A zero SessionTTL uses DefaultAdminSessionTTL.
func NewAdminSessions(cfg AdminConfig) *AdminSessions {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultAdminSessionTTL
	}
	return &AdminSessions{
		username: []byte(cfg.Username),
		password: []byte(cfg.Password),
		store:    expirable.NewLRU[string, time.Time](MaxAdminSessions, nil, ttl),
	}
}

// Login checks the credentials and opens a session
func (s *AdminSessions) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), s.username) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), s.password) == 1
	if !userOK || !passOK || len(s.password) == 0 {
		return "", domain.ErrInvalidCredentials
	}

	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf(ErrMsgSessionEntropy, err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	s.store.Add(token, time.Now())
	return token, nil
}

// Valid reports whether token names a live session
func (s *AdminSessions) Valid(token string) bool {
	if token == "" {
		return false
	}
	_, ok := s.store.Get(token)
	return ok
}

// Logout drops the session. Unknown tokens are ignored.
func (s *AdminSessions) Logout(token string) {
	s.store.Remove(token)
}

// Len returns the number of live sessions
func (s *AdminSessions) Len() int {
	return s.store.Len()
}
