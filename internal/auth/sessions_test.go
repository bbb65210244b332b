package auth

import (
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
)

func TestAdminSessions(t *testing.T) {
	s := NewAdminSessions(AdminConfig{Username: "admin", Password: "hunter2"})

	token, err := s.Login("admin", "hunter2")
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, SessionTokenBytes)
	assert.True(t, s.Valid(token))

	s.Logout(token)
	assert.False(t, s.Valid(token))
	s.Logout("unknown")
}

func TestAdminSessions_BadCredentials(t *testing.T) {
	s := NewAdminSessions(AdminConfig{Username: "admin", Password: "hunter2"})

	for _, tc := range [][2]string{{"admin", "wrong"}, {"root", "hunter2"}, {"", ""}} {
		_, err := s.Login(tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, tc)
	}
	assert.False(t, s.Valid(""))
	assert.Zero(t, s.Len())
}

func TestAdminSessions_EmptyPasswordNeverMatches(t *testing.T) {
	s := NewAdminSessions(AdminConfig{Username: "admin"})
	_, err := s.Login("admin", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminSessions_Concurrent(t *testing.T) {
	s := NewAdminSessions(AdminConfig{Username: "admin", Password: "hunter2"})

	var wg sync.WaitGroup
	tokens := make([]string, 50)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := s.Login("admin", "hunter2")
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, tok := range tokens {
		assert.True(t, s.Valid(tok))
		assert.False(t, seen[tok], "duplicate session token")
		seen[tok] = true
	}
	assert.Equal(t, len(tokens), s.Len())
}
