package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
)

const testBotToken = "123456:TEST-bot-token"

var loginTime = time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)

func authData() *domain.TelegramAuthData {
	return &domain.TelegramAuthData{
		ID:        42,
		FirstName: "Alex",
		Username:  domain.Ptr("alex"),
		LastName:  domain.Ptr(""),
		AuthDate:  loginTime.Unix(),
	}
}

func verifierAt(cfg TelegramConfig, now time.Time) *TelegramVerifier {
	v := NewTelegramVerifier(cfg)
	v.now = func() time.Time { return now }
	return v
}

func TestDataCheckString(t *testing.T) {
	got := DataCheckString(authData())
	want := "auth_date=1772906400\nfirst_name=Alex\nid=42\nusername=alex"
	assert.Equal(t, want, got)
}

func TestVerify(t *testing.T) {
	signed := func() *domain.TelegramAuthData {
		d := authData()
		d.Hash = TelegramHash(testBotToken, d)
		return d
	}

	t.Run("valid", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: testBotToken}, loginTime.Add(time.Minute))
		assert.NoError(t, v.Verify(signed()))
	})

	t.Run("hash is case insensitive", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: testBotToken}, loginTime)
		d := signed()
		d.Hash = upper(d.Hash)
		assert.NoError(t, v.Verify(d))
	})

	t.Run("tampered field", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: testBotToken}, loginTime)
		d := signed()
		d.FirstName = "Mallory"
		assert.ErrorIs(t, v.Verify(d), domain.ErrInvalidTelegramHash)
	})

	t.Run("wrong bot token", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: "other"}, loginTime)
		assert.ErrorIs(t, v.Verify(signed()), domain.ErrInvalidTelegramHash)
	})

	t.Run("stale", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: testBotToken}, loginTime.Add(25*time.Hour))
		assert.ErrorIs(t, v.Verify(signed()), domain.ErrTelegramAuthExpired)
	})

	t.Run("custom max age", func(t *testing.T) {
		v := verifierAt(TelegramConfig{BotToken: testBotToken, MaxAge: time.Hour}, loginTime.Add(2*time.Hour))
		assert.ErrorIs(t, v.Verify(signed()), domain.ErrTelegramAuthExpired)
	})

	t.Run("dev hash", func(t *testing.T) {
		v := verifierAt(TelegramConfig{DevHash: "letmein"}, loginTime)
		d := authData()
		d.Hash = "letmein"
		assert.NoError(t, v.Verify(d))
	})

	t.Run("no bot token refuses real hashes", func(t *testing.T) {
		v := verifierAt(TelegramConfig{DevHash: "letmein"}, loginTime)
		err := v.Verify(signed())
		require.ErrorIs(t, err, domain.ErrInvalidTelegramHash)
		assert.Contains(t, err.Error(), ErrMsgTelegramNoBot)
	})

	t.Run("nothing configured", func(t *testing.T) {
		v := verifierAt(TelegramConfig{}, loginTime)
		d := authData()
		d.Hash = ""
		assert.ErrorIs(t, v.Verify(d), domain.ErrInvalidTelegramHash)
	})
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
