package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// TelegramConfig configures login widget verification
type TelegramConfig struct {
	BotToken string
	DevHash  string
	MaxAge   time.Duration
}

// TelegramVerifier checks the HMAC Telegram attaches to login widget payloads
type TelegramVerifier struct {
	botToken string
	devHash  string
	maxAge   time.Duration
	now      func() time.Time
}

// NewTelegramVerifier creates a verifier. A zero MaxAge uses DefaultTelegramMaxAge.
func NewTelegramVerifier(cfg TelegramConfig) *TelegramVerifier {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultTelegramMaxAge
	}
	return &TelegramVerifier{
		botToken: cfg.BotToken,
		devHash:  cfg.DevHash,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Verify rejects stale payloads and payloads whose hash does not match.
// Without a bot token only the development hash is accepted.
func (v *TelegramVerifier) Verify(data *domain.TelegramAuthData) error {
	issued := time.Unix(data.AuthDate, 0)
	if v.now().Sub(issued) > v.maxAge {
		return domain.ErrTelegramAuthExpired
	}

	if v.devHash != "" && subtle.ConstantTimeCompare([]byte(data.Hash), []byte(v.devHash)) == 1 {
		slog.Warn(LogMsgTelegramDevHash, "telegram_id", data.ID)
		return nil
	}
	if v.botToken == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTelegramHash, ErrMsgTelegramNoBot)
	}

	expected := TelegramHash(v.botToken, data)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(data.Hash))) {
		return domain.ErrInvalidTelegramHash
	}
	return nil
}

// TelegramHash computes the hex HMAC-SHA256 of the payload's data-check-string
// keyed with SHA-256 of the bot token.
func TelegramHash(botToken string, data *domain.TelegramAuthData) string {
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(DataCheckString(data)))
	return hex.EncodeToString(mac.Sum(nil))
}

// DataCheckString joins every received field except hash as sorted key=value lines.
// Absent optional fields are left out.
func DataCheckString(data *domain.TelegramAuthData) string {
	fields := map[string]string{
		"id":         strconv.FormatInt(data.ID, 10),
		"first_name": data.FirstName,
		"auth_date":  strconv.FormatInt(data.AuthDate, 10),
	}
	optional := map[string]*string{
		"last_name": data.LastName,
		"username":  data.Username,
		"photo_url": data.PhotoURL,
	}
	for k, v := range optional {
		if v != nil && *v != "" {
			fields[k] = *v
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + fields[k]
	}
	return strings.Join(lines, "\n")
}
