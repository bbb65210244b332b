package domain

import "time"

// User is a Telegram-authenticated player.
type User struct {
	ID          int       `json:"id"`
	TelegramID  int64     `json:"telegram_id"`
	Username    *string   `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    *string   `json:"last_name"`
	PhotoURL    *string   `json:"photo_url"`
	DisplayName string    `json:"display_name"`
	AuthDate    time.Time `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// BuildDisplayName prefers "@username" and falls back to the full name.
func BuildDisplayName(username *string, firstName string, lastName *string) string {
	if username != nil && *username != "" {
		return "@" + *username
	}
	if lastName != nil && *lastName != "" {
		return firstName + " " + *lastName
	}
	return firstName
}

// TelegramAuthData is the payload produced by the Telegram login widget.
type TelegramAuthData struct {
	ID        int64   `json:"id" validate:"required"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	PhotoURL  *string `json:"photo_url"`
	AuthDate  int64   `json:"auth_date" validate:"required"`
	Hash      string  `json:"hash" validate:"required"`
}

// TokenResponse is returned by a successful Telegram login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"
