package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// UserClaims are carried by user bearer tokens
type UserClaims struct {
	jwt.RegisteredClaims
	TelegramID int64 `json:"telegram_id"`
}

// UserID returns the numeric subject.
func (c *UserClaims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

// TokenProvider issues and parses HS256 user tokens
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenProvider creates a provider. A zero ttl uses DefaultTokenTTL.
func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueUserToken signs a token for user
func (p *TokenProvider) IssueUserToken(user *domain.User) (string, error) {
	now := p.now()
	claims := &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
		TelegramID: user.TelegramID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf(ErrMsgSignToken, err)
	}
	return signed, nil
}

// ParseUserToken validates signature, algorithm and expiry.
// Every failure is reported as domain.ErrUnauthorized.
func (p *TokenProvider) ParseUserToken(tokenString string) (*UserClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)

	claims := &UserClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", domain.ErrUnauthorized)
	}
	return claims, nil
}
