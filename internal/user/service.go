package user

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
)

// TelegramVerifier checks a Telegram login widget payload
type TelegramVerifier interface {
	Verify(data *domain.TelegramAuthData) error
}

// TokenIssuer mints bearer tokens for authenticated users
type TokenIssuer interface {
	IssueUserToken(user *domain.User) (string, error)
}

// Service defines the interface for user operations
type Service interface {
	LoginWithTelegram(ctx context.Context, data *domain.TelegramAuthData) (*domain.TokenResponse, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetCacheStats() domain.CacheStats
}

type service struct {
	repo     Repository
	verifier TelegramVerifier
	tokens   TokenIssuer
	cache    *userCache
}

// NewService creates a new user service
func NewService(repo Repository, verifier TelegramVerifier, tokens TokenIssuer, cacheConfig CacheConfig) Service {
	return &service{
		repo:     repo,
		verifier: verifier,
		tokens:   tokens,
		cache:    newUserCache(cacheConfig),
	}
}

// LoginWithTelegram verifies the widget payload, creates or refreshes the
// user and returns a bearer token for it.
func (s *service) LoginWithTelegram(ctx context.Context, data *domain.TelegramAuthData) (*domain.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.verifier.Verify(data); err != nil {
		metrics.RecordLogin(metrics.KindTelegram, false)
		log.Warn(LogMsgLoginRejected, "telegram_id", data.ID, "reason", err)
		return nil, err
	}

	user, err := s.repo.UpsertTelegramUser(ctx, data)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpsertUser, err)
	}
	s.cache.Set(user)

	token, err := s.tokens.IssueUserToken(user)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgIssueToken, err)
	}

	metrics.RecordLogin(metrics.KindTelegram, true)
	log.Info(LogMsgLoginSucceeded, "user_id", user.ID, "telegram_id", user.TelegramID)

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		User:        user,
	}, nil
}

// GetByID returns a user, served from cache when possible
func (s *service) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if user, ok := s.cache.Get(id); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "user_id", id)
		return user, nil
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(user)
	return user, nil
}

func (s *service) GetCacheStats() domain.CacheStats {
	return s.cache.GetStats()
}
