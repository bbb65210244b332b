package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/mocks"
)

type stubVerifier struct{ err error }

func (v stubVerifier) Verify(*domain.TelegramAuthData) error { return v.err }

type stubIssuer struct{}

func (stubIssuer) IssueUserToken(u *domain.User) (string, error) {
	return "token-for-" + u.FirstName, nil
}

func authData() *domain.TelegramAuthData {
	return &domain.TelegramAuthData{ID: 555, FirstName: "Islam", Username: domain.Ptr("islam"), AuthDate: 1700000000, Hash: "abc"}
}

func TestLoginWithTelegram(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc := NewService(repo, stubVerifier{}, stubIssuer{}, CacheConfig{})
	data := authData()

	user := &domain.User{ID: 1, TelegramID: 555, FirstName: "Islam", DisplayName: "@islam"}
	repo.On("UpsertTelegramUser", mock.Anything, data).Return(user, nil).Once()

	resp, err := svc.LoginWithTelegram(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, "token-for-Islam", resp.AccessToken)
	assert.Equal(t, domain.TokenTypeBearer, resp.TokenType)
	assert.Same(t, user, resp.User)

	// Login warms the cache, so no repository read follows.
	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestLoginWithTelegram_RejectedHash(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc := NewService(repo, stubVerifier{err: domain.ErrInvalidTelegramHash}, stubIssuer{}, CacheConfig{})

	_, err := svc.LoginWithTelegram(context.Background(), authData())
	assert.ErrorIs(t, err, domain.ErrInvalidTelegramHash)
	repo.AssertNotCalled(t, "UpsertTelegramUser", mock.Anything, mock.Anything)
}

func TestLoginWithTelegram_UpsertFails(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc := NewService(repo, stubVerifier{}, stubIssuer{}, CacheConfig{})
	boom := errors.New("db down")

	repo.On("UpsertTelegramUser", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := svc.LoginWithTelegram(context.Background(), authData())
	assert.ErrorIs(t, err, boom)
}

func TestGetByID_CachesRepositoryReads(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc := NewService(repo, stubVerifier{}, stubIssuer{}, CacheConfig{})
	ctx := context.Background()

	repo.On("GetUserByID", ctx, 9).Return(&domain.User{ID: 9}, nil).Once()

	for i := 0; i < 3; i++ {
		u, err := svc.GetByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, 9, u.ID)
	}
	assert.Equal(t, int64(2), svc.GetCacheStats().Hits)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc := NewService(repo, stubVerifier{}, stubIssuer{}, CacheConfig{})

	repo.On("GetUserByID", mock.Anything, 404).Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
