package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// User defines persistence for Telegram users
type User interface {
	UpsertTelegramUser(ctx context.Context, data *domain.TelegramAuthData) (*domain.User, error)
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
}
