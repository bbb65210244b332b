package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{
		db: db,
		q:  generated.New(db),
	}
}

// UpsertTelegramUser creates the user on first login and refreshes the
// profile fields on every later one.
func (r *UserRepository) UpsertTelegramUser(ctx context.Context, data *domain.TelegramAuthData) (*domain.User, error) {
	row, err := r.q.UpsertUser(ctx, generated.UpsertUserParams{
		TelegramID: data.ID,
		Username:   ptrToText(data.Username),
		FirstName:  data.FirstName,
		LastName:   ptrToText(data.LastName),
		PhotoUrl:   ptrToText(data.PhotoURL),
		AuthDate:   timeToTimestamptz(time.Unix(data.AuthDate, 0).UTC()),
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToUpsertUser, err, nil, nil, nil)
	}
	user := mapUser(row)
	return &user, nil
}

// GetUserByID retrieves a user by internal id
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return getUser(ctx, r.q, id)
}
