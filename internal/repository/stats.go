package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Stats defines the reads behind the statistics projections
type Stats interface {
	GetFight(ctx context.Context, id int) (*domain.Fight, error)
	ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error)
	ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error)
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
	GetUserPredictionSummary(ctx context.Context, userID int) (*domain.UserPredictionSummary, error)
	GetUserScorecardSummary(ctx context.Context, userID int) (*domain.UserScorecardSummary, error)
}
