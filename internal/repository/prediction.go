package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Prediction defines persistence for user predictions
type Prediction interface {
	GetFight(ctx context.Context, id int) (*domain.Fight, error)
	// FightHasResult reports whether the fight is closed to new picks
	FightHasResult(ctx context.Context, fightID int) (bool, error)
	CreatePrediction(ctx context.Context, userID int, in *domain.PredictionInput) (*domain.Prediction, error)
	GetUserFightPrediction(ctx context.Context, userID, fightID int) (*domain.Prediction, error)
	ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error)
	ListUserPredictions(ctx context.Context, userID int) ([]domain.Prediction, error)
}
