package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Scorecard defines persistence for user scorecards and their rounds
type Scorecard interface {
	GetFight(ctx context.Context, id int) (*domain.Fight, error)
	// FightHasResult reports whether the fight is closed to new picks
	FightHasResult(ctx context.Context, fightID int) (bool, error)
	// CreateScorecard inserts the card and its rounds atomically
	CreateScorecard(ctx context.Context, userID int, in *domain.ScorecardInput) (*domain.Scorecard, error)
	GetUserFightScorecard(ctx context.Context, userID, fightID int) (*domain.Scorecard, error)
	ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error)
	ListUserScorecards(ctx context.Context, userID int) ([]domain.Scorecard, error)
}
