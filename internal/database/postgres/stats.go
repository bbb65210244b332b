package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) repository.Stats {
	return &StatsRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

func (r *StatsRepository) GetFight(ctx context.Context, id int) (*domain.Fight, error) {
	return getFight(ctx, r.q, id)
}

func (r *StatsRepository) ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error) {
	return listFightPredictions(ctx, r.q, fightID)
}

func (r *StatsRepository) ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error) {
	return listFightScorecards(ctx, r.q, fightID)
}

func (r *StatsRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return getUser(ctx, r.q, id)
}

// GetUserPredictionSummary counts a user's picks, graded picks and wins, plus picks per method
func (r *StatsRepository) GetUserPredictionSummary(ctx context.Context, userID int) (*domain.UserPredictionSummary, error) {
	row, err := r.q.GetUserPredictionSummary(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSummary, err)
	}
	methods, err := r.q.ListUserPredictionMethods(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSummary, err)
	}

	summary := &domain.UserPredictionSummary{
		Total:    int(row.Total),
		Resolved: int(row.Resolved),
		Correct:  int(row.Correct),
		ByMethod: make(map[domain.WinMethod]int, len(domain.AllWinMethods)),
	}
	for _, m := range methods {
		summary.ByMethod[domain.WinMethod(m.WinMethod)] = int(m.Total)
	}
	return summary, nil
}

// GetUserScorecardSummary sums graded rounds across a user's resolved scorecards
func (r *StatsRepository) GetUserScorecardSummary(ctx context.Context, userID int) (*domain.UserScorecardSummary, error) {
	row, err := r.q.GetUserScorecardSummary(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSummary, err)
	}
	return &domain.UserScorecardSummary{
		Total:         int(row.Total),
		CorrectRounds: int(row.CorrectRounds),
		TotalRounds:   int(row.TotalRounds),
	}, nil
}
