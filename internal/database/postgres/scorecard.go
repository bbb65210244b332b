package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

var scorecardRefErrors = map[string]error{
	ConstraintScorecardFight: domain.ErrFightNotFound,
	ConstraintScorecardUser:  domain.ErrUserNotFound,
}

// ScorecardRepository implements repository.Scorecard for PostgreSQL
type ScorecardRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewScorecardRepository creates a new ScorecardRepository
func NewScorecardRepository(db *pgxpool.Pool) repository.Scorecard {
	return &ScorecardRepository{
		db: db,
		q:  generated.New(db),
	}
}

func (r *ScorecardRepository) GetFight(ctx context.Context, id int) (*domain.Fight, error) {
	return getFight(ctx, r.q, id)
}

func (r *ScorecardRepository) FightHasResult(ctx context.Context, fightID int) (bool, error) {
	return fightHasResult(ctx, r.q, fightID)
}

// CreateScorecard inserts the card and all of its rounds in one transaction.
func (r *ScorecardRepository) CreateScorecard(ctx context.Context, userID int, in *domain.ScorecardInput) (*domain.Scorecard, error) {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	defer SafeRollback(ctx, h.Tx())

	q := h.Queries()
	cardRow, err := q.CreateScorecard(ctx, generated.CreateScorecardParams{
		UserID:  int32(userID),
		FightID: int32(in.FightID),
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToCreateScorecard, err, nil, domain.ErrScorecardExists, scorecardRefErrors)
	}

	rounds := make([]generated.RoundScore, 0, len(in.RoundScores))
	for _, rs := range in.RoundScores {
		row, err := q.CreateRoundScore(ctx, generated.CreateRoundScoreParams{
			ScorecardID:   cardRow.ID,
			RoundNumber:   int32(rs.RoundNumber),
			Fighter1Score: int32(rs.Fighter1Score),
			Fighter2Score: int32(rs.Fighter2Score),
		})
		if err != nil {
			return nil, writeError(ErrMsgFailedToCreateRoundScore, err, nil, nil, nil)
		}
		rounds = append(rounds, row)
	}

	if err := h.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	card := mapScorecard(cardRow, rounds)
	return &card, nil
}

func (r *ScorecardRepository) GetUserFightScorecard(ctx context.Context, userID, fightID int) (*domain.Scorecard, error) {
	row, err := r.q.GetUserFightScorecard(ctx, generated.GetUserFightScorecardParams{
		UserID:  int32(userID),
		FightID: int32(fightID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScorecardNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetScorecard, err)
	}
	cards, err := withRoundScores(ctx, r.q, []generated.Scorecard{row})
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

func (r *ScorecardRepository) ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error) {
	return listFightScorecards(ctx, r.q, fightID)
}

func (r *ScorecardRepository) ListUserScorecards(ctx context.Context, userID int) ([]domain.Scorecard, error) {
	rows, err := r.q.ListUserScorecards(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScorecards, err)
	}
	return withRoundScores(ctx, r.q, rows)
}
