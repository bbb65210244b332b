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

var predictionRefErrors = map[string]error{
	ConstraintPredictionFight: domain.ErrFightNotFound,
	ConstraintPredictionUser:  domain.ErrUserNotFound,
}

// PredictionRepository implements repository.Prediction for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) repository.Prediction {
	return &PredictionRepository{
		db: db,
		q:  generated.New(db),
	}
}

func (r *PredictionRepository) GetFight(ctx context.Context, id int) (*domain.Fight, error) {
	return getFight(ctx, r.q, id)
}

func (r *PredictionRepository) FightHasResult(ctx context.Context, fightID int) (bool, error) {
	return fightHasResult(ctx, r.q, fightID)
}

// CreatePrediction inserts a pick. A concurrent duplicate loses on the
// (user_id, fight_id) constraint and is reported as ErrPredictionExists.
func (r *PredictionRepository) CreatePrediction(ctx context.Context, userID int, in *domain.PredictionInput) (*domain.Prediction, error) {
	row, err := r.q.CreatePrediction(ctx, generated.CreatePredictionParams{
		UserID:          int32(userID),
		FightID:         int32(in.FightID),
		PredictedWinner: string(in.PredictedWinner),
		WinMethod:       string(in.WinMethod),
		Confidence:      ptrToInt4(in.Confidence),
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToCreatePrediction, err, nil, domain.ErrPredictionExists, predictionRefErrors)
	}
	p := mapPrediction(row)
	return &p, nil
}

func (r *PredictionRepository) GetUserFightPrediction(ctx context.Context, userID, fightID int) (*domain.Prediction, error) {
	row, err := r.q.GetUserFightPrediction(ctx, generated.GetUserFightPredictionParams{
		UserID:  int32(userID),
		FightID: int32(fightID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrediction, err)
	}
	p := mapPrediction(row)
	return &p, nil
}

func (r *PredictionRepository) ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error) {
	return listFightPredictions(ctx, r.q, fightID)
}

func (r *PredictionRepository) ListUserPredictions(ctx context.Context, userID int) ([]domain.Prediction, error) {
	rows, err := r.q.ListUserPredictions(ctx, int32(userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return mapPredictions(rows), nil
}
