package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// ResultRepository implements repository.Result for PostgreSQL
type ResultRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) repository.Result {
	return &ResultRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetResult returns the fight's result with its official scorecards
func (r *ResultRepository) GetResult(ctx context.Context, fightID int) (*domain.FightResult, error) {
	return getResult(ctx, r.q, fightID)
}

// ListEventIDsWithFights returns every event that has at least one fight
func (r *ResultRepository) ListEventIDsWithFights(ctx context.Context) ([]int, error) {
	rows, err := r.q.ListEventIDsWithFights(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEventIDs, err)
	}
	ids := make([]int, len(rows))
	for i, id := range rows {
		ids[i] = int(id)
	}
	return ids, nil
}

// BeginTx starts a resolution transaction
func (r *ResultRepository) BeginTx(ctx context.Context) (repository.ResultTx, error) {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &resultTx{h: h}, nil
}

type resultTx struct {
	h *txHelper
}

func (t *resultTx) Commit(ctx context.Context) error {
	if err := t.h.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *resultTx) Rollback(ctx context.Context) error {
	return t.h.Tx().Rollback(ctx)
}

// LockFight takes a row lock on the fight for the rest of the transaction
func (t *resultTx) LockFight(ctx context.Context, fightID int) (*domain.Fight, error) {
	row, err := t.h.Queries().LockFight(ctx, int32(fightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFightNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockFight, err)
	}
	return &domain.Fight{
		ID:      int(row.ID),
		EventID: int(row.EventID),
		Rounds:  ptrInt(row.Rounds),
	}, nil
}

func (t *resultTx) GetResult(ctx context.Context, fightID int) (*domain.FightResult, error) {
	return getResult(ctx, t.h.Queries(), fightID)
}

func (t *resultTx) UpsertResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error) {
	q := t.h.Queries()

	var (
		row generated.FightResult
		err error
	)
	existing, err := q.GetFightResult(ctx, int32(fightID))
	switch {
	case err == nil:
		row, err = q.UpdateFightResult(ctx, generated.UpdateFightResultParams{
			ID:          existing.ID,
			Winner:      string(in.Winner),
			Method:      string(in.Method),
			FinishRound: ptrToInt4(in.FinishRound),
			FinishTime:  ptrToText(in.FinishTime),
		})
		if err != nil {
			return nil, writeError(ErrMsgFailedToSaveResult, err, nil, nil, nil)
		}
		if err := q.DeleteOfficialScorecards(ctx, row.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveOfficialCard, err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		row, err = q.CreateFightResult(ctx, generated.CreateFightResultParams{
			FightID:     int32(fightID),
			Winner:      string(in.Winner),
			Method:      string(in.Method),
			FinishRound: ptrToInt4(in.FinishRound),
			FinishTime:  ptrToText(in.FinishTime),
		})
		if err != nil {
			return nil, writeError(ErrMsgFailedToSaveResult, err, nil, domain.ErrResultExists,
				map[string]error{ConstraintFightResultFight: domain.ErrFightNotFound})
		}
	default:
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetResult, err)
	}

	cards := make([]domain.OfficialScorecard, 0, len(in.OfficialScorecards))
	for _, cardIn := range in.OfficialScorecards {
		cardRow, err := q.CreateOfficialScorecard(ctx, generated.CreateOfficialScorecardParams{
			FightResultID: row.ID,
			JudgeName:     cardIn.JudgeName,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveOfficialCard, err)
		}
		rounds := make([]generated.OfficialRoundScore, 0, len(cardIn.RoundScores))
		for _, rs := range cardIn.RoundScores {
			roundRow, err := q.CreateOfficialRoundScore(ctx, generated.CreateOfficialRoundScoreParams{
				OfficialScorecardID: cardRow.ID,
				RoundNumber:         int32(rs.RoundNumber),
				Fighter1Score:       int32(rs.Fighter1Score),
				Fighter2Score:       int32(rs.Fighter2Score),
			})
			if err != nil {
				return nil, writeError(ErrMsgFailedToSaveOfficialCard, err, nil, nil, nil)
			}
			rounds = append(rounds, roundRow)
		}
		cards = append(cards, mapOfficialScorecard(cardRow, rounds))
	}

	result := mapFightResult(row, cards)
	return &result, nil
}

func (t *resultTx) DeleteResult(ctx context.Context, fightID int) error {
	n, err := t.h.Queries().DeleteFightResult(ctx, int32(fightID))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteResult, err)
	}
	if n == 0 {
		return domain.ErrResultNotFound
	}
	return nil
}

func (t *resultTx) MarkResolved(ctx context.Context, resultID int) error {
	if err := t.h.Queries().MarkFightResultResolved(ctx, int32(resultID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkResolved, err)
	}
	return nil
}

func (t *resultTx) ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error) {
	return listFightPredictions(ctx, t.h.Queries(), fightID)
}

func (t *resultTx) ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error) {
	return listFightScorecards(ctx, t.h.Queries(), fightID)
}

func (t *resultTx) UpdatePredictionResolution(ctx context.Context, predictionID int, isCorrect *bool, resolvedAt *time.Time) error {
	err := t.h.Queries().UpdatePredictionResolution(ctx, generated.UpdatePredictionResolutionParams{
		ID:         int32(predictionID),
		IsCorrect:  ptrToBool(isCorrect),
		ResolvedAt: ptrToTimestamptz(resolvedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePrediction, err)
	}
	return nil
}

func (t *resultTx) UpdateScorecardResolution(ctx context.Context, card *domain.Scorecard) error {
	q := t.h.Queries()
	err := q.UpdateScorecardResolution(ctx, generated.UpdateScorecardResolutionParams{
		ID:            int32(card.ID),
		CorrectRounds: int32(card.CorrectRounds),
		TotalRounds:   int32(card.TotalRounds),
		ResolvedAt:    ptrToTimestamptz(card.ResolvedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateScorecard, err)
	}
	for _, rs := range card.RoundScores {
		err := q.UpdateRoundScoreResolution(ctx, generated.UpdateRoundScoreResolutionParams{
			ID:        int32(rs.ID),
			IsCorrect: ptrToBool(rs.IsCorrect),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRoundScore, err)
		}
	}
	return nil
}

// LockEvent takes a row lock on the event. Callers hold the fight lock first.
func (t *resultTx) LockEvent(ctx context.Context, eventID int) error {
	if _, err := t.h.Queries().LockEvent(ctx, int32(eventID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockEvent, err)
	}
	return nil
}

func (t *resultTx) GetEventClosure(ctx context.Context, eventID int) (domain.EventClosure, error) {
	row, err := t.h.Queries().GetEventClosure(ctx, int32(eventID))
	if err != nil {
		return domain.EventClosure{}, fmt.Errorf("%s: %w", ErrMsgFailedToGetEventClosure, err)
	}
	return domain.EventClosure{
		TotalFights:       int(row.TotalFights),
		FightsWithResults: int(row.FightsWithResults),
	}, nil
}

func (t *resultTx) SetEventUpcoming(ctx context.Context, eventID int, upcoming bool) (bool, error) {
	n, err := t.h.Queries().SetEventUpcoming(ctx, generated.SetEventUpcomingParams{
		ID:         int32(eventID),
		IsUpcoming: upcoming,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToSetEventUpcoming, err)
	}
	return n > 0, nil
}
