package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
)

// Shared read helpers used by both pool-backed repositories and transactions.

func getFight(ctx context.Context, q *generated.Queries, id int) (*domain.Fight, error) {
	row, err := q.GetFight(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFightNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFight, err)
	}
	fight := mapGetFightRow(row)
	return &fight, nil
}

func fightHasResult(ctx context.Context, q *generated.Queries, fightID int) (bool, error) {
	ok, err := q.FightHasResult(ctx, int32(fightID))
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetResult, err)
	}
	return ok, nil
}

func getUser(ctx context.Context, q *generated.Queries, id int) (*domain.User, error) {
	row, err := q.GetUser(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	user := mapUser(row)
	return &user, nil
}

func listFightPredictions(ctx context.Context, q *generated.Queries, fightID int) ([]domain.Prediction, error) {
	rows, err := q.ListFightPredictions(ctx, int32(fightID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return mapPredictions(rows), nil
}

func mapPredictions(rows []generated.Prediction) []domain.Prediction {
	out := make([]domain.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPrediction(row))
	}
	return out
}

func listFightScorecards(ctx context.Context, q *generated.Queries, fightID int) ([]domain.Scorecard, error) {
	rows, err := q.ListFightScorecards(ctx, int32(fightID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListScorecards, err)
	}
	return withRoundScores(ctx, q, rows)
}

// withRoundScores loads every card's rounds in one query
func withRoundScores(ctx context.Context, q *generated.Queries, cards []generated.Scorecard) ([]domain.Scorecard, error) {
	out := make([]domain.Scorecard, 0, len(cards))
	if len(cards) == 0 {
		return out, nil
	}

	ids := make([]int32, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	rounds, err := q.ListRoundScoresByScorecardIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoundScores, err)
	}

	byCard := make(map[int32][]generated.RoundScore, len(cards))
	for _, r := range rounds {
		byCard[r.ScorecardID] = append(byCard[r.ScorecardID], r)
	}
	for _, c := range cards {
		out = append(out, mapScorecard(c, byCard[c.ID]))
	}
	return out, nil
}

func getResult(ctx context.Context, q *generated.Queries, fightID int) (*domain.FightResult, error) {
	row, err := q.GetFightResult(ctx, int32(fightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetResult, err)
	}
	results, err := withOfficialScorecards(ctx, q, []generated.FightResult{row})
	if err != nil {
		return nil, err
	}
	return results[row.FightID], nil
}

// withOfficialScorecards loads the judges' cards for a batch of results, keyed by fight id
func withOfficialScorecards(ctx context.Context, q *generated.Queries, results []generated.FightResult) (map[int32]*domain.FightResult, error) {
	out := make(map[int32]*domain.FightResult, len(results))
	if len(results) == 0 {
		return out, nil
	}

	resultIDs := make([]int32, len(results))
	for i, r := range results {
		resultIDs[i] = r.ID
	}
	cards, err := q.ListOfficialScorecardsByResultIDs(ctx, resultIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOfficialCards, err)
	}

	var rounds []generated.OfficialRoundScore
	if len(cards) > 0 {
		cardIDs := make([]int32, len(cards))
		for i, c := range cards {
			cardIDs[i] = c.ID
		}
		rounds, err = q.ListOfficialRoundScoresByScorecardIDs(ctx, cardIDs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOfficialCards, err)
		}
	}

	roundsByCard := make(map[int32][]generated.OfficialRoundScore, len(cards))
	for _, r := range rounds {
		roundsByCard[r.OfficialScorecardID] = append(roundsByCard[r.OfficialScorecardID], r)
	}
	cardsByResult := make(map[int32][]domain.OfficialScorecard, len(results))
	for _, c := range cards {
		cardsByResult[c.FightResultID] = append(cardsByResult[c.FightResultID], mapOfficialScorecard(c, roundsByCard[c.ID]))
	}

	for _, r := range results {
		result := mapFightResult(r, cardsByResult[r.ID])
		out[r.FightID] = &result
	}
	return out, nil
}
