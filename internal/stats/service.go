package stats

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// Service defines the read-only statistics projections
type Service interface {
	GetPredictionStats(ctx context.Context, fightID int) (*domain.PredictionStats, error)
	GetScorecardStats(ctx context.Context, fightID int) (*domain.ScorecardStats, error)
	GetFightStats(ctx context.Context, fight *domain.Fight) (*domain.FightStats, error)
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetPredictionStats(ctx context.Context, fightID int) (*domain.PredictionStats, error) {
	if _, err := s.repo.GetFight(ctx, fightID); err != nil {
		return nil, err
	}
	return s.predictionStats(ctx, fightID)
}

func (s *service) GetScorecardStats(ctx context.Context, fightID int) (*domain.ScorecardStats, error) {
	fight, err := s.repo.GetFight(ctx, fightID)
	if err != nil {
		return nil, err
	}
	return s.scorecardStats(ctx, fight)
}

// GetFightStats bundles an already loaded fight with both projections
func (s *service) GetFightStats(ctx context.Context, fight *domain.Fight) (*domain.FightStats, error) {
	preds, err := s.predictionStats(ctx, fight.ID)
	if err != nil {
		return nil, err
	}
	cards, err := s.scorecardStats(ctx, fight)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgFightStatsComputed,
		"fight_id", fight.ID,
		"predictions", preds.TotalPredictions,
		"scorecards", cards.TotalScorecards)

	return &domain.FightStats{
		Fight:           fight,
		PredictionStats: preds,
		ScorecardStats:  cards,
	}, nil
}

// GetUserStats returns the accuracy report of an existing user
func (s *service) GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	preds, err := s.repo.GetUserPredictionSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSummary, err)
	}
	cards, err := s.repo.GetUserScorecardSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSummary, err)
	}

	stats := User(preds, cards)
	logger.FromContext(ctx).Debug(LogMsgUserStatsComputed, "user_id", userID, "resolved_predictions", stats.ResolvedPredictions)
	return stats, nil
}

func (s *service) predictionStats(ctx context.Context, fightID int) (*domain.PredictionStats, error) {
	preds, err := s.repo.ListFightPredictions(ctx, fightID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPredictions, err)
	}
	return Predictions(preds), nil
}

func (s *service) scorecardStats(ctx context.Context, fight *domain.Fight) (*domain.ScorecardStats, error) {
	cards, err := s.repo.ListFightScorecards(ctx, fight.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadScorecards, err)
	}
	return Scorecards(cards, fight.EffectiveRounds()), nil
}
