package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
)

// UserLookup resolves prediction authors
type UserLookup interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

// Service defines the interface for prediction operations.
// Predictions are immutable once created, so there is no update or delete.
type Service interface {
	Create(ctx context.Context, userID int, in *domain.PredictionInput) (*domain.Prediction, error)
	ListForFight(ctx context.Context, fightID int) ([]domain.Prediction, error)
	ListMine(ctx context.Context, userID int) ([]domain.Prediction, error)
	GetMineForFight(ctx context.Context, userID, fightID int) (*domain.Prediction, error)
}

type service struct {
	repo  Repository
	users UserLookup
}

// NewService creates a new prediction service
func NewService(repo Repository, users UserLookup) Service {
	return &service{
		repo:  repo,
		users: users,
	}
}

// Create stores a user's pick for a fight. Fights with a result are closed.
func (s *service) Create(ctx context.Context, userID int, in *domain.PredictionInput) (*domain.Prediction, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetFight(ctx, in.FightID); err != nil {
		return nil, err
	}
	closed, err := s.repo.FightHasResult(ctx, in.FightID)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, domain.ErrFightResolved
	}

	_, err = s.repo.GetUserFightPrediction(ctx, userID, in.FightID)
	switch {
	case err == nil:
		return nil, domain.ErrPredictionExists
	case !errors.Is(err, domain.ErrPredictionNotFound):
		return nil, err
	}

	// A racing double submit still lands on the unique constraint.
	p, err := s.repo.CreatePrediction(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	metrics.RecordPick(metrics.KindPrediction)
	logger.FromContext(ctx).Info(LogMsgPredictionCreated,
		"prediction_id", p.ID,
		"user_id", userID,
		"fight_id", in.FightID,
		"predicted_winner", in.PredictedWinner,
		"win_method", in.WinMethod)
	return p, nil
}

// ListForFight returns every pick on a fight with its author
func (s *service) ListForFight(ctx context.Context, fightID int) ([]domain.Prediction, error) {
	if _, err := s.repo.GetFight(ctx, fightID); err != nil {
		return nil, err
	}
	preds, err := s.repo.ListFightPredictions(ctx, fightID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	for i := range preds {
		u, err := s.users.GetByID(ctx, preds[i].UserID)
		if err != nil {
			log.Warn(LogMsgUserLookupFailed, "user_id", preds[i].UserID, "error", err)
			continue
		}
		preds[i].User = u
	}
	return preds, nil
}

// ListMine returns a user's picks with their fights
func (s *service) ListMine(ctx context.Context, userID int) ([]domain.Prediction, error) {
	preds, err := s.repo.ListUserPredictions(ctx, userID)
	if err != nil {
		return nil, err
	}

	fights := make(map[int]*domain.Fight)
	for i := range preds {
		id := preds[i].FightID
		f, ok := fights[id]
		if !ok {
			if f, err = s.repo.GetFight(ctx, id); err != nil {
				return nil, err
			}
			fights[id] = f
		}
		preds[i].Fight = f
	}
	return preds, nil
}

func (s *service) GetMineForFight(ctx context.Context, userID, fightID int) (*domain.Prediction, error) {
	return s.repo.GetUserFightPrediction(ctx, userID, fightID)
}

func validate(in *domain.PredictionInput) error {
	if in.FightID <= 0 {
		return invalid(ErrMsgInvalidFightID)
	}
	if !in.PredictedWinner.Valid() {
		return invalid(ErrMsgInvalidWinner)
	}
	if !in.WinMethod.Valid() {
		return invalid(ErrMsgInvalidMethod)
	}
	if in.Confidence != nil && (*in.Confidence < domain.MinConfidence || *in.Confidence > domain.MaxConfidence) {
		return invalid(fmt.Sprintf(ErrMsgInvalidConfidence, domain.MinConfidence, domain.MaxConfidence))
	}
	return nil
}

func invalid(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, detail)
}
