package scorecard

import (
	"context"
	"errors"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
)

// UserLookup resolves scorecard authors
type UserLookup interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

// Service defines the interface for scorecard operations.
// Scorecards are immutable once created.
type Service interface {
	Create(ctx context.Context, userID int, in *domain.ScorecardInput) (*domain.Scorecard, error)
	ListForFight(ctx context.Context, fightID int) ([]domain.Scorecard, error)
	ListMine(ctx context.Context, userID int) ([]domain.Scorecard, error)
	GetMineForFight(ctx context.Context, userID, fightID int) (*domain.Scorecard, error)
}

type service struct {
	repo  Repository
	users UserLookup
}

// NewService creates a new scorecard service
func NewService(repo Repository, users UserLookup) Service {
	return &service{
		repo:  repo,
		users: users,
	}
}

// Create stores a user's round-by-round card. The card must score every
// scheduled round exactly once, and the fight must not have a result yet.
func (s *service) Create(ctx context.Context, userID int, in *domain.ScorecardInput) (*domain.Scorecard, error) {
	if in.FightID <= 0 {
		return nil, invalid(ErrMsgInvalidFightID)
	}
	fight, err := s.repo.GetFight(ctx, in.FightID)
	if err != nil {
		return nil, err
	}
	if err := ValidateRounds(in.RoundScores, fight.EffectiveRounds()); err != nil {
		return nil, err
	}
	closed, err := s.repo.FightHasResult(ctx, in.FightID)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, domain.ErrFightResolved
	}

	_, err = s.repo.GetUserFightScorecard(ctx, userID, in.FightID)
	switch {
	case err == nil:
		return nil, domain.ErrScorecardExists
	case !errors.Is(err, domain.ErrScorecardNotFound):
		return nil, err
	}

	card, err := s.repo.CreateScorecard(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	metrics.RecordPick(metrics.KindScorecard)
	logger.FromContext(ctx).Info(LogMsgScorecardCreated,
		"scorecard_id", card.ID,
		"user_id", userID,
		"fight_id", in.FightID,
		"winner", card.Winner)
	return card, nil
}

// ValidateRounds checks that rounds covers 1..want exactly once with legal scores
func ValidateRounds(rounds []domain.RoundScoreInput, want int) error {
	if len(rounds) != want {
		return invalid(fmt.Sprintf(ErrMsgRoundCount, want, len(rounds)))
	}
	seen := make(map[int]bool, len(rounds))
	for _, r := range rounds {
		if r.RoundNumber < 1 || r.RoundNumber > want {
			return invalid(fmt.Sprintf(ErrMsgRoundOutOfRange, r.RoundNumber, want))
		}
		if seen[r.RoundNumber] {
			return invalid(fmt.Sprintf(ErrMsgRoundDuplicate, r.RoundNumber))
		}
		seen[r.RoundNumber] = true
		if !validScore(r.Fighter1Score) || !validScore(r.Fighter2Score) {
			return invalid(fmt.Sprintf(ErrMsgScoreOutOfRange, r.RoundNumber, domain.MinRoundScore, domain.MaxRoundScore))
		}
	}
	return nil
}

func (s *service) ListForFight(ctx context.Context, fightID int) ([]domain.Scorecard, error) {
	if _, err := s.repo.GetFight(ctx, fightID); err != nil {
		return nil, err
	}
	cards, err := s.repo.ListFightScorecards(ctx, fightID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	for i := range cards {
		u, err := s.users.GetByID(ctx, cards[i].UserID)
		if err != nil {
			log.Warn(LogMsgUserLookupFailed, "user_id", cards[i].UserID, "error", err)
			continue
		}
		cards[i].User = u
	}
	return cards, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]domain.Scorecard, error) {
	cards, err := s.repo.ListUserScorecards(ctx, userID)
	if err != nil {
		return nil, err
	}

	fights := make(map[int]*domain.Fight)
	for i := range cards {
		id := cards[i].FightID
		f, ok := fights[id]
		if !ok {
			if f, err = s.repo.GetFight(ctx, id); err != nil {
				return nil, err
			}
			fights[id] = f
		}
		cards[i].Fight = f
	}
	return cards, nil
}

func (s *service) GetMineForFight(ctx context.Context, userID, fightID int) (*domain.Scorecard, error) {
	return s.repo.GetUserFightScorecard(ctx, userID, fightID)
}

func validScore(v int) bool {
	return v >= domain.MinRoundScore && v <= domain.MaxRoundScore
}

func invalid(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, detail)
}
