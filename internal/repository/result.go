package repository

import (
	"context"
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Result defines persistence for official fight results
type Result interface {
	GetResult(ctx context.Context, fightID int) (*domain.FightResult, error)
	ListEventIDsWithFights(ctx context.Context) ([]int, error)
	BeginTx(ctx context.Context) (ResultTx, error)
}

// ResultTx is a single resolution pass. LockFight must be called first so
// concurrent writers for the same fight queue behind the row lock. LockEvent
// is taken after it, before the closure count, so sibling fights of one
// event serialize their status update.
type ResultTx interface {
	Tx
	LockFight(ctx context.Context, fightID int) (*domain.Fight, error)
	GetResult(ctx context.Context, fightID int) (*domain.FightResult, error)
	// UpsertResult creates the result or replaces it together with its official scorecards
	UpsertResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error)
	DeleteResult(ctx context.Context, fightID int) error
	MarkResolved(ctx context.Context, resultID int) error

	ListFightPredictions(ctx context.Context, fightID int) ([]domain.Prediction, error)
	ListFightScorecards(ctx context.Context, fightID int) ([]domain.Scorecard, error)
	UpdatePredictionResolution(ctx context.Context, predictionID int, isCorrect *bool, resolvedAt *time.Time) error
	// UpdateScorecardResolution persists the card's counters and every round's is_correct
	UpdateScorecardResolution(ctx context.Context, card *domain.Scorecard) error

	LockEvent(ctx context.Context, eventID int) error
	GetEventClosure(ctx context.Context, eventID int) (domain.EventClosure, error)
	// SetEventUpcoming reports whether the flag changed
	SetEventUpcoming(ctx context.Context, eventID int, upcoming bool) (bool, error)
}
