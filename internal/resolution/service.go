package resolution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/metrics"
	"github.com/fightpicks/fightpicks/internal/repository"
)

// Service is the only writer of fight results and resolution fields.
type Service interface {
	RecordResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error)
	UpdateResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error)
	DeleteResult(ctx context.Context, fightID int) error
	Resolve(ctx context.Context, fightID int) (*domain.ResolutionSummary, error)
	GetResult(ctx context.Context, fightID int) (*domain.FightResult, error)

	ReconcileEvent(ctx context.Context, eventID int) (bool, error)
	ReconcileEvents(ctx context.Context) (int, error)
}

type service struct {
	repo repository.Result
	now  func() time.Time
}

// Option configures the service.
type Option func(*service)

// WithClock overrides the resolution timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new resolution service
func NewService(repo repository.Result, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetResult(ctx context.Context, fightID int) (*domain.FightResult, error) {
	return s.repo.GetResult(ctx, fightID)
}

func (s *service) RecordResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error) {
	result, _, err := s.write(ctx, domain.ResolutionActionCreate, fightID, in)
	return result, err
}

func (s *service) UpdateResult(ctx context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error) {
	result, _, err := s.write(ctx, domain.ResolutionActionUpdate, fightID, in)
	return result, err
}

func (s *service) DeleteResult(ctx context.Context, fightID int) error {
	_, _, err := s.write(ctx, domain.ResolutionActionDelete, fightID, nil)
	return err
}

func (s *service) Resolve(ctx context.Context, fightID int) (*domain.ResolutionSummary, error) {
	_, summary, err := s.write(ctx, domain.ResolutionActionRegrade, fightID, nil)
	return summary, err
}

// write runs one resolution pass in a single transaction and reports it
// once the transaction has committed.
func (s *service) write(ctx context.Context, action domain.ResolutionAction, fightID int, in *domain.FightResultInput) (*domain.FightResult, *domain.ResolutionSummary, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	result, summary, err := s.resolve(ctx, action, fightID, in)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrConflict) {
			log.Error(LogMsgResolutionFailed, "action", action, "fight_id", fightID, "error", err)
		}
		return nil, nil, err
	}

	metrics.RecordResolution(summary, time.Since(start))
	log.Info(logMessage(action),
		"fight_id", summary.FightID,
		"event_id", summary.EventID,
		"predictions", summary.PredictionsGraded,
		"predictions_correct", summary.PredictionsCorrect,
		"scorecards", summary.ScorecardsGraded,
		"rounds_correct", summary.RoundsCorrect)
	if summary.EventStatusChanged {
		log.Info(LogMsgEventStatusChanged, "event_id", summary.EventID, "is_upcoming", summary.EventUpcoming)
	}
	return result, summary, nil
}

func (s *service) resolve(ctx context.Context, action domain.ResolutionAction, fightID int, in *domain.FightResultInput) (*domain.FightResult, *domain.ResolutionSummary, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToBegin, err)
	}
	defer repository.SafeRollback(ctx, tx)

	fight, err := tx.LockFight(ctx, fightID)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.applyResult(ctx, tx, action, fight, in)
	if err != nil {
		return nil, nil, err
	}
	summary := &domain.ResolutionSummary{
		Action:  action,
		FightID: fight.ID,
		EventID: fight.EventID,
		Cleared: result == nil,
	}
	if err := s.grade(ctx, tx, fight.ID, result, summary); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToGrade, err)
	}

	if result != nil {
		if err := tx.MarkResolved(ctx, result.ID); err != nil {
			return nil, nil, err
		}
		result.IsResolved = true
	}

	if err := closeEvent(ctx, tx, fight.EventID, summary); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToClosure, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return result, summary, nil
}

// applyResult performs the write for action and returns the result to grade
// against. A nil result means the fight has none.
func (s *service) applyResult(ctx context.Context, tx repository.ResultTx, action domain.ResolutionAction, fight *domain.Fight, in *domain.FightResultInput) (*domain.FightResult, error) {
	switch action {
	case domain.ResolutionActionCreate, domain.ResolutionActionUpdate:
		if err := ValidateResultInput(in, fight.EffectiveRounds()); err != nil {
			return nil, err
		}
		_, err := tx.GetResult(ctx, fight.ID)
		switch {
		case err == nil && action == domain.ResolutionActionCreate:
			return nil, domain.ErrResultExists
		case errors.Is(err, domain.ErrResultNotFound) && action == domain.ResolutionActionUpdate:
			return nil, domain.ErrResultNotFound
		case err != nil && !errors.Is(err, domain.ErrResultNotFound):
			return nil, err
		}
		return tx.UpsertResult(ctx, fight.ID, in)

	case domain.ResolutionActionDelete:
		if err := tx.DeleteResult(ctx, fight.ID); err != nil {
			return nil, err
		}
		return nil, nil

	default:
		result, err := tx.GetResult(ctx, fight.ID)
		if errors.Is(err, domain.ErrResultNotFound) {
			return nil, nil
		}
		return result, err
	}
}

// grade recomputes and persists the resolution fields of every pick on the fight.
func (s *service) grade(ctx context.Context, tx repository.ResultTx, fightID int, result *domain.FightResult, summary *domain.ResolutionSummary) error {
	predictions, err := tx.ListFightPredictions(ctx, fightID)
	if err != nil {
		return err
	}
	scorecards, err := tx.ListFightScorecards(ctx, fightID)
	if err != nil {
		return err
	}

	var g Grading
	if result == nil {
		g = Unresolve(predictions, scorecards)
	} else {
		g = Grade(result, predictions, scorecards, s.now())
	}

	for i := range g.Predictions {
		p := &g.Predictions[i]
		if err := tx.UpdatePredictionResolution(ctx, p.ID, p.IsCorrect, p.ResolvedAt); err != nil {
			return err
		}
	}
	for i := range g.Scorecards {
		if err := tx.UpdateScorecardResolution(ctx, &g.Scorecards[i]); err != nil {
			return err
		}
	}

	summarize(g, summary)
	return nil
}

// closeEvent recomputes is_upcoming for the event. An event without fights
// keeps its current flag. The event lock makes the count see every sibling
// fight's committed result.
func closeEvent(ctx context.Context, tx repository.ResultTx, eventID int, summary *domain.ResolutionSummary) error {
	if err := tx.LockEvent(ctx, eventID); err != nil {
		return err
	}
	closure, err := tx.GetEventClosure(ctx, eventID)
	if err != nil {
		return err
	}
	if closure.TotalFights == 0 {
		return nil
	}
	upcoming := closure.Upcoming(true)
	changed, err := tx.SetEventUpcoming(ctx, eventID, upcoming)
	if err != nil {
		return err
	}
	summary.EventUpcoming = upcoming
	summary.EventStatusChanged = changed
	return nil
}

func (s *service) ReconcileEvent(ctx context.Context, eventID int) (bool, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToBegin, err)
	}
	defer repository.SafeRollback(ctx, tx)

	summary := &domain.ResolutionSummary{EventID: eventID}
	if err := closeEvent(ctx, tx, eventID, summary); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClosure, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}

	if summary.EventStatusChanged {
		metrics.EventStatusTransitions.Inc()
		logger.FromContext(ctx).Info(LogMsgEventStatusChanged, "event_id", eventID, "is_upcoming", summary.EventUpcoming)
	}
	return summary.EventStatusChanged, nil
}

// ReconcileEvents re-evaluates every event that has fights and returns how
// many changed. A failing event is logged and skipped.
func (s *service) ReconcileEvents(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.repo.ListEventIDsWithFights(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		ok, err := s.ReconcileEvent(ctx, id)
		if err != nil {
			log.Warn(LogMsgReconcileFailed, "event_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		if ok {
			changed++
		}
	}

	log.Info(LogMsgEventsReconciled, "events", len(ids), "changed", changed, "failed", len(errs))
	return changed, errors.Join(errs...)
}

func logMessage(action domain.ResolutionAction) string {
	switch action {
	case domain.ResolutionActionCreate:
		return LogMsgResultRecorded
	case domain.ResolutionActionUpdate:
		return LogMsgResultUpdated
	case domain.ResolutionActionDelete:
		return LogMsgResultDeleted
	}
	return LogMsgFightRegraded
}
