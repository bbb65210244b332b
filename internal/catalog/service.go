package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// EventStatusUpdater recomputes an event's is_upcoming flag after its card changes
type EventStatusUpdater interface {
	ReconcileEvent(ctx context.Context, eventID int) (bool, error)
}

// Service defines the interface for fighter, event and fight operations
type Service interface {
	// Public reads
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.EventDetail, error)
	GetFight(ctx context.Context, id int) (*domain.Fight, error)
	GetFighter(ctx context.Context, id int) (*domain.Fighter, error)
	ListFighterFights(ctx context.Context, fighterID, limit int) ([]domain.Fight, error)

	// Admin fighters
	ListFighters(ctx context.Context, filter domain.FighterFilter) ([]domain.Fighter, error)
	CreateFighter(ctx context.Context, in *domain.FighterInput) (*domain.Fighter, error)
	UpdateFighter(ctx context.Context, id int, in *domain.FighterInput) (*domain.Fighter, error)
	DeleteFighter(ctx context.Context, id int) error

	// Admin events
	GetEvent(ctx context.Context, id int) (*domain.Event, error)
	CreateEvent(ctx context.Context, in *domain.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int, in *domain.EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// Admin fights
	ListFights(ctx context.Context, eventID *int) ([]domain.Fight, error)
	CreateFight(ctx context.Context, in *domain.FightInput) (*domain.Fight, error)
	UpdateFight(ctx context.Context, id int, in *domain.FightInput) (*domain.Fight, error)
	DeleteFight(ctx context.Context, id int) error

	// Ingestion
	ImportEvent(ctx context.Context, ev *domain.ScrapedEvent) (*domain.ImportResult, error)
}

type service struct {
	repo   Repository
	status EventStatusUpdater
}

// NewService creates a new catalog service. status may be nil, in which case
// card edits leave is_upcoming to the periodic reconciler.
func NewService(repo Repository, status EventStatusUpdater) Service {
	return &service{
		repo:   repo,
		status: status,
	}
}

// ListEvents returns events with their fight count and headline bout
func (s *service) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	ids := make([]int, len(events))
	for i := range events {
		ids[i] = events[i].ID
	}
	fights, err := s.repo.ListFightsByEventIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := s.attachFighters(ctx, fights); err != nil {
		return nil, err
	}

	byEvent := make(map[int][]domain.Fight, len(events))
	for _, f := range fights {
		byEvent[f.EventID] = append(byEvent[f.EventID], f)
	}
	for i := range events {
		card := byEvent[events[i].ID]
		events[i].FightCount = len(card)
		events[i].MainEvent = mainEvent(card)
	}
	return events, nil
}

// GetEventBySlug returns an event with its full card, fighters and results
func (s *service) GetEventBySlug(ctx context.Context, slug string) (*domain.EventDetail, error) {
	event, err := s.repo.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	fights, err := s.repo.ListEventFights(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, fights); err != nil {
		return nil, err
	}

	event.FightCount = len(fights)
	event.MainEvent = mainEvent(fights)
	return &domain.EventDetail{Event: *event, Fights: fights}, nil
}

// GetFight returns a fight with its fighters and result
func (s *service) GetFight(ctx context.Context, id int) (*domain.Fight, error) {
	f, err := s.repo.GetFight(ctx, id)
	if err != nil {
		return nil, err
	}
	fights := []domain.Fight{*f}
	if err := s.hydrate(ctx, fights); err != nil {
		return nil, err
	}
	return &fights[0], nil
}

func (s *service) GetFighter(ctx context.Context, id int) (*domain.Fighter, error) {
	return s.repo.GetFighter(ctx, id)
}

// ListFighterFights returns a fighter's most recent bouts, newest first
func (s *service) ListFighterFights(ctx context.Context, fighterID, limit int) ([]domain.Fight, error) {
	if _, err := s.repo.GetFighter(ctx, fighterID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultFighterFightsLimit
	}
	fights, err := s.repo.ListFighterFights(ctx, fighterID, limit)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, fights); err != nil {
		return nil, err
	}
	return fights, nil
}

// ListFighters pages through fighters, clamping the page size
func (s *service) ListFighters(ctx context.Context, filter domain.FighterFilter) ([]domain.Fighter, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = domain.DefaultAdminListLimit
	case filter.Limit > domain.MaxAdminListLimit:
		filter.Limit = domain.MaxAdminListLimit
	}
	return s.repo.ListFighters(ctx, filter)
}

func (s *service) CreateFighter(ctx context.Context, in *domain.FighterInput) (*domain.Fighter, error) {
	f, err := s.repo.CreateFighter(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgFighterSaved, "fighter_id", f.ID, "name", f.Name)
	return f, nil
}

func (s *service) UpdateFighter(ctx context.Context, id int, in *domain.FighterInput) (*domain.Fighter, error) {
	f, err := s.repo.UpdateFighter(ctx, id, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgFighterSaved, "fighter_id", f.ID, "name", f.Name)
	return f, nil
}

func (s *service) DeleteFighter(ctx context.Context, id int) error {
	if err := s.repo.DeleteFighter(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgFighterDeleted, "fighter_id", id)
	return nil
}

func (s *service) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	return s.repo.GetEvent(ctx, id)
}

// CreateEvent stores a new event, deriving its slug from the name when omitted.
// A new event is upcoming unless the payload says otherwise.
func (s *service) CreateEvent(ctx context.Context, in *domain.EventInput) (*domain.Event, error) {
	if err := prepareEvent(in); err != nil {
		return nil, err
	}
	e, err := s.repo.CreateEvent(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgEventSaved, "event_id", e.ID, "slug", e.Slug)
	return e, nil
}

// UpdateEvent replaces an event. Omitting is_upcoming keeps the stored flag.
// For an event with fights the flag is then recomputed from results, so a
// stale value in the payload does not survive.
func (s *service) UpdateEvent(ctx context.Context, id int, in *domain.EventInput) (*domain.Event, error) {
	current, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IsUpcoming == nil {
		in.IsUpcoming = domain.Ptr(current.IsUpcoming)
	}
	if err := prepareEvent(in); err != nil {
		return nil, err
	}
	e, err := s.repo.UpdateEvent(ctx, id, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgEventSaved, "event_id", e.ID, "slug", e.Slug)

	if s.refreshStatus(ctx, e.ID) {
		fresh, err := s.repo.GetEvent(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		e = fresh
	}
	return e, nil
}

func (s *service) DeleteEvent(ctx context.Context, id int) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgEventDeleted, "event_id", id)
	return nil
}

// ListOrganizations returns every promotion with its event count in collation order
func (s *service) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.repo.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	sortOrganizations(orgs)
	return orgs, nil
}

// ListFights returns fights, optionally for one event, with their fighters
func (s *service) ListFights(ctx context.Context, eventID *int) ([]domain.Fight, error) {
	fights, err := s.repo.ListFights(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.attachFighters(ctx, fights); err != nil {
		return nil, err
	}
	return fights, nil
}

// CreateFight adds a bout to an event card and reopens the event if needed
func (s *service) CreateFight(ctx context.Context, in *domain.FightInput) (*domain.Fight, error) {
	if err := s.prepareFight(ctx, in); err != nil {
		return nil, err
	}
	f, err := s.repo.CreateFight(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgFightSaved, "fight_id", f.ID, "event_id", f.EventID)
	s.refreshStatus(ctx, f.EventID)
	return f, nil
}

// UpdateFight replaces a bout. Moving it to another event refreshes both events.
func (s *service) UpdateFight(ctx context.Context, id int, in *domain.FightInput) (*domain.Fight, error) {
	current, err := s.repo.GetFight(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.prepareFight(ctx, in); err != nil {
		return nil, err
	}
	f, err := s.repo.UpdateFight(ctx, id, in)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgFightSaved, "fight_id", f.ID, "event_id", f.EventID)
	s.refreshStatus(ctx, f.EventID)
	if current.EventID != f.EventID {
		s.refreshStatus(ctx, current.EventID)
	}
	return f, nil
}

// DeleteFight removes a bout together with its picks and result
func (s *service) DeleteFight(ctx context.Context, id int) error {
	eventID, err := s.repo.DeleteFight(ctx, id)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgFightDeleted, "fight_id", id, "event_id", eventID)
	s.refreshStatus(ctx, eventID)
	return nil
}

// refreshStatus is best effort; the reconciler job catches anything missed here.
// It reports whether the stored flag changed.
func (s *service) refreshStatus(ctx context.Context, eventID int) bool {
	if s.status == nil {
		return false
	}
	changed, err := s.status.ReconcileEvent(ctx, eventID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStatusRefreshFailed, "event_id", eventID, "error", err)
		return false
	}
	return changed
}

func (s *service) prepareFight(ctx context.Context, in *domain.FightInput) error {
	if in.CardType == "" {
		in.CardType = domain.CardMain
	}
	if !in.CardType.Valid() {
		return invalid(ErrMsgInvalidCardType)
	}
	if in.Rounds != nil && (*in.Rounds < domain.MinRounds || *in.Rounds > domain.MaxRounds) {
		return invalid(fmt.Sprintf(ErrMsgRoundsOutOfRange, domain.MinRounds, domain.MaxRounds))
	}
	if in.ScheduledTime != nil && !domain.ValidClock(*in.ScheduledTime) {
		return invalid(fmt.Sprintf(ErrMsgInvalidClock, FieldScheduledTime))
	}
	if in.Fighter1ID != nil && in.Fighter2ID != nil && *in.Fighter1ID == *in.Fighter2ID {
		return invalid(ErrMsgSameFighter)
	}
	if _, err := s.repo.GetEvent(ctx, in.EventID); err != nil {
		return err
	}
	for _, id := range []*int{in.Fighter1ID, in.Fighter2ID} {
		if id == nil {
			continue
		}
		if *id <= 0 {
			return invalid(ErrMsgInvalidFighterIDs)
		}
		if _, err := s.repo.GetFighter(ctx, *id); err != nil {
			if isNotFound(err) {
				return invalid(fmt.Sprintf(ErrMsgUnknownFighter, *id))
			}
			return err
		}
	}
	return nil
}

// hydrate attaches fighters and official results to fights in place
func (s *service) hydrate(ctx context.Context, fights []domain.Fight) error {
	if len(fights) == 0 {
		return nil
	}
	if err := s.attachFighters(ctx, fights); err != nil {
		return err
	}

	ids := make([]int, len(fights))
	for i := range fights {
		ids[i] = fights[i].ID
	}
	results, err := s.repo.ListResultsByFightIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range fights {
		fights[i].Result = results[fights[i].ID]
	}
	return nil
}

func (s *service) attachFighters(ctx context.Context, fights []domain.Fight) error {
	seen := make(map[int]struct{})
	var ids []int
	for _, f := range fights {
		for _, id := range []*int{f.Fighter1ID, f.Fighter2ID} {
			if id == nil {
				continue
			}
			if _, ok := seen[*id]; ok {
				continue
			}
			seen[*id] = struct{}{}
			ids = append(ids, *id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	fighters, err := s.repo.GetFightersByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range fights {
		if id := fights[i].Fighter1ID; id != nil {
			fights[i].Fighter1 = fighters[*id]
		}
		if id := fights[i].Fighter2ID; id != nil {
			fights[i].Fighter2 = fighters[*id]
		}
	}
	return nil
}

// mainEvent picks the last main-card bout, falling back to the first fight
func mainEvent(card []domain.Fight) *domain.MainEvent {
	if len(card) == 0 {
		return nil
	}
	headline := &card[0]
	best := -1
	for i := range card {
		f := &card[i]
		if f.CardType != domain.CardMain {
			continue
		}
		order := 0
		if f.FightOrder != nil {
			order = *f.FightOrder
		}
		if order > best {
			best = order
			headline = f
		}
	}

	me := &domain.MainEvent{WeightClass: headline.WeightClass}
	if headline.Fighter1 != nil {
		me.Fighter1Name = domain.Ptr(headline.Fighter1.Name)
	}
	if headline.Fighter2 != nil {
		me.Fighter2Name = domain.Ptr(headline.Fighter2.Name)
	}
	return me
}

func prepareEvent(in *domain.EventInput) error {
	if in.TimeMSK != nil && !domain.ValidClock(*in.TimeMSK) {
		return invalid(fmt.Sprintf(ErrMsgInvalidClock, FieldTimeMSK))
	}
	if in.IsUpcoming == nil {
		in.IsUpcoming = domain.Ptr(true)
	}
	return resolveSlug(in)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func invalid(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, detail)
}
