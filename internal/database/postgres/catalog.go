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

var (
	errFightMatchupExists = fmt.Errorf("%w: %s", domain.ErrConflict, ErrMsgFightMatchupExists)

	fightRefErrors = map[string]error{
		ConstraintFightEvent:    domain.ErrEventNotFound,
		ConstraintFightFighter1: domain.ErrFighterNotFound,
		ConstraintFightFighter2: domain.ErrFighterNotFound,
	}
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{
		db: db,
		q:  generated.New(db),
	}
}

// ---- Fighters ----

func (r *CatalogRepository) GetFighter(ctx context.Context, id int) (*domain.Fighter, error) {
	row, err := r.q.GetFighter(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFighterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFighter, err)
	}
	fighter := mapFighter(row)
	return &fighter, nil
}

// GetFighterByName returns the oldest fighter with exactly this name
func (r *CatalogRepository) GetFighterByName(ctx context.Context, name string) (*domain.Fighter, error) {
	row, err := r.q.GetFighterByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFighterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFighter, err)
	}
	fighter := mapFighter(row)
	return &fighter, nil
}

func (r *CatalogRepository) GetFightersByIDs(ctx context.Context, ids []int) (map[int]*domain.Fighter, error) {
	out := make(map[int]*domain.Fighter, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.GetFightersByIDs(ctx, idsToInt32(ids))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFighter, err)
	}
	for _, row := range rows {
		fighter := mapFighter(row)
		out[fighter.ID] = &fighter
	}
	return out, nil
}

func (r *CatalogRepository) ListFighters(ctx context.Context, filter domain.FighterFilter) ([]domain.Fighter, error) {
	rows, err := r.q.ListFighters(ctx, generated.ListFightersParams{
		Search:  strToText(filter.Search),
		Skip:    int32(filter.Skip),
		MaxRows: int32(filter.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFighters, err)
	}
	out := make([]domain.Fighter, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFighter(row))
	}
	return out, nil
}

func (r *CatalogRepository) CreateFighter(ctx context.Context, in *domain.FighterInput) (*domain.Fighter, error) {
	row, err := r.q.CreateFighter(ctx, generated.CreateFighterParams{
		Name:             in.Name,
		NameEnglish:      ptrToText(in.NameEnglish),
		Country:          ptrToText(in.Country),
		Wins:             int32(in.Wins),
		Losses:           int32(in.Losses),
		Draws:            int32(in.Draws),
		Age:              ptrToInt4(in.Age),
		HeightCm:         ptrToInt4(in.HeightCM),
		WeightKg:         ptrToFloat8(in.WeightKG),
		ReachCm:          ptrToInt4(in.ReachCM),
		Style:            ptrToText(in.Style),
		WeightClass:      ptrToText(in.WeightClass),
		Ranking:          ptrToText(in.Ranking),
		WinsKoTko:        int32(in.WinsKOTKO),
		WinsSubmission:   int32(in.WinsSubmission),
		WinsDecision:     int32(in.WinsDecision),
		LossesKoTko:      int32(in.LossesKOTKO),
		LossesSubmission: int32(in.LossesSubmission),
		LossesDecision:   int32(in.LossesDecision),
		ProfileUrl:       ptrToText(in.ProfileURL),
		ProfileScraped:   in.ProfileScraped,
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveFighter, err, nil, nil, nil)
	}
	fighter := mapFighter(row)
	return &fighter, nil
}

func (r *CatalogRepository) UpdateFighter(ctx context.Context, id int, in *domain.FighterInput) (*domain.Fighter, error) {
	row, err := r.q.UpdateFighter(ctx, generated.UpdateFighterParams{
		ID:               int32(id),
		Name:             in.Name,
		NameEnglish:      ptrToText(in.NameEnglish),
		Country:          ptrToText(in.Country),
		Wins:             int32(in.Wins),
		Losses:           int32(in.Losses),
		Draws:            int32(in.Draws),
		Age:              ptrToInt4(in.Age),
		HeightCm:         ptrToInt4(in.HeightCM),
		WeightKg:         ptrToFloat8(in.WeightKG),
		ReachCm:          ptrToInt4(in.ReachCM),
		Style:            ptrToText(in.Style),
		WeightClass:      ptrToText(in.WeightClass),
		Ranking:          ptrToText(in.Ranking),
		WinsKoTko:        int32(in.WinsKOTKO),
		WinsSubmission:   int32(in.WinsSubmission),
		WinsDecision:     int32(in.WinsDecision),
		LossesKoTko:      int32(in.LossesKOTKO),
		LossesSubmission: int32(in.LossesSubmission),
		LossesDecision:   int32(in.LossesDecision),
		ProfileUrl:       ptrToText(in.ProfileURL),
		ProfileScraped:   in.ProfileScraped,
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveFighter, err, domain.ErrFighterNotFound, nil, nil)
	}
	fighter := mapFighter(row)
	return &fighter, nil
}

func (r *CatalogRepository) DeleteFighter(ctx context.Context, id int) error {
	n, err := r.q.DeleteFighter(ctx, int32(id))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteFighter, err)
	}
	if n == 0 {
		return domain.ErrFighterNotFound
	}
	return nil
}

// ---- Events ----

func (r *CatalogRepository) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	row, err := r.q.GetEvent(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvent, err)
	}
	event := mapEvent(row)
	return &event, nil
}

func (r *CatalogRepository) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	row, err := r.q.GetEventBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvent, err)
	}
	event := mapEvent(row)
	return &event, nil
}

func (r *CatalogRepository) GetEventByURL(ctx context.Context, url string) (*domain.Event, error) {
	row, err := r.q.GetEventByURL(ctx, url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEvent, err)
	}
	event := mapEvent(row)
	return &event, nil
}

func (r *CatalogRepository) MarkEventScraped(ctx context.Context, id int) error {
	if err := r.q.MarkEventScraped(ctx, int32(id)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEvent, err)
	}
	return nil
}

// ListEvents returns upcoming events soonest first, or every event newest first.
func (r *CatalogRepository) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	var (
		rows []generated.Event
		err  error
	)
	if filter.UpcomingOnly {
		rows, err = r.q.ListUpcomingEvents(ctx)
	} else {
		rows, err = r.q.ListEvents(ctx, strToText(filter.Organization))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}

	out := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		if filter.UpcomingOnly && filter.Organization != "" && row.Organization != filter.Organization {
			continue
		}
		out = append(out, mapEvent(row))
	}
	return out, nil
}

func (r *CatalogRepository) CreateEvent(ctx context.Context, in *domain.EventInput) (*domain.Event, error) {
	row, err := r.q.CreateEvent(ctx, generated.CreateEventParams{
		Name:         in.Name,
		Organization: in.Organization,
		EventDate:    ptrToDate(in.EventDate),
		TimeMsk:      ptrToText(in.TimeMSK),
		Location:     ptrToText(in.Location),
		Url:          in.URL,
		Slug:         in.Slug,
		IsUpcoming:   in.IsUpcoming == nil || *in.IsUpcoming,
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveEvent, err, nil, domain.ErrSlugTaken, nil)
	}
	event := mapEvent(row)
	return &event, nil
}

func (r *CatalogRepository) UpdateEvent(ctx context.Context, id int, in *domain.EventInput) (*domain.Event, error) {
	row, err := r.q.UpdateEvent(ctx, generated.UpdateEventParams{
		ID:           int32(id),
		Name:         in.Name,
		Organization: in.Organization,
		EventDate:    ptrToDate(in.EventDate),
		TimeMsk:      ptrToText(in.TimeMSK),
		Location:     ptrToText(in.Location),
		Url:          in.URL,
		Slug:         in.Slug,
		IsUpcoming:   in.IsUpcoming == nil || *in.IsUpcoming,
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveEvent, err, domain.ErrEventNotFound, domain.ErrSlugTaken, nil)
	}
	event := mapEvent(row)
	return &event, nil
}

func (r *CatalogRepository) DeleteEvent(ctx context.Context, id int) error {
	n, err := r.q.DeleteEvent(ctx, int32(id))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEvent, err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *CatalogRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.q.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListOrgs, err)
	}
	out := make([]domain.Organization, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Organization{Name: row.Organization, EventCount: int(row.EventCount)})
	}
	return out, nil
}

// ---- Fights ----

func (r *CatalogRepository) GetFight(ctx context.Context, id int) (*domain.Fight, error) {
	return getFight(ctx, r.q, id)
}

func (r *CatalogRepository) ListEventFights(ctx context.Context, eventID int) ([]domain.Fight, error) {
	rows, err := r.q.ListEventFights(ctx, int32(eventID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}
	return mapFights(rows), nil
}

func (r *CatalogRepository) ListFightsByEventIDs(ctx context.Context, eventIDs []int) ([]domain.Fight, error) {
	if len(eventIDs) == 0 {
		return []domain.Fight{}, nil
	}
	rows, err := r.q.ListFightsByEventIDs(ctx, idsToInt32(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}
	return mapFights(rows), nil
}

func (r *CatalogRepository) ListFights(ctx context.Context, eventID *int) ([]domain.Fight, error) {
	rows, err := r.q.ListFights(ctx, ptrToInt4(eventID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}
	return mapFights(rows), nil
}

func (r *CatalogRepository) ListFighterFights(ctx context.Context, fighterID, limit int) ([]domain.Fight, error) {
	rows, err := r.q.ListFighterFights(ctx, generated.ListFighterFightsParams{
		FighterID: int32(fighterID),
		MaxRows:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFights, err)
	}
	out := make([]domain.Fight, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFighterFightRow(row))
	}
	return out, nil
}

func (r *CatalogRepository) CreateFight(ctx context.Context, in *domain.FightInput) (*domain.Fight, error) {
	row, err := r.q.CreateFight(ctx, generated.CreateFightParams{
		EventID:       int32(in.EventID),
		Fighter1ID:    ptrToInt4(in.Fighter1ID),
		Fighter2ID:    ptrToInt4(in.Fighter2ID),
		CardType:      string(cardTypeOrDefault(in.CardType)),
		WeightClass:   ptrToText(in.WeightClass),
		Rounds:        ptrToInt4(in.Rounds),
		ScheduledTime: ptrToText(in.ScheduledTime),
		FightOrder:    ptrToInt4(in.FightOrder),
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveFight, err, nil, errFightMatchupExists, fightRefErrors)
	}
	fight := mapFight(row)
	return &fight, nil
}

func (r *CatalogRepository) UpdateFight(ctx context.Context, id int, in *domain.FightInput) (*domain.Fight, error) {
	row, err := r.q.UpdateFight(ctx, generated.UpdateFightParams{
		ID:            int32(id),
		EventID:       int32(in.EventID),
		Fighter1ID:    ptrToInt4(in.Fighter1ID),
		Fighter2ID:    ptrToInt4(in.Fighter2ID),
		CardType:      string(cardTypeOrDefault(in.CardType)),
		WeightClass:   ptrToText(in.WeightClass),
		Rounds:        ptrToInt4(in.Rounds),
		ScheduledTime: ptrToText(in.ScheduledTime),
		FightOrder:    ptrToInt4(in.FightOrder),
	})
	if err != nil {
		return nil, writeError(ErrMsgFailedToSaveFight, err, domain.ErrFightNotFound, errFightMatchupExists, fightRefErrors)
	}
	fight := mapFight(row)
	return &fight, nil
}

func (r *CatalogRepository) DeleteFight(ctx context.Context, id int) (int, error) {
	eventID, err := r.q.DeleteFight(ctx, int32(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrFightNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteFight, err)
	}
	return int(eventID), nil
}

// ListResultsByFightIDs returns the recorded results keyed by fight id.
// Fights without a result are absent from the map.
func (r *CatalogRepository) ListResultsByFightIDs(ctx context.Context, fightIDs []int) (map[int]*domain.FightResult, error) {
	out := make(map[int]*domain.FightResult, len(fightIDs))
	if len(fightIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.ListFightResultsByFightIDs(ctx, idsToInt32(fightIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListResults, err)
	}
	results, err := withOfficialScorecards(ctx, r.q, rows)
	if err != nil {
		return nil, err
	}
	for fightID, result := range results {
		out[int(fightID)] = result
	}
	return out, nil
}

func mapFights(rows []generated.Fight) []domain.Fight {
	out := make([]domain.Fight, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFight(row))
	}
	return out
}

func cardTypeOrDefault(c domain.CardType) domain.CardType {
	if c == "" {
		return domain.CardMain
	}
	return c
}
