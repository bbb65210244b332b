package repository

import (
	"context"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Catalog defines persistence for fighters, events and fights
type Catalog interface {
	GetFighter(ctx context.Context, id int) (*domain.Fighter, error)
	GetFighterByName(ctx context.Context, name string) (*domain.Fighter, error)
	GetFightersByIDs(ctx context.Context, ids []int) (map[int]*domain.Fighter, error)
	ListFighters(ctx context.Context, filter domain.FighterFilter) ([]domain.Fighter, error)
	CreateFighter(ctx context.Context, in *domain.FighterInput) (*domain.Fighter, error)
	UpdateFighter(ctx context.Context, id int, in *domain.FighterInput) (*domain.Fighter, error)
	DeleteFighter(ctx context.Context, id int) error

	GetEvent(ctx context.Context, id int) (*domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)
	GetEventByURL(ctx context.Context, url string) (*domain.Event, error)
	// MarkEventScraped bumps scraped_at after an import refreshed the event
	MarkEventScraped(ctx context.Context, id int) error
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	// CreateEvent and UpdateEvent expect a resolved slug and a non-nil IsUpcoming
	CreateEvent(ctx context.Context, in *domain.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int, in *domain.EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	GetFight(ctx context.Context, id int) (*domain.Fight, error)
	ListEventFights(ctx context.Context, eventID int) ([]domain.Fight, error)
	ListFightsByEventIDs(ctx context.Context, eventIDs []int) ([]domain.Fight, error)
	ListFights(ctx context.Context, eventID *int) ([]domain.Fight, error)
	ListFighterFights(ctx context.Context, fighterID, limit int) ([]domain.Fight, error)
	CreateFight(ctx context.Context, in *domain.FightInput) (*domain.Fight, error)
	UpdateFight(ctx context.Context, id int, in *domain.FightInput) (*domain.Fight, error)
	// DeleteFight returns the event the fight belonged to
	DeleteFight(ctx context.Context, id int) (int, error)

	ListResultsByFightIDs(ctx context.Context, fightIDs []int) (map[int]*domain.FightResult, error)
}
