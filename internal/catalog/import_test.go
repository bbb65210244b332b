package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/testing/fixtures"
	"github.com/fightpicks/fightpicks/mocks"
)

func TestImportEvent_NewEvent(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{}
	svc := NewService(repo, status)
	ev := fixtures.New(7).ScrapedEvent(1)
	f1, f2 := ev.Fights[0].Fighter1, ev.Fights[0].Fighter2

	repo.On("GetEventByURL", mock.Anything, ev.URL).Return(nil, domain.ErrEventNotFound)
	repo.On("CreateEvent", mock.Anything, mock.MatchedBy(func(in *domain.EventInput) bool {
		return in.URL == ev.URL && in.Slug == ev.Slug
	})).Return(&domain.Event{ID: 7, URL: ev.URL}, nil)
	repo.On("ListEventFights", mock.Anything, 7).Return([]domain.Fight{}, nil)

	repo.On("GetFighterByName", mock.Anything, f1.Name).Return(nil, domain.ErrFighterNotFound)
	repo.On("CreateFighter", mock.Anything, mock.MatchedBy(func(in *domain.FighterInput) bool {
		return in.Name == f1.Name && in.Wins == f1.Wins && !in.ProfileScraped
	})).Return(&domain.Fighter{ID: 1, Name: f1.Name}, nil)

	// Second fighter exists with profile stats the card page does not carry.
	repo.On("GetFighterByName", mock.Anything, f2.Name).Return(&domain.Fighter{
		ID: 2, Name: f2.Name, Age: domain.Ptr(31), ProfileScraped: true, Wins: 1,
	}, nil)
	repo.On("UpdateFighter", mock.Anything, 2, mock.MatchedBy(func(in *domain.FighterInput) bool {
		return in.Wins == f2.Wins && in.Age != nil && *in.Age == 31 && in.ProfileScraped
	})).Return(&domain.Fighter{ID: 2, Name: f2.Name}, nil)

	repo.On("GetEvent", mock.Anything, 7).Return(&domain.Event{ID: 7}, nil)
	repo.On("GetFighter", mock.Anything, 1).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("GetFighter", mock.Anything, 2).Return(&domain.Fighter{ID: 2}, nil)
	repo.On("CreateFight", mock.Anything, mock.MatchedBy(func(in *domain.FightInput) bool {
		return in.EventID == 7 && *in.Fighter1ID == 1 && *in.Fighter2ID == 2 && in.CardType == domain.CardMain
	})).Return(&domain.Fight{ID: 30, EventID: 7}, nil)
	repo.On("MarkEventScraped", mock.Anything, 7).Return(nil)

	res, err := svc.ImportEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, &domain.ImportResult{EventID: 7, EventCreated: true, FightsSaved: 1, FightersSaved: 2}, res)
	assert.Equal(t, []int{7}, status.calls)
}

func TestImportEvent_ExistingEventUpdatesInPlace(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, &recordingStatus{})
	ev := fixtures.New(8).ScrapedEvent(1)
	ev.Slug = "renamed-on-site"
	ev.Fights[0].Fighter1.Age = domain.Ptr(28)
	f1, f2 := ev.Fights[0].Fighter1, ev.Fights[0].Fighter2
	stored := &domain.Event{ID: 7, URL: ev.URL, Slug: "ufc-300", IsUpcoming: true}
	fight := domain.Fight{ID: 30, EventID: 7, Fighter1ID: domain.Ptr(1), Fighter2ID: domain.Ptr(2)}

	repo.On("GetEventByURL", mock.Anything, ev.URL).Return(stored, nil)
	repo.On("GetEvent", mock.Anything, 7).Return(stored, nil)
	repo.On("UpdateEvent", mock.Anything, 7, mock.MatchedBy(func(in *domain.EventInput) bool {
		return in.Slug == "ufc-300"
	})).Return(stored, nil)
	repo.On("ListEventFights", mock.Anything, 7).Return([]domain.Fight{fight}, nil)

	repo.On("GetFighterByName", mock.Anything, f1.Name).Return(&domain.Fighter{ID: 1, Name: f1.Name}, nil)
	repo.On("UpdateFighter", mock.Anything, 1, mock.MatchedBy(func(in *domain.FighterInput) bool {
		return in.ProfileScraped && *in.Age == 28
	})).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("GetFighterByName", mock.Anything, f2.Name).Return(&domain.Fighter{ID: 2, Name: f2.Name}, nil)
	repo.On("UpdateFighter", mock.Anything, 2, mock.MatchedBy(func(in *domain.FighterInput) bool {
		return !in.ProfileScraped
	})).Return(&domain.Fighter{ID: 2}, nil)

	repo.On("GetFight", mock.Anything, 30).Return(&fight, nil)
	repo.On("GetFighter", mock.Anything, 1).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("GetFighter", mock.Anything, 2).Return(&domain.Fighter{ID: 2}, nil)
	repo.On("UpdateFight", mock.Anything, 30, mock.Anything).Return(&fight, nil)
	repo.On("MarkEventScraped", mock.Anything, 7).Return(nil)

	res, err := svc.ImportEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.False(t, res.EventCreated)
	assert.Equal(t, 1, res.FightsSaved)
	repo.AssertNotCalled(t, "CreateFight", mock.Anything, mock.Anything)
}

func TestImportEvent_RepeatedFighterSavedOnce(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ev := fixtures.New(9).ScrapedEvent(2)
	// The same fighter appears twice, as on a tournament card.
	ev.Fights[1].Fighter1 = ev.Fights[0].Fighter1

	repo.On("GetEventByURL", mock.Anything, ev.URL).Return(nil, domain.ErrEventNotFound)
	repo.On("CreateEvent", mock.Anything, mock.Anything).Return(&domain.Event{ID: 7}, nil)
	repo.On("ListEventFights", mock.Anything, 7).Return(nil, nil)
	repo.On("GetFighterByName", mock.Anything, mock.Anything).Return(nil, domain.ErrFighterNotFound).Times(3)
	for id := 1; id <= 3; id++ {
		repo.On("CreateFighter", mock.Anything, mock.Anything).Return(&domain.Fighter{ID: id}, nil).Once()
	}
	repo.On("GetEvent", mock.Anything, 7).Return(&domain.Event{ID: 7}, nil)
	repo.On("GetFighter", mock.Anything, mock.Anything).Return(&domain.Fighter{}, nil)
	repo.On("CreateFight", mock.Anything, mock.Anything).Return(&domain.Fight{ID: 30, EventID: 7}, nil).Twice()
	repo.On("MarkEventScraped", mock.Anything, 7).Return(nil)

	res, err := svc.ImportEvent(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, 3, res.FightersSaved)
	assert.Equal(t, 2, res.FightsSaved)
}

func TestImportEvent_InvalidEventWritesNothing(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ev := fixtures.New(10).ScrapedEvent(1)
	ev.Fights[0].Fighter2.Name = ""

	_, err := svc.ImportEvent(context.Background(), ev)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "missing fighter name")
}
