package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/mocks"
)

type recordingStatus struct {
	calls   []int
	changed bool
	err     error
}

func (r *recordingStatus) ReconcileEvent(_ context.Context, eventID int) (bool, error) {
	r.calls = append(r.calls, eventID)
	return r.changed, r.err
}

func fighters(ids ...int) map[int]*domain.Fighter {
	out := make(map[int]*domain.Fighter, len(ids))
	for _, id := range ids {
		out[id] = &domain.Fighter{ID: id, Name: map[int]string{1: "Pereira", 2: "Hill", 3: "Holloway", 4: "Gaethje"}[id]}
	}
	return out
}

func TestListEvents(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ctx := context.Background()
	filter := domain.EventFilter{UpcomingOnly: true}

	repo.On("ListEvents", ctx, filter).Return([]domain.Event{{ID: 10, Name: "UFC 300"}, {ID: 11, Name: "UFC 301"}}, nil)
	repo.On("ListFightsByEventIDs", ctx, []int{10, 11}).Return([]domain.Fight{
		{ID: 1, EventID: 10, Fighter1ID: domain.Ptr(3), Fighter2ID: domain.Ptr(4), CardType: domain.CardMain, FightOrder: domain.Ptr(4)},
		{ID: 2, EventID: 10, Fighter1ID: domain.Ptr(1), Fighter2ID: domain.Ptr(2), CardType: domain.CardMain, FightOrder: domain.Ptr(5), WeightClass: domain.Ptr("Light Heavyweight")},
		{ID: 3, EventID: 10, CardType: domain.CardPrelim, FightOrder: domain.Ptr(9)},
	}, nil)
	repo.On("GetFightersByIDs", ctx, []int{3, 4, 1, 2}).Return(fighters(1, 2, 3, 4), nil)

	events, err := svc.ListEvents(ctx, filter)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 3, events[0].FightCount)
	require.NotNil(t, events[0].MainEvent)
	assert.Equal(t, "Pereira", *events[0].MainEvent.Fighter1Name)
	assert.Equal(t, "Hill", *events[0].MainEvent.Fighter2Name)
	assert.Equal(t, "Light Heavyweight", *events[0].MainEvent.WeightClass)

	assert.Equal(t, 0, events[1].FightCount)
	assert.Nil(t, events[1].MainEvent)
}

func TestListEvents_Empty(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("ListEvents", mock.Anything, domain.EventFilter{}).Return([]domain.Event{}, nil)

	events, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMainEvent_PrelimOnlyCard(t *testing.T) {
	card := []domain.Fight{
		{ID: 1, CardType: domain.CardPrelim, Fighter1: &domain.Fighter{Name: "A"}},
		{ID: 2, CardType: domain.CardPrelim, Fighter1: &domain.Fighter{Name: "B"}},
	}
	me := mainEvent(card)
	require.NotNil(t, me)
	assert.Equal(t, "A", *me.Fighter1Name)
	assert.Nil(t, me.Fighter2Name)
}

func TestGetEventBySlug(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ctx := context.Background()
	result := &domain.FightResult{ID: 7, FightID: 1, Winner: domain.WinnerFighter1, Method: domain.MethodKOTKO}

	repo.On("GetEventBySlug", ctx, "ufc-300").Return(&domain.Event{ID: 10, Slug: "ufc-300"}, nil)
	repo.On("ListEventFights", ctx, 10).Return([]domain.Fight{
		{ID: 1, EventID: 10, Fighter1ID: domain.Ptr(1), Fighter2ID: domain.Ptr(2), CardType: domain.CardMain},
		{ID: 2, EventID: 10, Fighter1ID: domain.Ptr(3), CardType: domain.CardPrelim},
	}, nil)
	repo.On("GetFightersByIDs", ctx, []int{1, 2, 3}).Return(fighters(1, 2, 3), nil)
	repo.On("ListResultsByFightIDs", ctx, []int{1, 2}).Return(map[int]*domain.FightResult{1: result}, nil)

	detail, err := svc.GetEventBySlug(ctx, "ufc-300")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.FightCount)
	require.Len(t, detail.Fights, 2)
	assert.Equal(t, result, detail.Fights[0].Result)
	assert.Nil(t, detail.Fights[1].Result)
	assert.Equal(t, "Holloway", detail.Fights[1].Fighter1.Name)
	assert.Nil(t, detail.Fights[1].Fighter2)
}

func TestGetEventBySlug_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("GetEventBySlug", mock.Anything, "nope").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetEventBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetFight_Hydrated(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("GetFight", ctx, 1).Return(&domain.Fight{ID: 1, Fighter1ID: domain.Ptr(1), Fighter2ID: domain.Ptr(2)}, nil)
	repo.On("GetFightersByIDs", ctx, []int{1, 2}).Return(fighters(1, 2), nil)
	repo.On("ListResultsByFightIDs", ctx, []int{1}).Return(map[int]*domain.FightResult{}, nil)

	f, err := svc.GetFight(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pereira", f.Fighter1.Name)
	assert.Equal(t, "Hill", f.Fighter2.Name)
	assert.Nil(t, f.Result)
}

func TestListFighterFights_DefaultLimit(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("GetFighter", ctx, 1).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("ListFighterFights", ctx, 1, domain.DefaultFighterFightsLimit).Return([]domain.Fight{}, nil)

	fights, err := svc.ListFighterFights(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, fights)
}

func TestListFighterFights_UnknownFighter(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("GetFighter", mock.Anything, 99).Return(nil, domain.ErrFighterNotFound)

	_, err := svc.ListFighterFights(context.Background(), 99, 5)
	assert.ErrorIs(t, err, domain.ErrFighterNotFound)
}

func TestListFighters_ClampsPage(t *testing.T) {
	tests := []struct {
		name string
		in   domain.FighterFilter
		want domain.FighterFilter
	}{
		{"defaults", domain.FighterFilter{}, domain.FighterFilter{Limit: domain.DefaultAdminListLimit}},
		{"too large", domain.FighterFilter{Limit: 10_000, Skip: 20}, domain.FighterFilter{Limit: domain.MaxAdminListLimit, Skip: 20}},
		{"negative skip", domain.FighterFilter{Search: "holl", Skip: -3, Limit: 5}, domain.FighterFilter{Search: "holl", Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepository(t)
			svc := NewService(repo, nil)
			repo.On("ListFighters", mock.Anything, tt.want).Return([]domain.Fighter{}, nil)

			_, err := svc.ListFighters(context.Background(), tt.in)
			require.NoError(t, err)
		})
	}
}

func TestCreateEvent_DerivesSlug(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	in := &domain.EventInput{Name: "UFC 300", Organization: "UFC", URL: "https://example.com/ufc-300"}

	repo.On("CreateEvent", mock.Anything, mock.MatchedBy(func(in *domain.EventInput) bool {
		return in.Slug == "ufc-300" && in.IsUpcoming != nil && *in.IsUpcoming
	})).Return(&domain.Event{ID: 1, Slug: "ufc-300", IsUpcoming: true}, nil)

	e, err := svc.CreateEvent(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "ufc-300", e.Slug)
}

func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.EventInput
	}{
		{"bad slug", domain.EventInput{Name: "UFC 300", Slug: "Not A Slug"}},
		{"bad time", domain.EventInput{Name: "UFC 300", TimeMSK: domain.Ptr("25:00")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepository(t)
			svc := NewService(repo, nil)
			_, err := svc.CreateEvent(context.Background(), &tt.in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateEvent_SlugTaken(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("CreateEvent", mock.Anything, mock.Anything).Return(nil, domain.ErrSlugTaken)

	_, err := svc.CreateEvent(context.Background(), &domain.EventInput{Name: "UFC 300"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateEvent_KeepsUpcomingFlag(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("GetEvent", ctx, 4).Return(&domain.Event{ID: 4, IsUpcoming: false}, nil)
	repo.On("UpdateEvent", ctx, 4, mock.MatchedBy(func(in *domain.EventInput) bool {
		return in.IsUpcoming != nil && !*in.IsUpcoming
	})).Return(&domain.Event{ID: 4}, nil)

	_, err := svc.UpdateEvent(ctx, 4, &domain.EventInput{Name: "UFC 299"})
	require.NoError(t, err)
}

func TestUpdateEvent_UpcomingFollowsResults(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{changed: true}
	svc := NewService(repo, status)
	ctx := context.Background()

	// Every fight has a result, so reopening the event by hand is undone.
	repo.On("GetEvent", ctx, 4).Return(&domain.Event{ID: 4, IsUpcoming: false}, nil).Once()
	repo.On("UpdateEvent", ctx, 4, mock.Anything).Return(&domain.Event{ID: 4, IsUpcoming: true}, nil)
	repo.On("GetEvent", ctx, 4).Return(&domain.Event{ID: 4, IsUpcoming: false}, nil).Once()

	e, err := svc.UpdateEvent(ctx, 4, &domain.EventInput{Name: "UFC 299", IsUpcoming: domain.Ptr(true)})
	require.NoError(t, err)
	assert.False(t, e.IsUpcoming)
	assert.Equal(t, []int{4}, status.calls)
}

func TestUpdateEvent_UnchangedStatusSkipsReload(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{}
	svc := NewService(repo, status)
	ctx := context.Background()

	repo.On("GetEvent", ctx, 4).Return(&domain.Event{ID: 4, IsUpcoming: true}, nil).Once()
	repo.On("UpdateEvent", ctx, 4, mock.Anything).Return(&domain.Event{ID: 4, IsUpcoming: true}, nil)

	e, err := svc.UpdateEvent(ctx, 4, &domain.EventInput{Name: "UFC 299"})
	require.NoError(t, err)
	assert.True(t, e.IsUpcoming)
	assert.Equal(t, []int{4}, status.calls)
}

func TestListOrganizations_Sorted(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("ListOrganizations", mock.Anything).Return([]domain.Organization{{Name: "UFC"}, {Name: "bellator"}}, nil)

	orgs, err := svc.ListOrganizations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bellator", "UFC"}, names(orgs))
}

func validFight() *domain.FightInput {
	return &domain.FightInput{
		EventID:    10,
		Fighter1ID: domain.Ptr(1),
		Fighter2ID: domain.Ptr(2),
		Rounds:     domain.Ptr(5),
	}
}

func TestCreateFight(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{}
	svc := NewService(repo, status)
	ctx := context.Background()
	in := validFight()

	repo.On("GetEvent", ctx, 10).Return(&domain.Event{ID: 10}, nil)
	repo.On("GetFighter", ctx, 1).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("GetFighter", ctx, 2).Return(&domain.Fighter{ID: 2}, nil)
	repo.On("CreateFight", ctx, in).Return(&domain.Fight{ID: 30, EventID: 10}, nil)

	f, err := svc.CreateFight(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 30, f.ID)
	assert.Equal(t, domain.CardMain, in.CardType)
	assert.Equal(t, []int{10}, status.calls)
}

func TestCreateFight_TBA(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)
	in := &domain.FightInput{EventID: 10, CardType: domain.CardPrelim}

	repo.On("GetEvent", mock.Anything, 10).Return(&domain.Event{ID: 10}, nil)
	repo.On("CreateFight", mock.Anything, in).Return(&domain.Fight{ID: 31, EventID: 10}, nil)

	_, err := svc.CreateFight(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateFight_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.FightInput)
		want   string
	}{
		{"card type", func(in *domain.FightInput) { in.CardType = "undercard" }, "card_type"},
		{"too many rounds", func(in *domain.FightInput) { in.Rounds = domain.Ptr(6) }, "rounds must be between 1 and 5"},
		{"zero rounds", func(in *domain.FightInput) { in.Rounds = domain.Ptr(0) }, "rounds"},
		{"scheduled time", func(in *domain.FightInput) { in.ScheduledTime = domain.Ptr("7pm") }, "scheduled_time"},
		{"same fighter", func(in *domain.FightInput) { in.Fighter2ID = domain.Ptr(1) }, "themselves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepository(t)
			svc := NewService(repo, nil)
			in := validFight()
			tt.mutate(in)

			_, err := svc.CreateFight(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreateFight_UnknownFighter(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("GetEvent", mock.Anything, 10).Return(&domain.Event{ID: 10}, nil)
	repo.On("GetFighter", mock.Anything, 1).Return(&domain.Fighter{ID: 1}, nil)
	repo.On("GetFighter", mock.Anything, 2).Return(nil, domain.ErrFighterNotFound)

	_, err := svc.CreateFight(context.Background(), validFight())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "fighter 2 does not exist")
}

func TestCreateFight_UnknownEvent(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("GetEvent", mock.Anything, 10).Return(nil, domain.ErrEventNotFound)

	_, err := svc.CreateFight(context.Background(), validFight())
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestUpdateFight_MovedBetweenEvents(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{}
	svc := NewService(repo, status)
	ctx := context.Background()
	in := &domain.FightInput{EventID: 11, CardType: domain.CardMain}

	repo.On("GetFight", ctx, 30).Return(&domain.Fight{ID: 30, EventID: 10}, nil)
	repo.On("GetEvent", ctx, 11).Return(&domain.Event{ID: 11}, nil)
	repo.On("UpdateFight", ctx, 30, in).Return(&domain.Fight{ID: 30, EventID: 11}, nil)

	_, err := svc.UpdateFight(ctx, 30, in)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 10}, status.calls)
}

func TestUpdateFight_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	svc := NewService(repo, nil)

	repo.On("GetFight", mock.Anything, 30).Return(nil, domain.ErrFightNotFound)

	_, err := svc.UpdateFight(context.Background(), 30, validFight())
	assert.ErrorIs(t, err, domain.ErrFightNotFound)
}

func TestDeleteFight_RefreshFailureIsNotFatal(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{err: errors.New("connection reset")}
	svc := NewService(repo, status)

	repo.On("DeleteFight", mock.Anything, 30).Return(10, nil)

	require.NoError(t, svc.DeleteFight(context.Background(), 30))
	assert.Equal(t, []int{10}, status.calls)
}

func TestDeleteFight_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	status := &recordingStatus{}
	svc := NewService(repo, status)

	repo.On("DeleteFight", mock.Anything, 30).Return(0, domain.ErrFightNotFound)

	assert.ErrorIs(t, svc.DeleteFight(context.Background(), 30), domain.ErrFightNotFound)
	assert.Empty(t, status.calls)
}
