package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/testing/fixtures"
	"github.com/fightpicks/fightpicks/mocks"
)

func TestDecodeScrapedEvents(t *testing.T) {
	gen := fixtures.New(42)
	want := []domain.ScrapedEvent{*gen.ScrapedEvent(2), *gen.ScrapedEvent(1)}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := decodeScrapedEvents(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].URL, got[0].URL)
	assert.Len(t, got[0].Fights, 2)
	assert.Equal(t, want[0].Fights[1].Fighter2.Name, got[0].Fights[1].Fighter2.Name)

	_, err = decodeScrapedEvents(strings.NewReader(`{"name": "not an array"}`))
	assert.Error(t, err)
}

func TestImportEvents_ContinuesPastFailures(t *testing.T) {
	gen := fixtures.New(43)
	events := []domain.ScrapedEvent{*gen.ScrapedEvent(3), *gen.ScrapedEvent(1), *gen.ScrapedEvent(2)}
	svc := mocks.NewMockCatalogService(t)
	ctx := context.Background()

	svc.On("ImportEvent", ctx, mock.MatchedBy(func(ev *domain.ScrapedEvent) bool { return ev.URL == events[0].URL })).
		Return(&domain.ImportResult{EventID: 1, EventCreated: true, FightsSaved: 3, FightersSaved: 6}, nil)
	svc.On("ImportEvent", ctx, mock.MatchedBy(func(ev *domain.ScrapedEvent) bool { return ev.URL == events[1].URL })).
		Return(nil, errors.New("slug taken"))
	svc.On("ImportEvent", ctx, mock.MatchedBy(func(ev *domain.ScrapedEvent) bool { return ev.URL == events[2].URL })).
		Return(&domain.ImportResult{EventID: 3, FightsSaved: 2, FightersSaved: 3}, nil)

	summary := importEvents(ctx, svc, events)

	assert.Equal(t, importSummary{
		EventsSaved:   2,
		EventsCreated: 1,
		FightsSaved:   5,
		FightersSaved: 9,
		Failed:        []string{events[1].URL},
	}, summary)
}

func TestValidateScrapedEvents(t *testing.T) {
	gen := fixtures.New(44)
	good, bad := gen.ScrapedEvent(1), gen.ScrapedEvent(1)
	bad.Organization = ""
	bad.URL = ""

	problems := validateScrapedEvents([]domain.ScrapedEvent{*good, *bad})

	require.Len(t, problems, 1)
	assert.Contains(t, problems, "#2 "+bad.Name)
}
