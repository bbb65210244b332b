package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/resolution"
	"github.com/fightpicks/fightpicks/internal/testing/fixtures"
)

type resolutionEnv struct {
	catalog     *CatalogRepository
	predictions *PredictionRepository
	scorecards  *ScorecardRepository
	users       *UserRepository
	svc         resolution.Service
	gen         *fixtures.Generator
}

func newResolutionEnv(t *testing.T) *resolutionEnv {
	pool := setupTestDB(t)
	gen := fixtures.New(2024)
	t.Logf("fixture seed %d", gen.Seed())
	return &resolutionEnv{
		catalog:     NewCatalogRepository(pool).(*CatalogRepository),
		predictions: NewPredictionRepository(pool).(*PredictionRepository),
		scorecards:  NewScorecardRepository(pool).(*ScorecardRepository),
		users:       NewUserRepository(pool).(*UserRepository),
		svc:         resolution.NewService(NewResultRepository(pool)),
		gen:         gen,
	}
}

// seedEvent creates an upcoming event with n three-round fights
func (e *resolutionEnv) seedEvent(ctx context.Context, t *testing.T, n int) (*domain.Event, []*domain.Fight) {
	t.Helper()
	event, err := e.catalog.CreateEvent(ctx, e.gen.EventInput())
	require.NoError(t, err)

	fights := make([]*domain.Fight, 0, n)
	for i := 0; i < n; i++ {
		a, err := e.catalog.CreateFighter(ctx, e.gen.FighterInput())
		require.NoError(t, err)
		b, err := e.catalog.CreateFighter(ctx, e.gen.FighterInput())
		require.NoError(t, err)
		fight, err := e.catalog.CreateFight(ctx, e.gen.FightInput(event.ID, a.ID, b.ID))
		require.NoError(t, err)
		fights = append(fights, fight)
	}
	return event, fights
}

func (e *resolutionEnv) seedUser(ctx context.Context, t *testing.T) *domain.User {
	t.Helper()
	u, err := e.users.UpsertTelegramUser(ctx, e.gen.TelegramAuthData())
	require.NoError(t, err)
	return u
}

func koResult() *domain.FightResultInput {
	return &domain.FightResultInput{
		Winner:      domain.WinnerFighter1,
		Method:      domain.MethodKOTKO,
		FinishRound: domain.Ptr(2),
		FinishTime:  domain.Ptr("2:34"),
	}
}

func TestResolution_EventClosureAndReversal_Integration(t *testing.T) {
	env := newResolutionEnv(t)
	ctx := context.Background()

	event, fights := env.seedEvent(ctx, t, 2)
	f1, f2 := fights[0], fights[1]
	user := env.seedUser(ctx, t)

	_, err := env.predictions.CreatePrediction(ctx, user.ID, &domain.PredictionInput{
		FightID: f2.ID, PredictedWinner: domain.PredictedFighter1, WinMethod: domain.MethodKOTKO,
	})
	require.NoError(t, err)

	_, err = env.svc.RecordResult(ctx, f1.ID, koResult())
	require.NoError(t, err)
	got, err := env.catalog.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, got.IsUpcoming, "one fight still open")

	_, err = env.svc.RecordResult(ctx, f2.ID, koResult())
	require.NoError(t, err)
	got, err = env.catalog.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, got.IsUpcoming, "every fight has a result")

	pred, err := env.predictions.GetUserFightPrediction(ctx, user.ID, f2.ID)
	require.NoError(t, err)
	require.NotNil(t, pred.IsCorrect)
	assert.True(t, *pred.IsCorrect)
	assert.NotNil(t, pred.ResolvedAt)

	require.NoError(t, env.svc.DeleteResult(ctx, f2.ID))
	got, err = env.catalog.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, got.IsUpcoming)

	pred, err = env.predictions.GetUserFightPrediction(ctx, user.ID, f2.ID)
	require.NoError(t, err)
	assert.Nil(t, pred.IsCorrect)
	assert.Nil(t, pred.ResolvedAt)
}

func TestResolution_ConcurrentSiblingResults_Integration(t *testing.T) {
	env := newResolutionEnv(t)
	ctx := context.Background()

	// Each round races the last two fights of a fresh event.
	for round := 0; round < 5; round++ {
		event, fights := env.seedEvent(ctx, t, 2)

		var wg sync.WaitGroup
		errs := make([]error, len(fights))
		for i, f := range fights {
			wg.Add(1)
			go func(i, fightID int) {
				defer wg.Done()
				_, errs[i] = env.svc.RecordResult(ctx, fightID, koResult())
			}(i, f.ID)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err)
		}

		got, err := env.catalog.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.False(t, got.IsUpcoming, "round %d: every fight has a result", round)
	}
}

func TestResolution_ScorecardGrading_Integration(t *testing.T) {
	env := newResolutionEnv(t)
	ctx := context.Background()

	_, fights := env.seedEvent(ctx, t, 1)
	fight := fights[0]
	user := env.seedUser(ctx, t)

	_, err := env.scorecards.CreateScorecard(ctx, user.ID, &domain.ScorecardInput{
		FightID: fight.ID,
		RoundScores: []domain.RoundScoreInput{
			{RoundNumber: 1, Fighter1Score: 10, Fighter2Score: 8},
			{RoundNumber: 2, Fighter1Score: 9, Fighter2Score: 10},
			{RoundNumber: 3, Fighter1Score: 10, Fighter2Score: 9},
		},
	})
	require.NoError(t, err)

	judge := func(name string, rounds ...[2]int) domain.OfficialScorecardInput {
		card := domain.OfficialScorecardInput{JudgeName: name}
		for i, r := range rounds {
			card.RoundScores = append(card.RoundScores, domain.OfficialRoundScoreInput{
				RoundNumber: i + 1, Fighter1Score: r[0], Fighter2Score: r[1],
			})
		}
		return card
	}
	result, err := env.svc.RecordResult(ctx, fight.ID, &domain.FightResultInput{
		Winner: domain.WinnerFighter1,
		Method: domain.MethodDecision,
		OfficialScorecards: []domain.OfficialScorecardInput{
			judge("J1", [2]int{10, 9}, [2]int{10, 9}, [2]int{10, 9}),
			judge("J2", [2]int{10, 9}, [2]int{9, 10}, [2]int{9, 10}),
			judge("J3", [2]int{10, 9}, [2]int{9, 10}, [2]int{10, 9}),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	card, err := env.scorecards.GetUserFightScorecard(ctx, user.ID, fight.ID)
	require.NoError(t, err)
	require.Len(t, card.RoundScores, 3)

	want := []bool{false, true, true}
	for i, r := range card.RoundScores {
		require.NotNil(t, r.IsCorrect, "round %d", r.RoundNumber)
		assert.Equal(t, want[i], *r.IsCorrect, "round %d", r.RoundNumber)
	}
	assert.Equal(t, 2, card.CorrectRounds)
	assert.Equal(t, 3, card.TotalRounds)
	assert.NotNil(t, card.ResolvedAt)
}
