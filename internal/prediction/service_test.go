package prediction

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

type stubUsers map[int]*domain.User

func (s stubUsers) GetByID(_ context.Context, id int) (*domain.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func validInput() *domain.PredictionInput {
	return &domain.PredictionInput{
		FightID:         3,
		PredictedWinner: domain.PredictedFighter1,
		WinMethod:       domain.MethodKOTKO,
		Confidence:      domain.Ptr(4),
	}
}

func TestCreate(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})
	ctx := context.Background()
	in := validInput()

	repo.On("GetFight", ctx, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("FightHasResult", ctx, 3).Return(false, nil)
	repo.On("GetUserFightPrediction", ctx, 1, 3).Return(nil, domain.ErrPredictionNotFound)
	repo.On("CreatePrediction", ctx, 1, in).Return(&domain.Prediction{ID: 50, UserID: 1, FightID: 3}, nil)

	p, err := svc.Create(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, 50, p.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PredictionInput)
		want   string
	}{
		{"draw is not a pick", func(in *domain.PredictionInput) { in.PredictedWinner = "draw" }, "predicted_winner"},
		{"unknown method", func(in *domain.PredictionInput) { in.WinMethod = "split_decision" }, "win_method"},
		{"confidence too high", func(in *domain.PredictionInput) { in.Confidence = domain.Ptr(6) }, "confidence must be between 1 and 5"},
		{"confidence too low", func(in *domain.PredictionInput) { in.Confidence = domain.Ptr(0) }, "confidence"},
		{"missing fight", func(in *domain.PredictionInput) { in.FightID = 0 }, "fight_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPredictionRepository(t)
			svc := NewService(repo, stubUsers{})
			in := validInput()
			tt.mutate(in)

			_, err := svc.Create(context.Background(), 1, in)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreate_FightNotFound(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("GetFight", mock.Anything, 3).Return(nil, domain.ErrFightNotFound)

	_, err := svc.Create(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrFightNotFound)
}

func TestCreate_FightResolved(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("FightHasResult", mock.Anything, 3).Return(true, nil)

	_, err := svc.Create(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrFightResolved)
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "CreatePrediction", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("FightHasResult", mock.Anything, 3).Return(false, nil)
	repo.On("GetUserFightPrediction", mock.Anything, 1, 3).Return(&domain.Prediction{ID: 9}, nil)

	_, err := svc.Create(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrPredictionExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNotCalled(t, "CreatePrediction", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_RacingDuplicateHitsConstraint(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("FightHasResult", mock.Anything, 3).Return(false, nil)
	repo.On("GetUserFightPrediction", mock.Anything, 1, 3).Return(nil, domain.ErrPredictionNotFound)
	repo.On("CreatePrediction", mock.Anything, 1, mock.Anything).Return(nil, domain.ErrPredictionExists)

	_, err := svc.Create(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, domain.ErrPredictionExists)
}

func TestCreate_LookupError(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})
	boom := errors.New("timeout")

	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("FightHasResult", mock.Anything, 3).Return(false, nil)
	repo.On("GetUserFightPrediction", mock.Anything, 1, 3).Return(nil, boom)

	_, err := svc.Create(context.Background(), 1, validInput())
	assert.ErrorIs(t, err, boom)
}

func TestListForFight_AttachesAuthors(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	author := &domain.User{ID: 1, DisplayName: "@poatan"}
	svc := NewService(repo, stubUsers{1: author})

	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil)
	repo.On("ListFightPredictions", mock.Anything, 3).Return([]domain.Prediction{
		{ID: 1, UserID: 1, FightID: 3},
		{ID: 2, UserID: 2, FightID: 3},
	}, nil)

	preds, err := svc.ListForFight(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, preds, 2)
	assert.Same(t, author, preds[0].User)
	assert.Nil(t, preds[1].User, "missing authors are skipped")
}

func TestListMine_AttachesFights(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("ListUserPredictions", mock.Anything, 1).Return([]domain.Prediction{
		{ID: 1, UserID: 1, FightID: 3},
		{ID: 2, UserID: 1, FightID: 3},
		{ID: 3, UserID: 1, FightID: 4},
	}, nil)
	repo.On("GetFight", mock.Anything, 3).Return(&domain.Fight{ID: 3}, nil).Once()
	repo.On("GetFight", mock.Anything, 4).Return(&domain.Fight{ID: 4}, nil).Once()

	preds, err := svc.ListMine(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, preds[1].Fight.ID)
	assert.Equal(t, 4, preds[2].Fight.ID)
}

func TestGetMineForFight_NotFound(t *testing.T) {
	repo := mocks.NewMockPredictionRepository(t)
	svc := NewService(repo, stubUsers{})

	repo.On("GetUserFightPrediction", mock.Anything, 1, 3).Return(nil, domain.ErrPredictionNotFound)

	_, err := svc.GetMineForFight(context.Background(), 1, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
