package resolution

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/repository"
)

var (
	errInjected       = errors.New("injected failure")
	errEventNotLocked = errors.New("event closure read without event lock")
)

type storeState struct {
	fights      map[int]domain.Fight
	results     map[int]domain.FightResult
	predictions map[int]domain.Prediction
	scorecards  map[int]domain.Scorecard
	upcoming    map[int]bool
}

func (s storeState) clone() storeState {
	out := storeState{
		fights:      make(map[int]domain.Fight, len(s.fights)),
		results:     make(map[int]domain.FightResult, len(s.results)),
		predictions: make(map[int]domain.Prediction, len(s.predictions)),
		scorecards:  make(map[int]domain.Scorecard, len(s.scorecards)),
		upcoming:    make(map[int]bool, len(s.upcoming)),
	}
	for k, v := range s.fights {
		out.fights[k] = v
	}
	for k, v := range s.results {
		v.OfficialScorecards = slices.Clone(v.OfficialScorecards)
		out.results[k] = v
	}
	for k, v := range s.predictions {
		out.predictions[k] = v
	}
	for k, v := range s.scorecards {
		v.RoundScores = slices.Clone(v.RoundScores)
		out.scorecards[k] = v
	}
	for k, v := range s.upcoming {
		out.upcoming[k] = v
	}
	return out
}

// fakeRepository is an in-memory repository.Result. Each transaction works
// on a copy that only replaces the committed state on Commit.
type fakeRepository struct {
	mu       sync.Mutex
	state    storeState
	nextID   int
	failOn   string
	locks    []string
	commits  int
	rollback int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		state: storeState{
			fights:      map[int]domain.Fight{},
			results:     map[int]domain.FightResult{},
			predictions: map[int]domain.Prediction{},
			scorecards:  map[int]domain.Scorecard{},
			upcoming:    map[int]bool{},
		},
		nextID: 1000,
	}
}

func (f *fakeRepository) addEvent(id int) {
	f.state.upcoming[id] = true
}

func (f *fakeRepository) addFight(id, eventID, rounds int) {
	f.state.fights[id] = domain.Fight{ID: id, EventID: eventID, Rounds: domain.Ptr(rounds), CardType: domain.CardMain}
}

func (f *fakeRepository) addPrediction(p domain.Prediction) {
	f.state.predictions[p.ID] = p
}

func (f *fakeRepository) addScorecard(s domain.Scorecard) {
	f.state.scorecards[s.ID] = s
}

func (f *fakeRepository) prediction(id int) domain.Prediction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.predictions[id]
}

func (f *fakeRepository) scorecard(id int) domain.Scorecard {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.scorecards[id]
}

func (f *fakeRepository) eventUpcoming(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.upcoming[id]
}

func (f *fakeRepository) hasResult(fightID int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.state.results[fightID]
	return ok
}

func (f *fakeRepository) GetResult(_ context.Context, fightID int) (*domain.FightResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.state.results[fightID]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return &r, nil
}

func (f *fakeRepository) ListEventIDsWithFights(_ context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int
	for _, fight := range f.state.fights {
		if !slices.Contains(ids, fight.EventID) {
			ids = append(ids, fight.EventID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.ResultTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "BeginTx" {
		return nil, errInjected
	}
	return &fakeTx{repo: f, state: f.state.clone()}, nil
}

type fakeTx struct {
	repo        *fakeRepository
	state       storeState
	done        bool
	eventLocked map[int]bool
}

func (t *fakeTx) recordLock(name string) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.locks = append(t.repo.locks, name)
}

func (t *fakeTx) fail(op string) error {
	if t.repo.failOn == op {
		return errInjected
	}
	return nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if err := t.fail("Commit"); err != nil {
		return err
	}
	t.done = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.state = t.state
	t.repo.commits++
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	t.repo.rollback++
	return nil
}

func (t *fakeTx) LockFight(_ context.Context, fightID int) (*domain.Fight, error) {
	fight, ok := t.state.fights[fightID]
	if !ok {
		return nil, domain.ErrFightNotFound
	}
	t.recordLock(fmt.Sprintf("fight:%d", fightID))
	return &fight, nil
}

func (t *fakeTx) GetResult(_ context.Context, fightID int) (*domain.FightResult, error) {
	r, ok := t.state.results[fightID]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return &r, nil
}

func (t *fakeTx) UpsertResult(_ context.Context, fightID int, in *domain.FightResultInput) (*domain.FightResult, error) {
	if err := t.fail("UpsertResult"); err != nil {
		return nil, err
	}
	r, ok := t.state.results[fightID]
	if !ok {
		t.repo.nextID++
		r = domain.FightResult{ID: t.repo.nextID, FightID: fightID, CreatedAt: time.Now()}
	}
	r.Winner = in.Winner
	r.Method = in.Method
	r.FinishRound = in.FinishRound
	r.FinishTime = in.FinishTime
	r.IsResolved = false
	r.OfficialScorecards = nil
	for _, card := range in.OfficialScorecards {
		oc := domain.OfficialScorecard{JudgeName: card.JudgeName}
		for _, rs := range card.RoundScores {
			oc.RoundScores = append(oc.RoundScores, domain.OfficialRoundScore{
				RoundNumber:   rs.RoundNumber,
				Fighter1Score: rs.Fighter1Score,
				Fighter2Score: rs.Fighter2Score,
			})
		}
		oc.ComputeTotals()
		r.OfficialScorecards = append(r.OfficialScorecards, oc)
	}
	t.state.results[fightID] = r
	return &r, nil
}

func (t *fakeTx) DeleteResult(_ context.Context, fightID int) error {
	if _, ok := t.state.results[fightID]; !ok {
		return domain.ErrResultNotFound
	}
	delete(t.state.results, fightID)
	return nil
}

func (t *fakeTx) MarkResolved(_ context.Context, resultID int) error {
	for k, r := range t.state.results {
		if r.ID == resultID {
			r.IsResolved = true
			t.state.results[k] = r
		}
	}
	return nil
}

func (t *fakeTx) ListFightPredictions(_ context.Context, fightID int) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range t.state.predictions {
		if p.FightID == fightID {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Prediction) int { return a.ID - b.ID })
	return out, nil
}

func (t *fakeTx) ListFightScorecards(_ context.Context, fightID int) ([]domain.Scorecard, error) {
	var out []domain.Scorecard
	for _, s := range t.state.scorecards {
		if s.FightID == fightID {
			s.RoundScores = slices.Clone(s.RoundScores)
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b domain.Scorecard) int { return a.ID - b.ID })
	return out, nil
}

func (t *fakeTx) UpdatePredictionResolution(_ context.Context, id int, isCorrect *bool, resolvedAt *time.Time) error {
	if err := t.fail("UpdatePredictionResolution"); err != nil {
		return err
	}
	p := t.state.predictions[id]
	p.IsCorrect = isCorrect
	p.ResolvedAt = resolvedAt
	t.state.predictions[id] = p
	return nil
}

func (t *fakeTx) UpdateScorecardResolution(_ context.Context, card *domain.Scorecard) error {
	if err := t.fail("UpdateScorecardResolution"); err != nil {
		return err
	}
	stored := t.state.scorecards[card.ID]
	stored.CorrectRounds = card.CorrectRounds
	stored.TotalRounds = card.TotalRounds
	stored.ResolvedAt = card.ResolvedAt
	stored.RoundScores = slices.Clone(card.RoundScores)
	t.state.scorecards[card.ID] = stored
	return nil
}

func (t *fakeTx) LockEvent(_ context.Context, eventID int) error {
	if err := t.fail("LockEvent"); err != nil {
		return err
	}
	if _, ok := t.state.upcoming[eventID]; !ok {
		return domain.ErrEventNotFound
	}
	if t.eventLocked == nil {
		t.eventLocked = map[int]bool{}
	}
	t.eventLocked[eventID] = true
	t.recordLock(fmt.Sprintf("event:%d", eventID))
	return nil
}

func (t *fakeTx) GetEventClosure(_ context.Context, eventID int) (domain.EventClosure, error) {
	if !t.eventLocked[eventID] {
		return domain.EventClosure{}, errEventNotLocked
	}
	var c domain.EventClosure
	for _, fight := range t.state.fights {
		if fight.EventID != eventID {
			continue
		}
		c.TotalFights++
		if _, ok := t.state.results[fight.ID]; ok {
			c.FightsWithResults++
		}
	}
	return c, nil
}

func (t *fakeTx) SetEventUpcoming(_ context.Context, eventID int, upcoming bool) (bool, error) {
	if err := t.fail("SetEventUpcoming"); err != nil {
		return false, err
	}
	if t.state.upcoming[eventID] == upcoming {
		return false, nil
	}
	t.state.upcoming[eventID] = upcoming
	return true, nil
}
