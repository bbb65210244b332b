package resolution

import (
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Grading holds the resolution fields computed for one fight.
type Grading struct {
	Predictions []domain.Prediction
	Scorecards  []domain.Scorecard
}

// Grade applies a result to every pick on the fight. It has no side effects:
// the same inputs always produce the same resolution fields.
func Grade(result *domain.FightResult, predictions []domain.Prediction, scorecards []domain.Scorecard, now time.Time) Grading {
	g := Grading{
		Predictions: make([]domain.Prediction, len(predictions)),
		Scorecards:  make([]domain.Scorecard, len(scorecards)),
	}
	for i, p := range predictions {
		g.Predictions[i] = GradePrediction(p, result, now)
	}
	judges := newJudgeIndex(result.JudgeCards())
	for i, s := range scorecards {
		g.Scorecards[i] = judges.grade(s, now)
	}
	return g
}

// Unresolve clears every resolution field, as if no result had been entered.
func Unresolve(predictions []domain.Prediction, scorecards []domain.Scorecard) Grading {
	g := Grading{
		Predictions: make([]domain.Prediction, len(predictions)),
		Scorecards:  make([]domain.Scorecard, len(scorecards)),
	}
	for i, p := range predictions {
		p.IsCorrect = nil
		p.ResolvedAt = nil
		g.Predictions[i] = p
	}
	for i, s := range scorecards {
		g.Scorecards[i] = clearScorecard(s, nil)
	}
	return g
}

// GradePrediction marks a pick correct only when both the winner and the
// method match. Draws and no contests resolve the pick without a verdict.
func GradePrediction(p domain.Prediction, result *domain.FightResult, now time.Time) domain.Prediction {
	resolvedAt := now
	p.ResolvedAt = &resolvedAt
	if !result.Winner.Decisive() {
		p.IsCorrect = nil
		return p
	}
	correct := string(p.PredictedWinner) == string(result.Winner) && p.WinMethod == result.Method
	p.IsCorrect = &correct
	return p
}

// GradeScorecard grades a user's card against the judges' cards.
// A round is correct when any judge scored it identically.
func GradeScorecard(card domain.Scorecard, judges []domain.OfficialScorecard, now time.Time) domain.Scorecard {
	return newJudgeIndex(judges).grade(card, now)
}

type roundKey struct {
	round, fighter1, fighter2 int
}

// judgeIndex is the set of (round, score) pairs any judge gave.
type judgeIndex map[roundKey]struct{}

func newJudgeIndex(judges []domain.OfficialScorecard) judgeIndex {
	if len(judges) == 0 {
		return nil
	}
	idx := make(judgeIndex)
	for _, j := range judges {
		for _, r := range j.RoundScores {
			idx[roundKey{r.RoundNumber, r.Fighter1Score, r.Fighter2Score}] = struct{}{}
		}
	}
	return idx
}

func (idx judgeIndex) grade(card domain.Scorecard, now time.Time) domain.Scorecard {
	resolvedAt := now
	if idx == nil {
		return clearScorecard(card, &resolvedAt)
	}

	rounds := make([]domain.RoundScore, len(card.RoundScores))
	correctRounds := 0
	for i, r := range card.RoundScores {
		_, ok := idx[roundKey{r.RoundNumber, r.Fighter1Score, r.Fighter2Score}]
		correct := ok
		r.IsCorrect = &correct
		if correct {
			correctRounds++
		}
		rounds[i] = r
	}

	card.RoundScores = rounds
	card.CorrectRounds = correctRounds
	card.TotalRounds = len(rounds)
	card.ResolvedAt = &resolvedAt
	return card
}

// clearScorecard zeroes the counters and round verdicts, stamping resolvedAt.
func clearScorecard(card domain.Scorecard, resolvedAt *time.Time) domain.Scorecard {
	rounds := make([]domain.RoundScore, len(card.RoundScores))
	for i, r := range card.RoundScores {
		r.IsCorrect = nil
		rounds[i] = r
	}
	card.RoundScores = rounds
	card.CorrectRounds = 0
	card.TotalRounds = 0
	card.ResolvedAt = resolvedAt
	return card
}

// summarize counts the verdicts in g for logs and metrics.
func summarize(g Grading, summary *domain.ResolutionSummary) {
	summary.PredictionsGraded = len(g.Predictions)
	summary.ScorecardsGraded = len(g.Scorecards)

	if summary.Cleared {
		for _, s := range g.Scorecards {
			summary.RoundsGraded += len(s.RoundScores)
		}
		return
	}

	for _, p := range g.Predictions {
		switch {
		case p.IsCorrect == nil:
			summary.PredictionsVoid++
		case *p.IsCorrect:
			summary.PredictionsCorrect++
		default:
			summary.PredictionsIncorrect++
		}
	}
	for _, s := range g.Scorecards {
		summary.RoundsGraded += s.TotalRounds
		summary.RoundsCorrect += s.CorrectRounds
	}
}
