package stats

import (
	"math"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Predictions aggregates the community picks for one fight. Pick percentages
// are whole numbers that add up to 100 whenever there is at least one pick.
func Predictions(predictions []domain.Prediction) *domain.PredictionStats {
	s := &domain.PredictionStats{
		TotalPredictions: len(predictions),
		Methods:          make(map[domain.WinMethod]domain.MethodPicks, len(domain.AllWinMethods)),
	}
	for _, m := range domain.AllWinMethods {
		s.Methods[m] = domain.MethodPicks{}
	}

	for _, p := range predictions {
		mp := s.Methods[p.WinMethod]
		switch p.PredictedWinner {
		case domain.PredictedFighter1:
			s.Fighter1Picks++
			mp.Fighter1++
		case domain.PredictedFighter2:
			s.Fighter2Picks++
			mp.Fighter2++
		}
		s.Methods[p.WinMethod] = mp
	}

	if picks := s.Fighter1Picks + s.Fighter2Picks; picks > 0 {
		s.Fighter1Percentage = int(math.Round(float64(s.Fighter1Picks) * 100 / float64(picks)))
		s.Fighter2Percentage = 100 - s.Fighter1Percentage
	}
	return s
}

// Scorecards aggregates the community scorecards for a fight scheduled for
// rounds rounds. Rounds nobody scored are left out.
func Scorecards(scorecards []domain.Scorecard, rounds int) *domain.ScorecardStats {
	s := &domain.ScorecardStats{
		TotalScorecards: len(scorecards),
		Rounds:          make(map[int]domain.RoundStats),
	}
	if len(scorecards) == 0 {
		return s
	}

	for round := 1; round <= rounds; round++ {
		var sum1, sum2, n int
		var rs domain.RoundStats
		for _, card := range scorecards {
			score, ok := roundOf(card, round)
			if !ok {
				continue
			}
			n++
			sum1 += score.Fighter1Score
			sum2 += score.Fighter2Score
			switch {
			case score.Fighter1Score > score.Fighter2Score:
				rs.Fighter1RoundWins++
			case score.Fighter2Score > score.Fighter1Score:
				rs.Fighter2RoundWins++
			}
		}
		if n == 0 {
			continue
		}
		rs.AverageFighter1 = roundTo(float64(sum1)/float64(n), RoundAveragePrecision)
		rs.AverageFighter2 = roundTo(float64(sum2)/float64(n), RoundAveragePrecision)
		s.Rounds[round] = rs
	}

	var total1, total2 int
	for _, card := range scorecards {
		f1, f2 := domain.SumRounds(card.RoundScores)
		total1 += f1
		total2 += f2
		switch domain.ScorecardWinnerOf(f1, f2) {
		case domain.ScorecardFighter1:
			s.Fighter1Wins++
		case domain.ScorecardFighter2:
			s.Fighter2Wins++
		default:
			s.Draws++
		}
	}

	n := float64(len(scorecards))
	s.AverageTotalFighter1 = roundTo(float64(total1)/n, TotalAveragePrecision)
	s.AverageTotalFighter2 = roundTo(float64(total2)/n, TotalAveragePrecision)
	s.Fighter1WinPercentage = roundTo(float64(s.Fighter1Wins)*100/n, PercentagePrecision)
	s.Fighter2WinPercentage = roundTo(float64(s.Fighter2Wins)*100/n, PercentagePrecision)
	return s
}

// User builds an accuracy report from a user's counters. Accuracies are nil
// while their denominator is zero.
func User(preds *domain.UserPredictionSummary, cards *domain.UserScorecardSummary) *domain.UserStats {
	s := &domain.UserStats{
		TotalPredictions:    preds.Total,
		TotalScorecards:     cards.Total,
		PredictionsByMethod: make(map[domain.WinMethod]int, len(domain.AllWinMethods)),
		CorrectPredictions:  preds.Correct,
		ResolvedPredictions: preds.Resolved,
		CorrectRounds:       cards.CorrectRounds,
		TotalRounds:         cards.TotalRounds,
	}
	for _, m := range domain.AllWinMethods {
		s.PredictionsByMethod[m] = preds.ByMethod[m]
	}

	s.PredictionAccuracy = ratio(s.CorrectPredictions, s.ResolvedPredictions)
	s.ScorecardAccuracy = ratio(s.CorrectRounds, s.TotalRounds)
	s.OverallAccuracy = ratio(s.CorrectPredictions+s.CorrectRounds, s.ResolvedPredictions+s.TotalRounds)
	return s
}

func roundOf(card domain.Scorecard, round int) (domain.RoundScore, bool) {
	for _, r := range card.RoundScores {
		if r.RoundNumber == round {
			return r, true
		}
	}
	return domain.RoundScore{}, false
}

func ratio(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	v := roundTo(float64(num)/float64(den), AccuracyPrecision)
	return &v
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
