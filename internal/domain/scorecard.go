package domain

import "time"

// RoundScore is one round of a user's scorecard.
type RoundScore struct {
	ID            int   `json:"id"`
	RoundNumber   int   `json:"round_number"`
	Fighter1Score int   `json:"fighter1_score"`
	Fighter2Score int   `json:"fighter2_score"`
	IsCorrect     *bool `json:"is_correct"`
}

// Scorecard is a user's round-by-round score for a fight.
type Scorecard struct {
	ID            int             `json:"id"`
	UserID        int             `json:"user_id"`
	FightID       int             `json:"fight_id"`
	CreatedAt     time.Time       `json:"created_at"`
	RoundScores   []RoundScore    `json:"round_scores"`
	TotalFighter1 int             `json:"total_fighter1"`
	TotalFighter2 int             `json:"total_fighter2"`
	Winner        ScorecardWinner `json:"winner"`
	CorrectRounds int             `json:"correct_rounds"`
	TotalRounds   int             `json:"total_rounds"`
	ResolvedAt    *time.Time      `json:"resolved_at"`
	User          *User           `json:"user,omitempty"`
	Fight         *Fight          `json:"fight,omitempty"`
}

// ComputeTotals fills the derived totals and winner from the round scores.
func (s *Scorecard) ComputeTotals() {
	s.TotalFighter1, s.TotalFighter2 = SumRounds(s.RoundScores)
	s.Winner = ScorecardWinnerOf(s.TotalFighter1, s.TotalFighter2)
}

// SumRounds totals both fighters' scores.
func SumRounds(rounds []RoundScore) (int, int) {
	var f1, f2 int
	for _, r := range rounds {
		f1 += r.Fighter1Score
		f2 += r.Fighter2Score
	}
	return f1, f2
}

// ScorecardWinnerOf compares two totals.
func ScorecardWinnerOf(total1, total2 int) ScorecardWinner {
	switch {
	case total1 > total2:
		return ScorecardFighter1
	case total2 > total1:
		return ScorecardFighter2
	}
	return ScorecardDraw
}

// RoundScoreInput is one submitted round.
type RoundScoreInput struct {
	RoundNumber   int `json:"round_number" validate:"required,min=1,max=5"`
	Fighter1Score int `json:"fighter1_score" validate:"required,min=7,max=10"`
	Fighter2Score int `json:"fighter2_score" validate:"required,min=7,max=10"`
}

// ScorecardInput is the payload for submitting a scorecard.
type ScorecardInput struct {
	FightID     int               `json:"fight_id" validate:"required,min=1"`
	RoundScores []RoundScoreInput `json:"round_scores" validate:"required,min=1,max=5,dive"`
}
