package domain

import "time"

// OfficialRoundScore is one judge's score for one round.
type OfficialRoundScore struct {
	ID            int `json:"id"`
	RoundNumber   int `json:"round_number"`
	Fighter1Score int `json:"fighter1_score"`
	Fighter2Score int `json:"fighter2_score"`
}

// OfficialScorecard is one judge's card.
type OfficialScorecard struct {
	ID            int                  `json:"id"`
	JudgeName     string               `json:"judge_name"`
	RoundScores   []OfficialRoundScore `json:"round_scores"`
	TotalFighter1 int                  `json:"total_fighter1"`
	TotalFighter2 int                  `json:"total_fighter2"`
}

// ComputeTotals fills the derived totals.
func (s *OfficialScorecard) ComputeTotals() {
	s.TotalFighter1, s.TotalFighter2 = 0, 0
	for _, r := range s.RoundScores {
		s.TotalFighter1 += r.Fighter1Score
		s.TotalFighter2 += r.Fighter2Score
	}
}

// FightResult is the authoritative outcome of a fight.
type FightResult struct {
	ID                 int                 `json:"id"`
	FightID            int                 `json:"fight_id"`
	Winner             FightWinner         `json:"winner"`
	Method             WinMethod           `json:"method"`
	FinishRound        *int                `json:"finish_round"`
	FinishTime         *string             `json:"finish_time"`
	IsResolved         bool                `json:"is_resolved"`
	OfficialScorecards []OfficialScorecard `json:"official_scorecards"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// JudgeCards returns the official scorecards that count for grading.
// Judges' cards only apply to decisions.
func (r *FightResult) JudgeCards() []OfficialScorecard {
	if r.Method != MethodDecision {
		return nil
	}
	return r.OfficialScorecards
}

// OfficialRoundScoreInput is one judge's submitted round.
type OfficialRoundScoreInput struct {
	RoundNumber   int `json:"round_number" validate:"required,min=1,max=5"`
	Fighter1Score int `json:"fighter1_score" validate:"required,min=7,max=10"`
	Fighter2Score int `json:"fighter2_score" validate:"required,min=7,max=10"`
}

// OfficialScorecardInput is one judge's submitted card.
type OfficialScorecardInput struct {
	JudgeName   string                    `json:"judge_name" validate:"required,max=255"`
	RoundScores []OfficialRoundScoreInput `json:"round_scores" validate:"required,min=1,max=5,dive"`
}

// FightResultInput is the admin payload for recording or replacing a result.
type FightResultInput struct {
	Winner             FightWinner              `json:"winner" validate:"required,fight_winner"`
	Method             WinMethod                `json:"method" validate:"required,win_method"`
	FinishRound        *int                     `json:"finish_round" validate:"omitempty,min=1,max=5"`
	FinishTime         *string                  `json:"finish_time" validate:"omitempty,finish_time"`
	OfficialScorecards []OfficialScorecardInput `json:"official_scorecards" validate:"omitempty,max=3,dive"`
}
