package domain

// MethodPicks counts picks of one method per fighter.
type MethodPicks struct {
	Fighter1 int `json:"fighter1"`
	Fighter2 int `json:"fighter2"`
}

// PredictionStats aggregates community picks for a fight.
type PredictionStats struct {
	TotalPredictions   int                       `json:"total_predictions"`
	Fighter1Picks      int                       `json:"fighter1_picks"`
	Fighter2Picks      int                       `json:"fighter2_picks"`
	Fighter1Percentage int                       `json:"fighter1_percentage"`
	Fighter2Percentage int                       `json:"fighter2_percentage"`
	Methods            map[WinMethod]MethodPicks `json:"methods"`
}

// RoundStats aggregates community scores for one round.
type RoundStats struct {
	AverageFighter1   float64 `json:"average_fighter1"`
	AverageFighter2   float64 `json:"average_fighter2"`
	Fighter1RoundWins int     `json:"fighter1_round_wins"`
	Fighter2RoundWins int     `json:"fighter2_round_wins"`
}

// ScorecardStats aggregates community scorecards for a fight.
type ScorecardStats struct {
	TotalScorecards       int                `json:"total_scorecards"`
	Rounds                map[int]RoundStats `json:"rounds"`
	AverageTotalFighter1  float64            `json:"average_total_fighter1"`
	AverageTotalFighter2  float64            `json:"average_total_fighter2"`
	Fighter1Wins          int                `json:"fighter1_wins"`
	Fighter2Wins          int                `json:"fighter2_wins"`
	Draws                 int                `json:"draws"`
	Fighter1WinPercentage float64            `json:"fighter1_win_percentage"`
	Fighter2WinPercentage float64            `json:"fighter2_win_percentage"`
}

// UserPredictionSummary holds raw prediction counters for one user.
type UserPredictionSummary struct {
	Total    int
	Resolved int
	Correct  int
	ByMethod map[WinMethod]int
}

// UserScorecardSummary holds raw scorecard counters for one user.
// CorrectRounds and TotalRounds only include resolved cards with graded rounds.
type UserScorecardSummary struct {
	Total         int
	CorrectRounds int
	TotalRounds   int
}

// UserStats is a user's accuracy report.
type UserStats struct {
	TotalPredictions    int               `json:"total_predictions"`
	TotalScorecards     int               `json:"total_scorecards"`
	PredictionsByMethod map[WinMethod]int `json:"predictions_by_method"`
	CorrectPredictions  int               `json:"correct_predictions"`
	ResolvedPredictions int               `json:"resolved_predictions"`
	PredictionAccuracy  *float64          `json:"prediction_accuracy"`
	CorrectRounds       int               `json:"correct_rounds"`
	TotalRounds         int               `json:"total_rounds"`
	ScorecardAccuracy   *float64          `json:"scorecard_accuracy"`
	OverallAccuracy     *float64          `json:"overall_accuracy"`
}
