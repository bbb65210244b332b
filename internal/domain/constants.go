package domain

// PredictedWinner is the side a user picks in a prediction.
type PredictedWinner string

const (
	PredictedFighter1 PredictedWinner = "fighter1"
	PredictedFighter2 PredictedWinner = "fighter2"
)

// Valid reports whether w is a known pick.
func (w PredictedWinner) Valid() bool {
	switch w {
	case PredictedFighter1, PredictedFighter2:
		return true
	}
	return false
}

// FightWinner is the official outcome of a fight.
type FightWinner string

const (
	WinnerFighter1  FightWinner = "fighter1"
	WinnerFighter2  FightWinner = "fighter2"
	WinnerDraw      FightWinner = "draw"
	WinnerNoContest FightWinner = "no_contest"
)

// Valid reports whether w is a known outcome.
func (w FightWinner) Valid() bool {
	switch w {
	case WinnerFighter1, WinnerFighter2, WinnerDraw, WinnerNoContest:
		return true
	}
	return false
}

// Decisive is true when one fighter won.
func (w FightWinner) Decisive() bool {
	return w == WinnerFighter1 || w == WinnerFighter2
}

// WinMethod is how a fight ended.
type WinMethod string

const (
	MethodKOTKO      WinMethod = "ko_tko"
	MethodSubmission WinMethod = "submission"
	MethodDecision   WinMethod = "decision"
	MethodDQ         WinMethod = "dq"
)

// AllWinMethods lists methods in display order.
var AllWinMethods = []WinMethod{MethodKOTKO, MethodSubmission, MethodDecision, MethodDQ}

// Valid reports whether m is a known method.
func (m WinMethod) Valid() bool {
	switch m {
	case MethodKOTKO, MethodSubmission, MethodDecision, MethodDQ:
		return true
	}
	return false
}

// CardType places a fight on the main card or the prelims.
type CardType string

const (
	CardMain   CardType = "main"
	CardPrelim CardType = "prelim"
)

// Valid reports whether c is a known card type.
func (c CardType) Valid() bool {
	return c == CardMain || c == CardPrelim
}

// ScorecardWinner is derived from a scorecard's totals.
type ScorecardWinner string

const (
	ScorecardFighter1 ScorecardWinner = "fighter1"
	ScorecardFighter2 ScorecardWinner = "fighter2"
	ScorecardDraw     ScorecardWinner = "draw"
)

// Fight and scoring limits
const (
	DefaultRounds  = 3
	MinRounds      = 1
	MaxRounds      = 5
	MinRoundScore  = 7
	MaxRoundScore  = 10
	JudgesRequired = 3
	MinConfidence  = 1
	MaxConfidence  = 5
)

// Listing defaults
const (
	DefaultFighterFightsLimit = 10
	DefaultAdminListLimit     = 100
	MaxAdminListLimit         = 500
)
