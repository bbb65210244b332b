package domain

import "time"

// Prediction is a user's pre-fight pick. Only the resolution fields change
// after creation.
type Prediction struct {
	ID              int             `json:"id"`
	UserID          int             `json:"user_id"`
	FightID         int             `json:"fight_id"`
	PredictedWinner PredictedWinner `json:"predicted_winner"`
	WinMethod       WinMethod       `json:"win_method"`
	Confidence      *int            `json:"confidence"`
	CreatedAt       time.Time       `json:"created_at"`
	IsCorrect       *bool           `json:"is_correct"`
	ResolvedAt      *time.Time      `json:"resolved_at"`
	User            *User           `json:"user,omitempty"`
	Fight           *Fight          `json:"fight,omitempty"`
}

// Resolved reports whether a result has graded this prediction.
func (p *Prediction) Resolved() bool {
	return p.ResolvedAt != nil
}

// PredictionInput is the payload for submitting a prediction.
type PredictionInput struct {
	FightID         int             `json:"fight_id" validate:"required,min=1"`
	PredictedWinner PredictedWinner `json:"predicted_winner" validate:"required,predicted_winner"`
	WinMethod       WinMethod       `json:"win_method" validate:"required,win_method"`
	Confidence      *int            `json:"confidence" validate:"omitempty,min=1,max=5"`
}
