package domain

import "time"

// Fight is one bout on an event card. A nil fighter slot is TBA.
type Fight struct {
	ID            int          `json:"id"`
	EventID       int          `json:"event_id"`
	Fighter1ID    *int         `json:"fighter1_id"`
	Fighter2ID    *int         `json:"fighter2_id"`
	Fighter1      *Fighter     `json:"fighter1"`
	Fighter2      *Fighter     `json:"fighter2"`
	CardType      CardType     `json:"card_type"`
	WeightClass   *string      `json:"weight_class"`
	Rounds        *int         `json:"rounds"`
	ScheduledTime *string      `json:"scheduled_time"`
	FightOrder    *int         `json:"fight_order"`
	Result        *FightResult `json:"result"`
	EventName     *string      `json:"event_name,omitempty"`
	EventDate     *Date        `json:"event_date,omitempty"`
	Organization  *string      `json:"organization,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// EffectiveRounds returns the scheduled round count, defaulting to three.
func (f *Fight) EffectiveRounds() int {
	return EffectiveRounds(f.Rounds)
}

// EffectiveRounds resolves an optional round count.
func EffectiveRounds(rounds *int) int {
	if rounds == nil || *rounds <= 0 {
		return DefaultRounds
	}
	return *rounds
}

// FightInput is the admin create/update payload for a fight.
type FightInput struct {
	EventID       int      `json:"event_id" validate:"required,min=1"`
	Fighter1ID    *int     `json:"fighter1_id" validate:"omitempty,min=1"`
	Fighter2ID    *int     `json:"fighter2_id" validate:"omitempty,min=1"`
	CardType      CardType `json:"card_type" validate:"omitempty,card_type"`
	WeightClass   *string  `json:"weight_class" validate:"omitempty,max=100"`
	Rounds        *int     `json:"rounds" validate:"omitempty,min=1,max=5"`
	ScheduledTime *string  `json:"scheduled_time" validate:"omitempty,clock"`
	FightOrder    *int     `json:"fight_order" validate:"omitempty,min=0"`
}

// FightStats bundles a fight with its aggregate pick statistics.
type FightStats struct {
	Fight           *Fight           `json:"fight"`
	PredictionStats *PredictionStats `json:"prediction_stats"`
	ScorecardStats  *ScorecardStats  `json:"scorecard_stats"`
}
