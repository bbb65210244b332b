package domain

import (
	"fmt"
	"time"
)

// Fighter is an athlete profile.
type Fighter struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	NameEnglish      *string   `json:"name_english"`
	Country          *string   `json:"country"`
	Wins             int       `json:"wins"`
	Losses           int       `json:"losses"`
	Draws            int       `json:"draws"`
	Age              *int      `json:"age"`
	HeightCM         *int      `json:"height_cm"`
	WeightKG         *float64  `json:"weight_kg"`
	ReachCM          *int      `json:"reach_cm"`
	Style            *string   `json:"style"`
	WeightClass      *string   `json:"weight_class"`
	Ranking          *string   `json:"ranking"`
	WinsKOTKO        int       `json:"wins_ko_tko"`
	WinsSubmission   int       `json:"wins_submission"`
	WinsDecision     int       `json:"wins_decision"`
	LossesKOTKO      int       `json:"losses_ko_tko"`
	LossesSubmission int       `json:"losses_submission"`
	LossesDecision   int       `json:"losses_decision"`
	ProfileURL       *string   `json:"profile_url"`
	ProfileScraped   bool      `json:"profile_scraped"`
	Record           string    `json:"record"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FormatRecord renders a W-L-D record.
func FormatRecord(wins, losses, draws int) string {
	return fmt.Sprintf("%d-%d-%d", wins, losses, draws)
}

// FighterInput is the admin create/update payload for a fighter.
type FighterInput struct {
	Name             string   `json:"name" validate:"required,max=255"`
	NameEnglish      *string  `json:"name_english" validate:"omitempty,max=255"`
	Country          *string  `json:"country" validate:"omitempty,max=100"`
	Wins             int      `json:"wins" validate:"min=0"`
	Losses           int      `json:"losses" validate:"min=0"`
	Draws            int      `json:"draws" validate:"min=0"`
	Age              *int     `json:"age" validate:"omitempty,min=0,max=120"`
	HeightCM         *int     `json:"height_cm" validate:"omitempty,min=0"`
	WeightKG         *float64 `json:"weight_kg" validate:"omitempty,min=0"`
	ReachCM          *int     `json:"reach_cm" validate:"omitempty,min=0"`
	Style            *string  `json:"style" validate:"omitempty,max=100"`
	WeightClass      *string  `json:"weight_class" validate:"omitempty,max=50"`
	Ranking          *string  `json:"ranking" validate:"omitempty,max=50"`
	WinsKOTKO        int      `json:"wins_ko_tko" validate:"min=0"`
	WinsSubmission   int      `json:"wins_submission" validate:"min=0"`
	WinsDecision     int      `json:"wins_decision" validate:"min=0"`
	LossesKOTKO      int      `json:"losses_ko_tko" validate:"min=0"`
	LossesSubmission int      `json:"losses_submission" validate:"min=0"`
	LossesDecision   int      `json:"losses_decision" validate:"min=0"`
	ProfileURL       *string  `json:"profile_url" validate:"omitempty,max=500"`
	ProfileScraped   bool     `json:"profile_scraped"`
}

// FighterFilter narrows the admin fighter listing.
type FighterFilter struct {
	Search string
	Skip   int
	Limit  int
}
