package domain

// ScrapedFighter is a fighter as read from an event card, optionally
// enriched with stats from the fighter's profile page.
type ScrapedFighter struct {
	Name             string   `json:"name"`
	NameEnglish      *string  `json:"name_english"`
	Country          *string  `json:"country"`
	Wins             int      `json:"wins"`
	Losses           int      `json:"losses"`
	Draws            int      `json:"draws"`
	Age              *int     `json:"age"`
	HeightCM         *int     `json:"height_cm"`
	WeightKG         *float64 `json:"weight_kg"`
	ReachCM          *int     `json:"reach_cm"`
	Style            *string  `json:"style"`
	WeightClass      *string  `json:"weight_class"`
	Ranking          *string  `json:"ranking"`
	WinsKOTKO        *int     `json:"wins_ko_tko"`
	WinsSubmission   *int     `json:"wins_submission"`
	WinsDecision     *int     `json:"wins_decision"`
	LossesKOTKO      *int     `json:"losses_ko_tko"`
	LossesSubmission *int     `json:"losses_submission"`
	LossesDecision   *int     `json:"losses_decision"`
	ProfileURL       *string  `json:"profile_url"`
	ProfileScraped   bool     `json:"profile_scraped"`
}

// HasProfile reports whether any profile-page stat is present.
func (f *ScrapedFighter) HasProfile() bool {
	return f.ProfileScraped || f.NameEnglish != nil || f.Age != nil || f.HeightCM != nil ||
		f.WeightKG != nil || f.ReachCM != nil || f.Style != nil || f.Ranking != nil ||
		f.WinsKOTKO != nil || f.WinsSubmission != nil || f.WinsDecision != nil ||
		f.LossesKOTKO != nil || f.LossesSubmission != nil || f.LossesDecision != nil
}

// ScrapedFight is one bout on a scraped card.
type ScrapedFight struct {
	Fighter1      ScrapedFighter `json:"fighter1"`
	Fighter2      ScrapedFighter `json:"fighter2"`
	CardType      string         `json:"card_type"`
	WeightClass   *string        `json:"weight_class"`
	Rounds        *int           `json:"rounds"`
	ScheduledTime *string        `json:"scheduled_time"`
	FightOrder    *int           `json:"fight_order"`
}

// ScrapedEvent is an event page as produced by the scraper. URL identifies
// the event across imports.
type ScrapedEvent struct {
	Name         string         `json:"name"`
	Organization string         `json:"organization"`
	Slug         string         `json:"slug"`
	URL          string         `json:"url"`
	EventDate    *Date          `json:"event_date"`
	TimeMSK      *string        `json:"time_msk"`
	Location     *string        `json:"location"`
	IsUpcoming   *bool          `json:"is_upcoming"`
	Fights       []ScrapedFight `json:"fights"`
}

// ImportResult counts what one ImportEvent call wrote.
type ImportResult struct {
	EventID       int  `json:"event_id"`
	EventCreated  bool `json:"event_created"`
	FightsSaved   int  `json:"fights_saved"`
	FightersSaved int  `json:"fighters_saved"`
}
