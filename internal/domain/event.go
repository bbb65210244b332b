package domain

import "time"

// Event is a fight card held on one day by one organization.
type Event struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Organization string     `json:"organization"`
	EventDate    *Date      `json:"event_date"`
	TimeMSK      *string    `json:"time_msk"`
	Location     *string    `json:"location"`
	IsUpcoming   bool       `json:"is_upcoming"`
	Slug         string     `json:"slug"`
	URL          string     `json:"url"`
	FightCount   int        `json:"fight_count"`
	MainEvent    *MainEvent `json:"main_event,omitempty"`
	ScrapedAt    time.Time  `json:"scraped_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MainEvent summarizes the headline bout of an event.
type MainEvent struct {
	Fighter1Name *string `json:"fighter1_name"`
	Fighter2Name *string `json:"fighter2_name"`
	WeightClass  *string `json:"weight_class"`
}

// EventDetail is an event with its full card.
type EventDetail struct {
	Event
	Fights []Fight `json:"fights"`
}

// EventInput is the admin create/update payload for an event.
// Slug is derived from the name when omitted.
type EventInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Organization string  `json:"organization" validate:"required,max=100"`
	EventDate    *Date   `json:"event_date"`
	TimeMSK      *string `json:"time_msk" validate:"omitempty,clock"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	URL          string  `json:"url" validate:"required,max=500"`
	Slug         string  `json:"slug" validate:"omitempty,max=255"`
	IsUpcoming   *bool   `json:"is_upcoming"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	UpcomingOnly bool
	Organization string
}

// Organization is a promotion with its number of events.
type Organization struct {
	Name       string `json:"name"`
	EventCount int    `json:"event_count"`
}

// EventClosure counts an event's fights and how many have a result.
type EventClosure struct {
	TotalFights       int
	FightsWithResults int
}

// Upcoming reports whether the event stays open. An event with no fights
// keeps its current flag.
func (c EventClosure) Upcoming(current bool) bool {
	if c.TotalFights == 0 {
		return current
	}
	return c.FightsWithResults < c.TotalFights
}
