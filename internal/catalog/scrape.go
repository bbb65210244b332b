package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"github.com/fightpicks/fightpicks/internal/domain"
)

const (
	minPlausibleYear = 2020
	maxCareerFights  = 100
)

var (
	clockPrefix    = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
	weightKGPrefix = regexp.MustCompile(`^кг\s+`)
)

// organizationAliases maps upper-cased spellings seen on event pages to one name
var organizationAliases = map[string]string{
	"ARES":             "ARES FC",
	"CAGE WARRIORS FC": "CAGE WARRIORS",
	"ONE FC":           "ONE",
	"ONE CHAMPIONSHIP": "ONE",
}

var cardTypeAliases = map[string]domain.CardType{
	"main":          domain.CardMain,
	"main card":     domain.CardMain,
	"основной":      domain.CardMain,
	"основной кард": domain.CardMain,
	"prelim":        domain.CardPrelim,
	"prelims":       domain.CardPrelim,
	"preliminary":   domain.CardPrelim,
	"прелимы":       domain.CardPrelim,
	"прелиминари":   domain.CardPrelim,
}

// NormalizeScrapedEvent cleans whitespace and the spellings the scraper
// passes through verbatim. It modifies ev in place.
func NormalizeScrapedEvent(ev *domain.ScrapedEvent) {
	ev.Name = collapseSpaces(ev.Name)
	ev.Organization = strings.ToUpper(collapseSpaces(ev.Organization))
	if alias, ok := organizationAliases[ev.Organization]; ok {
		ev.Organization = alias
	}
	ev.Slug = strings.Trim(strings.ToLower(strings.TrimSpace(ev.Slug)), "/")
	if ev.Slug != "" && !slug.IsSlug(ev.Slug) {
		ev.Slug = slug.Make(ev.Slug)
	}
	ev.URL = strings.TrimSpace(ev.URL)
	ev.TimeMSK = normalizeClock(ev.TimeMSK)
	if ev.Location != nil {
		ev.Location = optional(strings.TrimRight(collapseSpaces(*ev.Location), "."))
	}

	for i := range ev.Fights {
		f := &ev.Fights[i]
		normalizeFighter(&f.Fighter1)
		normalizeFighter(&f.Fighter2)
		ct := strings.ToLower(strings.TrimSpace(f.CardType))
		if mapped, ok := cardTypeAliases[ct]; ok {
			f.CardType = string(mapped)
		} else if ct == "" {
			f.CardType = string(domain.CardMain)
		} else {
			f.CardType = ct
		}
		f.ScheduledTime = normalizeClock(f.ScheduledTime)
	}
}

func normalizeFighter(f *domain.ScrapedFighter) {
	f.Name = strings.TrimSpace(weightKGPrefix.ReplaceAllString(collapseSpaces(f.Name), ""))
	if f.Country != nil {
		f.Country = optional(strings.TrimSpace(*f.Country))
	}
}

// ValidateScrapedEvent lists what is wrong with a normalized event. An event
// with problems is skipped by the importer rather than half-written.
func ValidateScrapedEvent(ev *domain.ScrapedEvent) []string {
	var problems []string
	if ev.Name == "" {
		problems = append(problems, fmt.Sprintf("event missing name (slug: %s)", ev.Slug))
	}
	if ev.Organization == "" {
		problems = append(problems, fmt.Sprintf("event %s missing organization", ev.Name))
	}
	if ev.URL == "" {
		problems = append(problems, fmt.Sprintf("event %s missing url", ev.Name))
	}
	if ev.EventDate != nil && ev.EventDate.Year() < minPlausibleYear {
		problems = append(problems, fmt.Sprintf("event %s has suspicious date %s", ev.Name, ev.EventDate.Format(domain.DateLayout)))
	}
	if ev.TimeMSK != nil && !domain.ValidClock(*ev.TimeMSK) {
		problems = append(problems, fmt.Sprintf("event %s has invalid time_msk %q", ev.Name, *ev.TimeMSK))
	}

	for i := range ev.Fights {
		f := &ev.Fights[i]
		if f.Fighter1.Name == "" || f.Fighter2.Name == "" {
			problems = append(problems, fmt.Sprintf("fight %d in %s missing fighter name", i+1, ev.Name))
		} else if f.Fighter1.Name == f.Fighter2.Name {
			problems = append(problems, fmt.Sprintf("fight %d in %s pairs %s with themselves", i+1, ev.Name, f.Fighter1.Name))
		}
		if !domain.CardType(f.CardType).Valid() {
			problems = append(problems, fmt.Sprintf("fight %d in %s has unknown card type %q", i+1, ev.Name, f.CardType))
		}
		if f.Rounds != nil && (*f.Rounds < domain.MinRounds || *f.Rounds > domain.MaxRounds) {
			problems = append(problems, fmt.Sprintf("fight %d in %s has %d rounds", i+1, ev.Name, *f.Rounds))
		}
		if f.ScheduledTime != nil && !domain.ValidClock(*f.ScheduledTime) {
			problems = append(problems, fmt.Sprintf("fight %d in %s has invalid scheduled_time %q", i+1, ev.Name, *f.ScheduledTime))
		}
		for _, fighter := range []*domain.ScrapedFighter{&f.Fighter1, &f.Fighter2} {
			if fighter.Wins < 0 || fighter.Losses < 0 || fighter.Draws < 0 {
				problems = append(problems, fmt.Sprintf("fighter %s has a negative record", fighter.Name))
			}
			if fighter.Wins+fighter.Losses+fighter.Draws > maxCareerFights {
				problems = append(problems, fmt.Sprintf("fighter %s has unrealistic record %s",
					fighter.Name, domain.FormatRecord(fighter.Wins, fighter.Losses, fighter.Draws)))
			}
		}
	}
	return problems
}

// normalizeClock keeps the leading H:MM of values like "23:30 МСК" and pads the hour
func normalizeClock(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	if m := clockPrefix.FindStringSubmatch(v); m != nil {
		hour := m[1]
		if len(hour) == 1 {
			hour = "0" + hour
		}
		v = hour + ":" + m[2]
	}
	return &v
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
