package catalog

import (
	"context"
	"strings"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// ImportEvent upserts a scraped event by URL together with its fighters and
// fights. Fighters are matched by exact name and fights by event and fighter
// pair. Bouts already on the card but missing from the scrape are kept so
// that users' picks on them survive a partial page.
func (s *service) ImportEvent(ctx context.Context, ev *domain.ScrapedEvent) (*domain.ImportResult, error) {
	NormalizeScrapedEvent(ev)
	if problems := ValidateScrapedEvent(ev); len(problems) > 0 {
		return nil, invalid(strings.Join(problems, "; "))
	}

	res := &domain.ImportResult{}
	event, created, err := s.importEventRow(ctx, ev)
	if err != nil {
		return nil, err
	}
	res.EventID = event.ID
	res.EventCreated = created

	card, err := s.repo.ListEventFights(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*domain.Fighter)
	for i := range ev.Fights {
		f := &ev.Fights[i]
		f1, err := s.importFighter(ctx, &f.Fighter1, seen, res)
		if err != nil {
			return nil, err
		}
		f2, err := s.importFighter(ctx, &f.Fighter2, seen, res)
		if err != nil {
			return nil, err
		}
		if err := s.importFight(ctx, event.ID, f, f1.ID, f2.ID, card); err != nil {
			return nil, err
		}
		res.FightsSaved++
	}

	if err := s.repo.MarkEventScraped(ctx, event.ID); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgEventImported,
		"event_id", event.ID, "url", ev.URL, "created", created,
		"fights", res.FightsSaved, "fighters", res.FightersSaved)
	return res, nil
}

func (s *service) importEventRow(ctx context.Context, ev *domain.ScrapedEvent) (*domain.Event, bool, error) {
	in := &domain.EventInput{
		Name:         ev.Name,
		Organization: ev.Organization,
		EventDate:    ev.EventDate,
		TimeMSK:      ev.TimeMSK,
		Location:     ev.Location,
		URL:          ev.URL,
		Slug:         ev.Slug,
		IsUpcoming:   ev.IsUpcoming,
	}

	existing, err := s.repo.GetEventByURL(ctx, ev.URL)
	switch {
	case err == nil:
		// The slug is public; a re-scrape must not move the event page.
		in.Slug = existing.Slug
		e, err := s.UpdateEvent(ctx, existing.ID, in)
		return e, false, err
	case isNotFound(err):
		e, err := s.CreateEvent(ctx, in)
		return e, true, err
	default:
		return nil, false, err
	}
}

func (s *service) importFighter(ctx context.Context, sf *domain.ScrapedFighter, seen map[string]*domain.Fighter, res *domain.ImportResult) (*domain.Fighter, error) {
	if f, ok := seen[sf.Name]; ok {
		return f, nil
	}

	var (
		f   *domain.Fighter
		err error
	)
	existing, lookupErr := s.repo.GetFighterByName(ctx, sf.Name)
	switch {
	case lookupErr == nil:
		f, err = s.UpdateFighter(ctx, existing.ID, mergeFighter(fighterInput(existing), sf))
	case isNotFound(lookupErr):
		f, err = s.CreateFighter(ctx, mergeFighter(&domain.FighterInput{Name: sf.Name}, sf))
	default:
		return nil, lookupErr
	}
	if err != nil {
		return nil, err
	}
	seen[sf.Name] = f
	res.FightersSaved++
	return f, nil
}

func (s *service) importFight(ctx context.Context, eventID int, sf *domain.ScrapedFight, fighter1ID, fighter2ID int, card []domain.Fight) error {
	in := &domain.FightInput{
		EventID:       eventID,
		Fighter1ID:    domain.Ptr(fighter1ID),
		Fighter2ID:    domain.Ptr(fighter2ID),
		CardType:      domain.CardType(sf.CardType),
		WeightClass:   sf.WeightClass,
		Rounds:        sf.Rounds,
		ScheduledTime: sf.ScheduledTime,
		FightOrder:    sf.FightOrder,
	}
	for i := range card {
		f := &card[i]
		if sameFighter(f.Fighter1ID, fighter1ID) && sameFighter(f.Fighter2ID, fighter2ID) {
			_, err := s.UpdateFight(ctx, f.ID, in)
			return err
		}
	}
	_, err := s.CreateFight(ctx, in)
	return err
}

func sameFighter(slot *int, id int) bool {
	return slot != nil && *slot == id
}

// mergeFighter overlays what the scrape knows onto in. The record always
// comes from the scrape; optional stats only when present. profile_scraped
// never goes back to false.
func mergeFighter(in *domain.FighterInput, sf *domain.ScrapedFighter) *domain.FighterInput {
	in.Wins, in.Losses, in.Draws = sf.Wins, sf.Losses, sf.Draws
	overlay(&in.NameEnglish, sf.NameEnglish)
	overlay(&in.Country, sf.Country)
	overlay(&in.Age, sf.Age)
	overlay(&in.HeightCM, sf.HeightCM)
	overlay(&in.WeightKG, sf.WeightKG)
	overlay(&in.ReachCM, sf.ReachCM)
	overlay(&in.Style, sf.Style)
	overlay(&in.WeightClass, sf.WeightClass)
	overlay(&in.Ranking, sf.Ranking)
	overlay(&in.ProfileURL, sf.ProfileURL)
	overlayCount(&in.WinsKOTKO, sf.WinsKOTKO)
	overlayCount(&in.WinsSubmission, sf.WinsSubmission)
	overlayCount(&in.WinsDecision, sf.WinsDecision)
	overlayCount(&in.LossesKOTKO, sf.LossesKOTKO)
	overlayCount(&in.LossesSubmission, sf.LossesSubmission)
	overlayCount(&in.LossesDecision, sf.LossesDecision)
	in.ProfileScraped = in.ProfileScraped || sf.HasProfile()
	return in
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

func overlayCount(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func fighterInput(f *domain.Fighter) *domain.FighterInput {
	return &domain.FighterInput{
		Name:             f.Name,
		NameEnglish:      f.NameEnglish,
		Country:          f.Country,
		Wins:             f.Wins,
		Losses:           f.Losses,
		Draws:            f.Draws,
		Age:              f.Age,
		HeightCM:         f.HeightCM,
		WeightKG:         f.WeightKG,
		ReachCM:          f.ReachCM,
		Style:            f.Style,
		WeightClass:      f.WeightClass,
		Ranking:          f.Ranking,
		WinsKOTKO:        f.WinsKOTKO,
		WinsSubmission:   f.WinsSubmission,
		WinsDecision:     f.WinsDecision,
		LossesKOTKO:      f.LossesKOTKO,
		LossesSubmission: f.LossesSubmission,
		LossesDecision:   f.LossesDecision,
		ProfileURL:       f.ProfileURL,
		ProfileScraped:   f.ProfileScraped,
	}
}
