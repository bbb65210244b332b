// Package fixtures builds randomized domain inputs for tests.
package fixtures

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/fightpicks/fightpicks/internal/domain"
)

var organizations = []string{"UFC", "Bellator", "PFL", "ONE", "ACA"}

var weightClasses = []string{"Flyweight", "Bantamweight", "Featherweight", "Lightweight", "Welterweight", "Middleweight"}

// Generator produces test data from a seeded faker.
type Generator struct {
	faker *gofakeit.Faker
	seed  uint64
	seq   int
}

// New creates a generator. Without a seed the current time is used.
func New(seed ...uint64) *Generator {
	s := uint64(time.Now().UnixNano())
	if len(seed) > 0 {
		s = seed[0]
	}
	return &Generator{faker: gofakeit.New(s), seed: s}
}

// Seed returns the seed the generator was created with
func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) next() int {
	g.seq++
	return g.seq
}

// FighterInput returns a fighter with a plausible record
func (g *Generator) FighterInput() *domain.FighterInput {
	wins := g.faker.Number(0, 30)
	ko := g.faker.Number(0, wins)
	sub := g.faker.Number(0, wins-ko)
	return &domain.FighterInput{
		Name:           g.faker.Name(),
		Country:        domain.Ptr(g.faker.Country()),
		Wins:           wins,
		Losses:         g.faker.Number(0, 15),
		Draws:          g.faker.Number(0, 3),
		Age:            domain.Ptr(g.faker.Number(19, 42)),
		HeightCM:       domain.Ptr(g.faker.Number(155, 205)),
		WeightKG:       domain.Ptr(float64(g.faker.Number(52, 120))),
		ReachCM:        domain.Ptr(g.faker.Number(155, 215)),
		WeightClass:    domain.Ptr(g.faker.RandomString(weightClasses)),
		WinsKOTKO:      ko,
		WinsSubmission: sub,
		WinsDecision:   wins - ko - sub,
	}
}

// EventInput returns an upcoming event with a unique slug
func (g *Generator) EventInput() *domain.EventInput {
	org := g.faker.RandomString(organizations)
	name := fmt.Sprintf("%s %d", org, g.faker.Number(100, 999))
	return &domain.EventInput{
		Name:         name,
		Organization: org,
		Location:     domain.Ptr(g.faker.City()),
		URL:          g.faker.URL(),
		Slug:         fmt.Sprintf("%s-%d-%d", g.faker.Word(), g.faker.Number(1000, 9999), g.next()),
		IsUpcoming:   domain.Ptr(true),
	}
}

// FightInput returns a three-round main card fight between two fighters
func (g *Generator) FightInput(eventID, fighter1ID, fighter2ID int) *domain.FightInput {
	return &domain.FightInput{
		EventID:     eventID,
		Fighter1ID:  domain.Ptr(fighter1ID),
		Fighter2ID:  domain.Ptr(fighter2ID),
		CardType:    domain.CardMain,
		WeightClass: domain.Ptr(g.faker.RandomString(weightClasses)),
		Rounds:      domain.Ptr(3),
		FightOrder:  domain.Ptr(g.next()),
	}
}

// TelegramAuthData returns a login payload with a fresh auth_date
func (g *Generator) TelegramAuthData() *domain.TelegramAuthData {
	return &domain.TelegramAuthData{
		ID:        int64(g.faker.Number(100000, 999999999)) + int64(g.next()),
		FirstName: g.faker.FirstName(),
		LastName:  domain.Ptr(g.faker.LastName()),
		Username:  domain.Ptr(g.faker.Username()),
		AuthDate:  time.Now().Unix(),
		Hash:      g.faker.LetterN(64),
	}
}

// PredictionInput returns a random pick for the fight
func (g *Generator) PredictionInput(fightID int) *domain.PredictionInput {
	winner := domain.PredictedFighter1
	if g.faker.Bool() {
		winner = domain.PredictedFighter2
	}
	return &domain.PredictionInput{
		FightID:         fightID,
		PredictedWinner: winner,
		WinMethod:       domain.AllWinMethods[g.faker.Number(0, len(domain.AllWinMethods)-1)],
		Confidence:      domain.Ptr(g.faker.Number(1, 5)),
	}
}

// ScorecardInput returns a card with a valid 10-point-must score for each round
func (g *Generator) ScorecardInput(fightID, rounds int) *domain.ScorecardInput {
	in := &domain.ScorecardInput{FightID: fightID}
	for r := 1; r <= rounds; r++ {
		loser := g.faker.Number(7, 9)
		round := domain.RoundScoreInput{RoundNumber: r, Fighter1Score: 10, Fighter2Score: loser}
		if g.faker.Bool() {
			round.Fighter1Score, round.Fighter2Score = loser, 10
		}
		in.RoundScores = append(in.RoundScores, round)
	}
	return in
}

// ScrapedFighter returns a card-level fighter without profile stats
func (g *Generator) ScrapedFighter() domain.ScrapedFighter {
	return domain.ScrapedFighter{
		Name:       fmt.Sprintf("%s %d", g.faker.Name(), g.next()),
		Country:    domain.Ptr(g.faker.Country()),
		Wins:       g.faker.Number(0, 30),
		Losses:     g.faker.Number(0, 15),
		Draws:      g.faker.Number(0, 3),
		ProfileURL: domain.Ptr(g.faker.URL()),
	}
}

// ScrapedEvent returns an upcoming scraped event with n three-round bouts
func (g *Generator) ScrapedEvent(n int) *domain.ScrapedEvent {
	org := g.faker.RandomString(organizations)
	ev := &domain.ScrapedEvent{
		Name:         fmt.Sprintf("%s %d", org, g.faker.Number(100, 999)),
		Organization: org,
		Slug:         fmt.Sprintf("%s-%d-%d", g.faker.Word(), g.faker.Number(1000, 9999), g.next()),
		URL:          fmt.Sprintf("%s/events/%d", g.faker.URL(), g.next()),
		EventDate:    domain.Ptr(domain.NewDate(time.Now().AddDate(0, 0, g.faker.Number(1, 60)))),
		TimeMSK:      domain.Ptr("22:00"),
		Location:     domain.Ptr(g.faker.City()),
		IsUpcoming:   domain.Ptr(true),
	}
	for i := 0; i < n; i++ {
		ev.Fights = append(ev.Fights, domain.ScrapedFight{
			Fighter1:    g.ScrapedFighter(),
			Fighter2:    g.ScrapedFighter(),
			CardType:    string(domain.CardMain),
			WeightClass: domain.Ptr(g.faker.RandomString(weightClasses)),
			Rounds:      domain.Ptr(3),
			FightOrder:  domain.Ptr(i + 1),
		})
	}
	return ev
}
