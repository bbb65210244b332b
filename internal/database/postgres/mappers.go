package postgres

import (
	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
)

func mapFighter(f generated.Fighter) domain.Fighter {
	return domain.Fighter{
		ID:               int(f.ID),
		Name:             f.Name,
		NameEnglish:      textToPtr(f.NameEnglish),
		Country:          textToPtr(f.Country),
		Wins:             int(f.Wins),
		Losses:           int(f.Losses),
		Draws:            int(f.Draws),
		Age:              ptrInt(f.Age),
		HeightCM:         ptrInt(f.HeightCm),
		WeightKG:         float8ToPtr(f.WeightKg),
		ReachCM:          ptrInt(f.ReachCm),
		Style:            textToPtr(f.Style),
		WeightClass:      textToPtr(f.WeightClass),
		Ranking:          textToPtr(f.Ranking),
		WinsKOTKO:        int(f.WinsKoTko),
		WinsSubmission:   int(f.WinsSubmission),
		WinsDecision:     int(f.WinsDecision),
		LossesKOTKO:      int(f.LossesKoTko),
		LossesSubmission: int(f.LossesSubmission),
		LossesDecision:   int(f.LossesDecision),
		ProfileURL:       textToPtr(f.ProfileUrl),
		ProfileScraped:   f.ProfileScraped,
		Record:           domain.FormatRecord(int(f.Wins), int(f.Losses), int(f.Draws)),
		CreatedAt:        timeOf(f.CreatedAt),
		UpdatedAt:        timeOf(f.UpdatedAt),
	}
}

func mapEvent(e generated.Event) domain.Event {
	return domain.Event{
		ID:           int(e.ID),
		Name:         e.Name,
		Organization: e.Organization,
		EventDate:    dateToPtr(e.EventDate),
		TimeMSK:      textToPtr(e.TimeMsk),
		Location:     textToPtr(e.Location),
		IsUpcoming:   e.IsUpcoming,
		Slug:         e.Slug,
		URL:          e.Url,
		ScrapedAt:    timeOf(e.ScrapedAt),
		UpdatedAt:    timeOf(e.UpdatedAt),
	}
}

func mapFight(f generated.Fight) domain.Fight {
	return domain.Fight{
		ID:            int(f.ID),
		EventID:       int(f.EventID),
		Fighter1ID:    ptrInt(f.Fighter1ID),
		Fighter2ID:    ptrInt(f.Fighter2ID),
		CardType:      domain.CardType(f.CardType),
		WeightClass:   textToPtr(f.WeightClass),
		Rounds:        ptrInt(f.Rounds),
		ScheduledTime: textToPtr(f.ScheduledTime),
		FightOrder:    ptrInt(f.FightOrder),
		CreatedAt:     timeOf(f.CreatedAt),
		UpdatedAt:     timeOf(f.UpdatedAt),
	}
}

// mapFightWithEvent maps the joined fight rows that carry event metadata
func mapFightWithEvent(f generated.Fight, eventName string, eventDate *domain.Date, organization string) domain.Fight {
	fight := mapFight(f)
	fight.EventName = &eventName
	fight.EventDate = eventDate
	fight.Organization = &organization
	return fight
}

func mapGetFightRow(r generated.GetFightRow) domain.Fight {
	return mapFightWithEvent(generated.Fight{
		ID:            r.ID,
		EventID:       r.EventID,
		Fighter1ID:    r.Fighter1ID,
		Fighter2ID:    r.Fighter2ID,
		CardType:      r.CardType,
		WeightClass:   r.WeightClass,
		Rounds:        r.Rounds,
		ScheduledTime: r.ScheduledTime,
		FightOrder:    r.FightOrder,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, r.EventName, dateToPtr(r.EventDate), r.Organization)
}

func mapFighterFightRow(r generated.ListFighterFightsRow) domain.Fight {
	return mapFightWithEvent(generated.Fight{
		ID:            r.ID,
		EventID:       r.EventID,
		Fighter1ID:    r.Fighter1ID,
		Fighter2ID:    r.Fighter2ID,
		CardType:      r.CardType,
		WeightClass:   r.WeightClass,
		Rounds:        r.Rounds,
		ScheduledTime: r.ScheduledTime,
		FightOrder:    r.FightOrder,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, r.EventName, dateToPtr(r.EventDate), r.Organization)
}

func mapUser(u generated.User) domain.User {
	user := domain.User{
		ID:         int(u.ID),
		TelegramID: u.TelegramID,
		Username:   textToPtr(u.Username),
		FirstName:  u.FirstName,
		LastName:   textToPtr(u.LastName),
		PhotoURL:   textToPtr(u.PhotoUrl),
		AuthDate:   timeOf(u.AuthDate),
		CreatedAt:  timeOf(u.CreatedAt),
		UpdatedAt:  timeOf(u.UpdatedAt),
	}
	user.DisplayName = domain.BuildDisplayName(user.Username, user.FirstName, user.LastName)
	return user
}

func mapPrediction(p generated.Prediction) domain.Prediction {
	return domain.Prediction{
		ID:              int(p.ID),
		UserID:          int(p.UserID),
		FightID:         int(p.FightID),
		PredictedWinner: domain.PredictedWinner(p.PredictedWinner),
		WinMethod:       domain.WinMethod(p.WinMethod),
		Confidence:      ptrInt(p.Confidence),
		CreatedAt:       timeOf(p.CreatedAt),
		IsCorrect:       boolToPtr(p.IsCorrect),
		ResolvedAt:      ptrTime(p.ResolvedAt),
	}
}

func mapRoundScore(r generated.RoundScore) domain.RoundScore {
	return domain.RoundScore{
		ID:            int(r.ID),
		RoundNumber:   int(r.RoundNumber),
		Fighter1Score: int(r.Fighter1Score),
		Fighter2Score: int(r.Fighter2Score),
		IsCorrect:     boolToPtr(r.IsCorrect),
	}
}

func mapScorecard(s generated.Scorecard, rounds []generated.RoundScore) domain.Scorecard {
	card := domain.Scorecard{
		ID:            int(s.ID),
		UserID:        int(s.UserID),
		FightID:       int(s.FightID),
		CreatedAt:     timeOf(s.CreatedAt),
		RoundScores:   make([]domain.RoundScore, 0, len(rounds)),
		CorrectRounds: int(s.CorrectRounds),
		TotalRounds:   int(s.TotalRounds),
		ResolvedAt:    ptrTime(s.ResolvedAt),
	}
	for _, r := range rounds {
		card.RoundScores = append(card.RoundScores, mapRoundScore(r))
	}
	card.ComputeTotals()
	return card
}

func mapOfficialScorecard(s generated.OfficialScorecard, rounds []generated.OfficialRoundScore) domain.OfficialScorecard {
	card := domain.OfficialScorecard{
		ID:          int(s.ID),
		JudgeName:   s.JudgeName,
		RoundScores: make([]domain.OfficialRoundScore, 0, len(rounds)),
	}
	for _, r := range rounds {
		card.RoundScores = append(card.RoundScores, domain.OfficialRoundScore{
			ID:            int(r.ID),
			RoundNumber:   int(r.RoundNumber),
			Fighter1Score: int(r.Fighter1Score),
			Fighter2Score: int(r.Fighter2Score),
		})
	}
	card.ComputeTotals()
	return card
}

func mapFightResult(r generated.FightResult, cards []domain.OfficialScorecard) domain.FightResult {
	if cards == nil {
		cards = []domain.OfficialScorecard{}
	}
	return domain.FightResult{
		ID:                 int(r.ID),
		FightID:            int(r.FightID),
		Winner:             domain.FightWinner(r.Winner),
		Method:             domain.WinMethod(r.Method),
		FinishRound:        ptrInt(r.FinishRound),
		FinishTime:         textToPtr(r.FinishTime),
		IsResolved:         r.IsResolved,
		OfficialScorecards: cards,
		CreatedAt:          timeOf(r.CreatedAt),
		UpdatedAt:          timeOf(r.UpdatedAt),
	}
}
