package resolution

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fightpicks/fightpicks/internal/domain"
)

var finishTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ValidFinishTime reports whether s looks like M:SS or MM:SS with seconds below 60.
func ValidFinishTime(s string) bool {
	if !finishTimePattern.MatchString(s) {
		return false
	}
	sec, err := strconv.Atoi(s[strings.IndexByte(s, ':')+1:])
	return err == nil && sec < 60
}

// ValidateResultInput checks a result against the fight's scheduled rounds.
func ValidateResultInput(in *domain.FightResultInput, rounds int) error {
	if !in.Winner.Valid() {
		return invalid(ErrMsgInvalidWinner)
	}
	if !in.Method.Valid() {
		return invalid(ErrMsgInvalidMethod)
	}
	if in.FinishRound != nil && (*in.FinishRound < 1 || *in.FinishRound > rounds) {
		return invalid(ErrMsgFinishRoundOutOfRange, rounds)
	}
	if in.FinishTime != nil && !ValidFinishTime(*in.FinishTime) {
		return invalid(ErrMsgInvalidFinishTime)
	}

	if len(in.OfficialScorecards) > domain.JudgesRequired {
		return invalid(ErrMsgTooManyJudgeCards, domain.JudgesRequired)
	}
	if in.Method == domain.MethodDecision && len(in.OfficialScorecards) != domain.JudgesRequired {
		return invalid(ErrMsgJudgeCardCount, domain.JudgesRequired, len(in.OfficialScorecards))
	}

	for i, card := range in.OfficialScorecards {
		n := i + 1
		if strings.TrimSpace(card.JudgeName) == "" {
			return invalid(ErrMsgJudgeNameRequired, n)
		}
		// Only a decision must cover every scheduled round.
		if in.Method == domain.MethodDecision && len(card.RoundScores) != rounds {
			return invalid(ErrMsgJudgeRoundCount, n, rounds, len(card.RoundScores))
		}
		maxRound := domain.MaxRounds
		if in.Method == domain.MethodDecision {
			maxRound = rounds
		}
		seen := make(map[int]bool, len(card.RoundScores))
		for _, r := range card.RoundScores {
			if r.RoundNumber < 1 || r.RoundNumber > maxRound {
				return invalid(ErrMsgJudgeRoundOutOfRange, n, r.RoundNumber, maxRound)
			}
			if seen[r.RoundNumber] {
				return invalid(ErrMsgJudgeRoundDuplicate, n, r.RoundNumber)
			}
			seen[r.RoundNumber] = true
			if !validScore(r.Fighter1Score) || !validScore(r.Fighter2Score) {
				return invalid(ErrMsgJudgeScoreOutOfRange, n, r.RoundNumber, domain.MinRoundScore, domain.MaxRoundScore)
			}
		}
	}
	return nil
}

func validScore(s int) bool {
	return s >= domain.MinRoundScore && s <= domain.MaxRoundScore
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}
