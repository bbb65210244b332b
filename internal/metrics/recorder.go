package metrics

import (
	"time"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// RecordResolution records one committed resolution pass.
func RecordResolution(summary *domain.ResolutionSummary, elapsed time.Duration) {
	ResultsResolved.WithLabelValues(string(summary.Action)).Inc()
	ResolutionDuration.Observe(elapsed.Seconds())

	if summary.Cleared {
		PredictionsGraded.WithLabelValues(OutcomeCleared).Add(float64(summary.PredictionsGraded))
		ScorecardRoundsGraded.WithLabelValues(OutcomeCleared).Add(float64(summary.RoundsGraded))
	} else {
		PredictionsGraded.WithLabelValues(OutcomeCorrect).Add(float64(summary.PredictionsCorrect))
		PredictionsGraded.WithLabelValues(OutcomeIncorrect).Add(float64(summary.PredictionsIncorrect))
		PredictionsGraded.WithLabelValues(OutcomeVoid).Add(float64(summary.PredictionsVoid))
		ScorecardRoundsGraded.WithLabelValues(OutcomeCorrect).Add(float64(summary.RoundsCorrect))
		ScorecardRoundsGraded.WithLabelValues(OutcomeIncorrect).Add(float64(summary.RoundsGraded - summary.RoundsCorrect))
	}

	if summary.EventStatusChanged {
		EventStatusTransitions.Inc()
	}
}

// RecordPick counts a submitted prediction or scorecard.
func RecordPick(kind string) {
	PicksSubmitted.WithLabelValues(kind).Inc()
}

// RecordLogin counts a login attempt.
func RecordLogin(kind string, ok bool) {
	status := StatusSuccess
	if !ok {
		status = StatusFailure
	}
	Logins.WithLabelValues(kind, status).Inc()
}

// RecordJob counts a processed background job.
func RecordJob(job string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	JobsProcessed.WithLabelValues(job, status).Inc()
}
