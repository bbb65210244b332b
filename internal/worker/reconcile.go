package worker

import (
	"context"
	"fmt"

	"github.com/fightpicks/fightpicks/internal/logger"
)

// EventReconciler recomputes is_upcoming for events with fights
type EventReconciler interface {
	ReconcileEvents(ctx context.Context) (int, error)
}

// ReconcileEventsJob keeps event statuses in line with recorded results,
// covering fights added or removed outside the admin API.
type ReconcileEventsJob struct {
	reconciler EventReconciler
}

// NewReconcileEventsJob creates the job
func NewReconcileEventsJob(reconciler EventReconciler) *ReconcileEventsJob {
	return &ReconcileEventsJob{reconciler: reconciler}
}

// Name implements Job
func (j *ReconcileEventsJob) Name() string {
	return JobNameReconcileEvents
}

// Process implements Job
func (j *ReconcileEventsJob) Process(ctx context.Context) error {
	changed, err := j.reconciler.ReconcileEvents(ctx)
	if err != nil {
		return fmt.Errorf("reconcile events: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgEventsReconciled, "changed", changed)
	return nil
}
