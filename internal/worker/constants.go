package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 2 * time.Minute

// Pool sizing for the API process
const (
	// Reconciliation is the only background job
	DefaultWorkers   = 2
	DefaultQueueSize = 8 // scheduler ticks beyond this are skipped, not queued
)

// Job names, used as metric labels
const (
	JobNameReconcileEvents = "reconcile_events"
)

// Log messages
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobDone    = "Worker job finished"
	LogMsgPoolStopped      = "Worker pool stopped, job dropped"
	LogMsgEventsReconciled = "Event statuses reconciled"
)
