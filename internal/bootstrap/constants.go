package bootstrap

import "time"

// Log level string constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ServiceName is attached to every log line
const ServiceName = "fightpicks"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting fightpicks"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgEnvWarning          = "Environment warning"
)

// Log messages for wiring
const (
	LogMsgServicesInitialized = "Services initialized"
	LogMsgReconcilerScheduled = "Event reconciler scheduled"
	LogMsgReconcilerDisabled  = "Event reconciler disabled"
)

// DefaultShutdownTimeout bounds the whole graceful shutdown sequence
const DefaultShutdownTimeout = 15 * time.Second

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgStoppingScheduler     = "Stopping scheduler..."
	LogMsgDrainingWorkerPool    = "Draining worker pool..."
	LogMsgClosingDatabase       = "Closing database pool..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgSchedulerStopFailed   = "Scheduler shutdown failed"
	LogMsgWorkerPoolStopTimeout = "Worker pool did not drain before the deadline"
)
