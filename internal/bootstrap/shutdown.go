package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/scheduler"
	"github.com/fightpicks/fightpicks/internal/server"
	"github.com/fightpicks/fightpicks/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     *pgxpool.Pool
}

// GracefulShutdown stops the application in dependency order:
// 1. Scheduler (no new reconcile jobs)
// 2. Worker pool (finish queued jobs)
// 3. HTTP server (finish in-flight requests)
// 4. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		if err := c.Scheduler.Stop(); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}

	if c.WorkerPool != nil {
		slog.Info(LogMsgDrainingWorkerPool)
		drained := make(chan struct{})
		go func() {
			c.WorkerPool.Stop()
			close(drained)
		}()
		select {
		case <-drained:
		case <-ctx.Done():
			slog.Warn(LogMsgWorkerPoolStopTimeout, "error", ctx.Err())
		}
	}

	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
