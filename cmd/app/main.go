package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/fightpicks/fightpicks/docs"
	"github.com/fightpicks/fightpicks/internal/bootstrap"
	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/database"
	"github.com/fightpicks/fightpicks/internal/scheduler"
	"github.com/fightpicks/fightpicks/internal/server"
	"github.com/fightpicks/fightpicks/internal/worker"
)

// @title           Fightpicks API
// @version         1.0
// @description     Fight predictions, round-by-round scorecards and result resolution.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if cfg.IsProduction() {
			return err
		}
		slog.Warn(bootstrap.LogMsgEnvWarning, "error", err)
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgEnvWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	if cfg.DBAutoMigrate {
		if err := database.MigrateUp(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	app := bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(dbPool))
	slog.Info(bootstrap.LogMsgServicesInitialized)

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()

	sched, err := scheduler.New(pool)
	if err != nil {
		pool.Stop()
		dbPool.Close()
		return err
	}
	if err := sched.Schedule(cfg.EventReconcileInterval, worker.NewReconcileEventsJob(app.Services.Resolution)); err != nil {
		_ = sched.Stop()
		pool.Stop()
		dbPool.Close()
		return err
	}
	if cfg.EventReconcileInterval > 0 {
		slog.Info(bootstrap.LogMsgReconcilerScheduled, "interval", cfg.EventReconcileInterval)
	} else {
		slog.Info(bootstrap.LogMsgReconcilerDisabled)
	}
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:      cfg.IsProduction(),
		AdminSessionTTL:    cfg.AdminSessionTTL,
	}, dbPool, app.Services, app.Tokens, app.Sessions)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     dbPool,
	})

	return runErr
}
