package bootstrap

import (
	"log/slog"

	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/handler"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// SetupLogger initializes the process-wide slog logger from configuration.
// Source locations are only attached outside production.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := !cfg.IsProduction() && cfg.LogLevel == LogLevelDebug

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		ServiceName,
		handler.GetVersion(),
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"version", handler.GetVersion())

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"reconcile_interval", cfg.EventReconcileInterval)

	return l
}
