package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/auth"
	"github.com/fightpicks/fightpicks/internal/catalog"
	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/database/postgres"
	"github.com/fightpicks/fightpicks/internal/prediction"
	"github.com/fightpicks/fightpicks/internal/repository"
	"github.com/fightpicks/fightpicks/internal/resolution"
	"github.com/fightpicks/fightpicks/internal/scorecard"
	"github.com/fightpicks/fightpicks/internal/server"
	"github.com/fightpicks/fightpicks/internal/stats"
	"github.com/fightpicks/fightpicks/internal/user"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User       repository.User
	Catalog    repository.Catalog
	Prediction repository.Prediction
	Scorecard  repository.Scorecard
	Stats      repository.Stats
	Result     repository.Result
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       postgres.NewUserRepository(dbPool),
		Catalog:    postgres.NewCatalogRepository(dbPool),
		Prediction: postgres.NewPredictionRepository(dbPool),
		Scorecard:  postgres.NewScorecardRepository(dbPool),
		Stats:      postgres.NewStatsRepository(dbPool),
		Result:     postgres.NewResultRepository(dbPool),
	}
}

// Application bundles the services and credential stores the entrypoints share.
type Application struct {
	Services server.Services
	Tokens   *auth.TokenProvider
	Sessions *auth.AdminSessions
}

// InitializeServices wires the domain services on top of the repositories.
// The catalog service reconciles event status through the resolution service
// so editing a card keeps is_upcoming consistent.
func InitializeServices(cfg *config.Config, repos *Repositories) *Application {
	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.JWTTTL)
	verifier := auth.NewTelegramVerifier(auth.TelegramConfig{
		BotToken: cfg.TelegramBotToken,
		DevHash:  cfg.TelegramDevHash,
		MaxAge:   cfg.TelegramAuthMaxAge,
	})
	sessions := auth.NewAdminSessions(auth.AdminConfig{
		Username:   cfg.AdminUsername,
		Password:   cfg.AdminPassword,
		SessionTTL: cfg.AdminSessionTTL,
	})

	userSvc := user.NewService(repos.User, verifier, tokens, user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})
	resolutionSvc := resolution.NewService(repos.Result)

	return &Application{
		Services: server.Services{
			Catalog:    catalog.NewService(repos.Catalog, resolutionSvc),
			Prediction: prediction.NewService(repos.Prediction, userSvc),
			Scorecard:  scorecard.NewService(repos.Scorecard, userSvc),
			Stats:      stats.NewService(repos.Stats),
			User:       userSvc,
			Resolution: resolutionSvc,
		},
		Tokens:   tokens,
		Sessions: sessions,
	}
}
