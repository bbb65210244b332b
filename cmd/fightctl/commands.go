package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/fightpicks/fightpicks/internal/bootstrap"
	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/database"
	"github.com/fightpicks/fightpicks/internal/database/postgres"
	"github.com/fightpicks/fightpicks/internal/resolution"
)

const flagFight = "fight"

// withPool loads configuration, opens the database and hands the pool to fn.
func withPool(c *cli.Context, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(c.Context, pool)
}

func newMigrateCommand() *cli.Command {
	migrate := func(run func(ctx context.Context, pool *pgxpool.Pool) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			return withPool(c, run)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply all pending migrations",
				Action: migrate(database.MigrateUp),
			},
			{
				Name:   "down",
				Usage:  "roll back the most recent migration",
				Action: migrate(database.MigrateDown),
			},
			{
				Name:   "status",
				Usage:  "print migration status",
				Action: migrate(database.MigrationStatus),
			},
		},
	}
}

func newResolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "re-grade a fight against its stored result",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagFight, Usage: "fight id", Required: true},
		},
		Action: func(c *cli.Context) error {
			fightID := c.Int(flagFight)
			if fightID < 1 {
				return cli.Exit(fmt.Sprintf("invalid --%s %d", flagFight, fightID), 2)
			}
			return withPool(c, func(ctx context.Context, pool *pgxpool.Pool) error {
				svc := resolution.NewService(postgres.NewResultRepository(pool))
				summary, err := svc.Resolve(ctx, fightID)
				if err != nil {
					return err
				}
				return printJSON(summary)
			})
		},
	}
}

func newReconcileEventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "reconcile-events",
		Usage: "recompute is_upcoming for every event with fights",
		Action: func(c *cli.Context) error {
			return withPool(c, func(ctx context.Context, pool *pgxpool.Pool) error {
				svc := resolution.NewService(postgres.NewResultRepository(pool))
				changed, err := svc.ReconcileEvents(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%d event(s) changed status\n", changed)
				return nil
			})
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
