package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/fightpicks/fightpicks/migrations"
)

// MigrateUp applies every pending migration embedded in the binary.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	db, err := openMigrator(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, MigrationDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	db, err := openMigrator(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.DownContext(ctx, db, MigrationDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Default().Info(LogMsgMigrationRolledBack)
	return nil
}

// MigrationStatus prints the applied state of every migration through goose's logger.
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) error {
	db, err := openMigrator(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.StatusContext(ctx, db, MigrationDir)
}

func openMigrator(pool *pgxpool.Pool) (*sql.DB, error) {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return stdlib.OpenDBFromPool(pool), nil
}
