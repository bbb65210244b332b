package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections int32 = 2

	// ConnectTimeout bounds pool creation and the initial ping
	ConnectTimeout = 10 * time.Second
)

// Migration settings
const (
	MigrationDialect = "postgres"
	// MigrationDir is the directory inside migrations.FS holding the goose files
	MigrationDir = "."
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToSetDialect          = "failed to set migration dialect"
	ErrMsgFailedToMigrate             = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgMigrationRolledBack             = "Rolled back one database migration"
)
