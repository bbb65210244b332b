package repository

import "context"

// Tx is the commit/rollback surface shared by transactional repositories
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
