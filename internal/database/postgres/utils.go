package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/fightpicks/internal/database/generated"
	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// txHelper wraps common transaction begin logic.
// Returns a transaction and queries instance with the transaction applied.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(ctx context.Context) error {
	return h.tx.Commit(ctx)
}

// Tx returns the underlying transaction for SafeRollback
func (h *txHelper) Tx() pgx.Tx {
	return h.tx
}

// Queries returns the transaction-bound queries
func (h *txHelper) Queries() *generated.Queries {
	return h.q
}

// translateError maps pgx and constraint errors onto domain errors.
// notFound is returned for missing rows, conflict for unique violations.
// Foreign key violations are reported through refErrors keyed by constraint name.
func translateError(err error, notFound, conflict error, refErrors map[string]error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation:
			if conflict != nil {
				return conflict
			}
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case PgErrorCodeForeignKeyViolation:
			if refErr, ok := refErrors[pgErr.ConstraintName]; ok {
				return refErr
			}
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
		}
	}
	return err
}

// ---- pgtype conversions ----

// ptrTime converts a pgtype.Timestamptz to *time.Time.
// Returns nil if the timestamp is not valid.
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func timeOf(t pgtype.Timestamptz) time.Time {
	return t.Time.UTC()
}

func ptrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// ptrInt converts a pgtype.Int4 to *int.
// Returns nil if the int is not valid.
func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

// intToInt4 converts an int to pgtype.Int4
func intToInt4(i int) pgtype.Int4 {
	return pgtype.Int4{Int32: int32(i), Valid: true}
}

func ptrToInt4(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return intToInt4(*i)
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// strToText converts a string to pgtype.Text
func strToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ptrToText converts a string pointer to pgtype.Text
func ptrToText(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func float8ToPtr(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func ptrToFloat8(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func boolToPtr(b pgtype.Bool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}

func ptrToBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func dateToPtr(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	v := domain.NewDate(d.Time)
	return &v
}

func ptrToDate(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time, Valid: true}
}

// idsToInt32 converts domain ids for ANY($1::int[]) parameters
func idsToInt32(ids []int) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}

// writeError translates a failed write, wrapping untranslated errors with msg
func writeError(msg string, err error, notFound, conflict error, refErrors map[string]error) error {
	if translated := translateError(err, notFound, conflict, refErrors); translated != err {
		return translated
	}
	return fmt.Errorf("%s: %w", msg, err)
}
