package pgsql

import (
	"context"
	"errors"
	"net"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database answers.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return r.wrap("failed to ping database", err)
	}
	return nil
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, r.wrap("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return r.wrap("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return r.wrap("failed to rollback transaction", err)
	}
	return nil
}

// wrap classifies a driver error into an AppError carrying the matching sentinel.
func (r *BaseRepository) wrap(message string, err error) error {
	switch {
	case isUniqueViolation(err):
		return apperrors.NewAppError(409, message, errors.Join(apperrors.ErrDuplicate, err))
	case isUnavailable(err):
		return apperrors.NewAppError(503, message, errors.Join(apperrors.ErrStoreUnavailable, err))
	default:
		return apperrors.NewAppError(500, message, err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isUnavailable reports connection-level failures: the server could not be
// reached, the connection dropped, or the deadline ran out.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
