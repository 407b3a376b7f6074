package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBaseRepository_WrapClassifiesDriverErrors(t *testing.T) {
	r := &BaseRepository{}

	tests := []struct {
		name     string
		err      error
		code     int
		sentinel error
	}{
		{
			name:     "unique violation",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "salary_payments_settlement_key"}),
			code:     409,
			sentinel: apperrors.ErrDuplicate,
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("query: %w", context.DeadlineExceeded),
			code:     503,
			sentinel: apperrors.ErrStoreUnavailable,
		},
		{
			name:     "network",
			err:      &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			code:     503,
			sentinel: apperrors.ErrStoreUnavailable,
		},
		{
			name: "other",
			err:  &pgconn.PgError{Code: "42P01"},
			code: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.wrap("failed", tt.err)

			var appErr *apperrors.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.code, appErr.Code)
			}
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			} else {
				assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
				assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
