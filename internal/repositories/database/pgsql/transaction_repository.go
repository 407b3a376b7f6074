package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/dispatch_ledger/internal/models"
	"github.com/SscSPs/dispatch_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository reads manual income and expense entries.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionReader {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

const transactionSelect = `
	SELECT transaction_id, date, kind, category, amount, description
	FROM transactions`

func (r *PgxTransactionRepository) list(ctx context.Context, what string, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.wrap("failed to query "+what, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, r.wrap("failed to scan "+what, err)
	}

	txs := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		t, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to map "+what, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, "transactions", transactionSelect+` ORDER BY to_date(date, 'DD.MM.YYYY'), transaction_id`)
}

func (r *PgxTransactionRepository) ListTransactionsByMonth(ctx context.Context, month time.Month, year int) ([]domain.Transaction, error) {
	return r.list(ctx, fmt.Sprintf("transactions of %02d.%04d", int(month), year),
		transactionSelect+` WHERE date LIKE $1 ORDER BY to_date(date, 'DD.MM.YYYY'), transaction_id`,
		domain.MonthPattern(month, year))
}
