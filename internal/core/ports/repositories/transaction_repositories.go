package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// TransactionReader defines read operations for manual income and expense entries.
type TransactionReader interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByMonth retrieves the transactions dated in the given month.
	ListTransactionsByMonth(ctx context.Context, month time.Month, year int) ([]domain.Transaction, error)
}
