package services

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// LedgerSvc aggregates cash movements into the cash-flow log and dashboard figures.
type LedgerSvc interface {
	// CashFlow returns the full signed log sorted by date descending.
	CashFlow(ctx context.Context) ([]domain.LedgerLine, error)

	// CashFlowPage returns one page of the log and a token for the next page.
	CashFlowPage(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerLine, *string, error)

	// Summary returns cash, receivables, obligations and the net forecast as of today.
	Summary(ctx context.Context, today time.Time) (*domain.LedgerSummary, error)

	// MonthlyProfit returns the accrual profit of one calendar month.
	MonthlyProfit(ctx context.Context, month time.Month, year int) (*domain.MonthlyProfit, error)
}
