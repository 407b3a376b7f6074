package services

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// ObligationSvc computes what is still owed to workers.
type ObligationSvc interface {
	// CalculateObligations returns piece-rate debt and salary debt as of today.
	CalculateObligations(ctx context.Context, today time.Time) (*domain.Obligations, error)

	// IsMonthlySettled reports whether the professional's salary for today's month was paid.
	IsMonthlySettled(ctx context.Context, professionalID string, today time.Time) (bool, error)
}
