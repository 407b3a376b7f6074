package services

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// SalarySvc settles and reports salary periods.
type SalarySvc interface {
	// SettleSalary records the professional's salary for the period containing today.
	// Settling the same period twice fails with apperrors.ErrDuplicate.
	SettleSalary(ctx context.Context, professionalID string, kind domain.PeriodKind, today time.Time) (*domain.SalaryPayment, error)

	// SalaryStatus lists salaried professionals drawing the given kind of salary with
	// their paid flag for the current period.
	SalaryStatus(ctx context.Context, kind domain.PeriodKind, today time.Time) ([]domain.SalaryStatus, error)

	// Reconcile reports settlement keys that were paid more than once.
	Reconcile(ctx context.Context) ([]domain.SettlementConflict, error)
}

// PieceRateSvc pays per-job worker prices.
type PieceRateSvc interface {
	ListUnpaidPieceRate(ctx context.Context) ([]domain.Job, error)

	// PayPieceRate marks an assigned job's worker price as paid.
	PayPieceRate(ctx context.Context, jobID string) (*domain.Job, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	SalarySvc
	PieceRateSvc
}
