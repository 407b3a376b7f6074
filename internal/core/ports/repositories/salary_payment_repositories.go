package repositories

import (
	"context"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// SalaryPaymentReader defines read operations for salary settlements
type SalaryPaymentReader interface {
	// FindSalaryPayment retrieves the settlement for one (professional, period key, kind),
	// or apperrors.ErrNotFound when the period is unsettled.
	FindSalaryPayment(ctx context.Context, professionalID, periodKey string, kind domain.PeriodKind) (*domain.SalaryPayment, error)

	// ListSalaryPayments retrieves every recorded settlement.
	ListSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error)

	// FindDuplicateSettlements reports settlement keys recorded more than once.
	FindDuplicateSettlements(ctx context.Context) ([]domain.SettlementConflict, error)
}

// SalaryPaymentWriter defines write operations for salary settlements
type SalaryPaymentWriter interface {
	// SaveSalaryPayment records a settlement. A second settlement for the same
	// (professional, period key, kind) fails with apperrors.ErrDuplicate.
	SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment) error
}

// SalaryPaymentRepositoryFacade combines all salary payment repository interfaces
type SalaryPaymentRepositoryFacade interface {
	SalaryPaymentReader
	SalaryPaymentWriter
}
