package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryPayment records that one salary period was settled for a professional.
type SalaryPayment struct {
	PaymentID      string          `json:"paymentID"`
	ProfessionalID string          `json:"professionalID"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	PeriodKey      string          `json:"periodKey"`
	PeriodKind     PeriodKind      `json:"periodKind"`
}

// SettlementConflict reports a settlement key that was paid more than once.
type SettlementConflict struct {
	ProfessionalID string     `json:"professionalID"`
	PeriodKey      string     `json:"periodKey"`
	PeriodKind     PeriodKind `json:"periodKind"`
	PaymentIDs     []string   `json:"paymentIDs"`
}

// SalaryStatus is a salaried professional with the settlement state of one period.
type SalaryStatus struct {
	Professional Professional    `json:"professional"`
	PeriodKind   PeriodKind      `json:"periodKind"`
	PeriodKey    string          `json:"periodKey"`
	Amount       decimal.Decimal `json:"amount"`
	IsPaid       bool            `json:"isPaid"`
}
