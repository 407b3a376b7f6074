package dto

import (
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettleSalaryRequest settles the salary period containing Date (default today).
type SettleSalaryRequest struct {
	ProfessionalID string `json:"professionalID" binding:"required"`
	PeriodKind     string `json:"periodKind" binding:"required,oneof=monthly weekly"`
	Date           string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SalaryStatusQuery selects the salary kind and reference date of a status report.
type SalaryStatusQuery struct {
	Kind string `form:"kind" binding:"required,oneof=monthly weekly"`
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SalaryPaymentResponse defines the data returned for a salary settlement.
type SalaryPaymentResponse struct {
	PaymentID      string          `json:"paymentID"`
	ProfessionalID string          `json:"professionalID"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    string          `json:"paymentDate"`
	PeriodKey      string          `json:"periodKey"`
	PeriodKind     string          `json:"periodKind"`
}

// SalaryStatusResponse is one professional's settlement state for a period.
type SalaryStatusResponse struct {
	ProfessionalID string          `json:"professionalID"`
	Name           string          `json:"name"`
	PeriodKind     string          `json:"periodKind"`
	PeriodKey      string          `json:"periodKey"`
	Amount         decimal.Decimal `json:"amount"`
	IsPaid         bool            `json:"isPaid"`
}

// ListSalaryStatusResponse wraps the salary status rows.
type ListSalaryStatusResponse struct {
	Professionals []SalaryStatusResponse `json:"professionals"`
}

// SettlementConflictResponse reports a settlement key paid more than once.
type SettlementConflictResponse struct {
	ProfessionalID string   `json:"professionalID"`
	PeriodKey      string   `json:"periodKey"`
	PeriodKind     string   `json:"periodKind"`
	PaymentIDs     []string `json:"paymentIDs"`
}

// ReconciliationResponse lists every settlement conflict found.
type ReconciliationResponse struct {
	Conflicts []SettlementConflictResponse `json:"conflicts"`
}

// ToSalaryPaymentResponse converts a domain.SalaryPayment to SalaryPaymentResponse DTO.
func ToSalaryPaymentResponse(p *domain.SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		PaymentID:      p.PaymentID,
		ProfessionalID: p.ProfessionalID,
		Amount:         p.Amount,
		PaymentDate:    p.PaymentDate.Format(APIDateLayout),
		PeriodKey:      p.PeriodKey,
		PeriodKind:     string(p.PeriodKind),
	}
}

// ToListSalaryStatusResponse converts salary status rows to their DTO.
func ToListSalaryStatusResponse(rows []domain.SalaryStatus) ListSalaryStatusResponse {
	out := make([]SalaryStatusResponse, len(rows))
	for i, s := range rows {
		out[i] = SalaryStatusResponse{
			ProfessionalID: s.Professional.ProfessionalID,
			Name:           s.Professional.Name,
			PeriodKind:     string(s.PeriodKind),
			PeriodKey:      s.PeriodKey,
			Amount:         s.Amount,
			IsPaid:         s.IsPaid,
		}
	}
	return ListSalaryStatusResponse{Professionals: out}
}

// ToReconciliationResponse converts settlement conflicts to their DTO.
func ToReconciliationResponse(conflicts []domain.SettlementConflict) ReconciliationResponse {
	out := make([]SettlementConflictResponse, len(conflicts))
	for i, c := range conflicts {
		out[i] = SettlementConflictResponse{
			ProfessionalID: c.ProfessionalID,
			PeriodKey:      c.PeriodKey,
			PeriodKind:     string(c.PeriodKind),
			PaymentIDs:     c.PaymentIDs,
		}
	}
	return ReconciliationResponse{Conflicts: out}
}
