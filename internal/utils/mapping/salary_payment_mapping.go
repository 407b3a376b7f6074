package mapping

import (
	"fmt"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/models"
)

// ToModelSalaryPayment converts a domain SalaryPayment to a model SalaryPayment
func ToModelSalaryPayment(d domain.SalaryPayment) models.SalaryPayment {
	return models.SalaryPayment{
		PaymentID:      d.PaymentID,
		ProfessionalID: d.ProfessionalID,
		Amount:         d.Amount,
		PaymentDate:    domain.FormatLedgerDate(d.PaymentDate),
		PeriodKey:      d.PeriodKey,
		PeriodKind:     string(d.PeriodKind),
	}
}

// ToDomainSalaryPayment converts a model SalaryPayment to a domain SalaryPayment
func ToDomainSalaryPayment(m models.SalaryPayment) (domain.SalaryPayment, error) {
	date, err := domain.ParseLedgerDate(m.PaymentDate)
	if err != nil {
		return domain.SalaryPayment{}, fmt.Errorf("salary payment %s: %w", m.PaymentID, err)
	}
	return domain.SalaryPayment{
		PaymentID:      m.PaymentID,
		ProfessionalID: m.ProfessionalID,
		Amount:         m.Amount,
		PaymentDate:    date,
		PeriodKey:      m.PeriodKey,
		PeriodKind:     domain.PeriodKind(m.PeriodKind),
	}, nil
}
