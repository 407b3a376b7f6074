package models

import "github.com/shopspring/decimal"

// SalaryPayment is the row form of one salary settlement.
type SalaryPayment struct {
	PaymentID      string          `db:"payment_id"`
	ProfessionalID string          `db:"professional_id"`
	Amount         decimal.Decimal `db:"amount"`
	PaymentDate    string          `db:"payment_date"` // DD.MM.YYYY
	PeriodKey      string          `db:"period_key"`
	PeriodKind     string          `db:"period_kind"`
}
