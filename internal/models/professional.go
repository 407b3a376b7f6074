package models

import "github.com/shopspring/decimal"

// Professional is the ledger's read view of a professional profile.
type Professional struct {
	ProfessionalID string          `db:"professional_id"`
	Name           string          `db:"name"`
	MonthlySalary  decimal.Decimal `db:"monthly_salary"`
	WeeklySalary   decimal.Decimal `db:"weekly_salary"`
}
