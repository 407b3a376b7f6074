package domain

import "github.com/shopspring/decimal"

// Professional is a worker paid per job, monthly, weekly, or by both salary kinds.
type Professional struct {
	ProfessionalID string          `json:"professionalID"`
	Name           string          `json:"name"`
	MonthlySalary  decimal.Decimal `json:"monthlySalary"`
	WeeklySalary   decimal.Decimal `json:"weeklySalary"`
}

// IsSalaried reports whether the professional draws any salary. A professional
// without one is a pure piece-rate ("extra") worker.
func (p Professional) IsSalaried() bool {
	return p.MonthlySalary.IsPositive() || p.WeeklySalary.IsPositive()
}

// SalaryFor returns the salary amount owed per period of the given kind.
func (p Professional) SalaryFor(kind PeriodKind) decimal.Decimal {
	switch kind {
	case PeriodMonthly:
		return p.MonthlySalary
	case PeriodWeekly:
		return p.WeeklySalary
	}
	return decimal.Zero
}
