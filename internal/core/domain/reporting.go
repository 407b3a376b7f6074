package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSource names where a cash-flow line came from.
type LedgerSource string

const (
	SourceTransaction LedgerSource = "TRANSACTION"
	SourceJobRevenue  LedgerSource = "JOB_REVENUE"
	SourceJobLabor    LedgerSource = "JOB_LABOR"
	SourceSalary      LedgerSource = "SALARY"
)

// LedgerLine is one signed entry of the unified cash-flow log.
type LedgerLine struct {
	Date        time.Time       `json:"date"`
	Source      LedgerSource    `json:"source"`
	ReferenceID string          `json:"referenceID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Signed: + money in, - money out
}

// Obligations are the forward-looking payouts not yet recorded as paid.
type Obligations struct {
	PieceRateDebt decimal.Decimal `json:"pieceRateDebt"`
	SalaryDebt    decimal.Decimal `json:"salaryDebt"`
}

// Total returns piece-rate plus salary debt.
func (o Obligations) Total() decimal.Decimal {
	return o.PieceRateDebt.Add(o.SalaryDebt)
}

// LedgerSummary holds the dashboard KPIs derived from the ledger.
type LedgerSummary struct {
	CurrentCash            decimal.Decimal `json:"currentCash"`
	PendingReceivables     decimal.Decimal `json:"pendingReceivables"`
	PieceRateDebt          decimal.Decimal `json:"pieceRateDebt"`
	SalaryDebt             decimal.Decimal `json:"salaryDebt"`
	TotalForwardObligation decimal.Decimal `json:"totalForwardObligation"`
	NetForecast            decimal.Decimal `json:"netForecast"`
}

// MonthlyProfit is the accrual profit of one calendar month. It ignores whether
// anything was actually collected or paid.
type MonthlyProfit struct {
	Month           time.Month      `json:"month"`
	Year            int             `json:"year"`
	JobRevenue      decimal.Decimal `json:"jobRevenue"`
	OtherIncome     decimal.Decimal `json:"otherIncome"`
	JobLaborCost    decimal.Decimal `json:"jobLaborCost"`
	OtherExpense    decimal.Decimal `json:"otherExpense"`
	MonthlySalaries decimal.Decimal `json:"monthlySalaries"`
	WeeklySalaries  decimal.Decimal `json:"weeklySalaries"`
	MondaysInMonth  int             `json:"mondaysInMonth"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
}
