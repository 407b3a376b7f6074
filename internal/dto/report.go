package dto

import (
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashFlowQuery pages through the cash-flow log.
type CashFlowQuery struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// AsOfQuery carries an optional reference date (default today).
type AsOfQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// MonthQuery selects one calendar month.
type MonthQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
}

// LedgerLineResponse is one signed cash-flow entry.
type LedgerLineResponse struct {
	Date        string          `json:"date"`
	Source      string          `json:"source"`
	ReferenceID string          `json:"referenceID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowResponse is one page of the cash-flow log.
type CashFlowResponse struct {
	Lines     []LedgerLineResponse `json:"lines"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// SummaryResponse carries the dashboard KPIs.
type SummaryResponse struct {
	AsOf                   string          `json:"asOf"`
	CurrentCash            decimal.Decimal `json:"currentCash"`
	PendingReceivables     decimal.Decimal `json:"pendingReceivables"`
	PieceRateDebt          decimal.Decimal `json:"pieceRateDebt"`
	SalaryDebt             decimal.Decimal `json:"salaryDebt"`
	TotalForwardObligation decimal.Decimal `json:"totalForwardObligation"`
	NetForecast            decimal.Decimal `json:"netForecast"`
}

// ObligationsResponse carries what is still owed to workers.
type ObligationsResponse struct {
	AsOf          string          `json:"asOf"`
	PieceRateDebt decimal.Decimal `json:"pieceRateDebt"`
	SalaryDebt    decimal.Decimal `json:"salaryDebt"`
	Total         decimal.Decimal `json:"total"`
}

// MonthlyProfitResponse is the accrual profit of one month.
type MonthlyProfitResponse struct {
	Month           int             `json:"month"`
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

// ToCashFlowResponse converts ledger lines and the next page token to CashFlowResponse DTO.
func ToCashFlowResponse(lines []domain.LedgerLine, nextToken *string) CashFlowResponse {
	out := make([]LedgerLineResponse, len(lines))
	for i, l := range lines {
		out[i] = LedgerLineResponse{
			Date:        l.Date.Format(APIDateLayout),
			Source:      string(l.Source),
			ReferenceID: l.ReferenceID,
			Description: l.Description,
			Amount:      l.Amount,
		}
	}
	return CashFlowResponse{Lines: out, NextToken: nextToken}
}

// ToSummaryResponse converts a domain.LedgerSummary to SummaryResponse DTO.
func ToSummaryResponse(asOf string, s *domain.LedgerSummary) SummaryResponse {
	return SummaryResponse{
		AsOf:                   asOf,
		CurrentCash:            s.CurrentCash,
		PendingReceivables:     s.PendingReceivables,
		PieceRateDebt:          s.PieceRateDebt,
		SalaryDebt:             s.SalaryDebt,
		TotalForwardObligation: s.TotalForwardObligation,
		NetForecast:            s.NetForecast,
	}
}

// ToObligationsResponse converts domain.Obligations to ObligationsResponse DTO.
func ToObligationsResponse(asOf string, o *domain.Obligations) ObligationsResponse {
	return ObligationsResponse{
		AsOf:          asOf,
		PieceRateDebt: o.PieceRateDebt,
		SalaryDebt:    o.SalaryDebt,
		Total:         o.Total(),
	}
}

// ToMonthlyProfitResponse converts a domain.MonthlyProfit to MonthlyProfitResponse DTO.
func ToMonthlyProfitResponse(p *domain.MonthlyProfit) MonthlyProfitResponse {
	return MonthlyProfitResponse{
		Month:           int(p.Month),
		Year:            p.Year,
		JobRevenue:      p.JobRevenue,
		OtherIncome:     p.OtherIncome,
		JobLaborCost:    p.JobLaborCost,
		OtherExpense:    p.OtherExpense,
		MonthlySalaries: p.MonthlySalaries,
		WeeklySalaries:  p.WeeklySalaries,
		MondaysInMonth:  p.MondaysInMonth,
		TotalIncome:     p.TotalIncome,
		TotalExpenses:   p.TotalExpenses,
		NetProfit:       p.NetProfit,
	}
}
