package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/utils/accounting"
	"github.com/SscSPs/dispatch_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	jobRepo          portsrepo.JobReader
	professionalRepo portsrepo.ProfessionalReader
	salaryRepo       portsrepo.SalaryPaymentReader
	transactionRepo  portsrepo.TransactionReader
	obligations      portssvc.ObligationSvc
}

// NewLedgerService creates a new ledger aggregation service
func NewLedgerService(repos portsrepo.RepositoryProvider, obligations portssvc.ObligationSvc) portssvc.LedgerSvc {
	return &ledgerService{
		jobRepo:          repos.JobRepo,
		professionalRepo: repos.ProfessionalRepo,
		salaryRepo:       repos.SalaryPaymentRepo,
		transactionRepo:  repos.TransactionRepo,
		obligations:      obligations,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) CashFlow(ctx context.Context) ([]domain.LedgerLine, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	revenueJobs, err := s.jobRepo.ListCollectedRevenueJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list collected jobs")
		return nil, fmt.Errorf("failed to list collected jobs: %w", err)
	}
	laborJobs, err := s.jobRepo.ListPaidLaborJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list worker-paid jobs")
		return nil, fmt.Errorf("failed to list worker-paid jobs: %w", err)
	}
	payments, err := s.salaryRepo.ListSalaryPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary payments")
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}

	lines := make([]domain.LedgerLine, 0, len(transactions)+len(revenueJobs)+len(laborJobs)+len(payments))
	for _, t := range transactions {
		lines = append(lines, domain.LedgerLine{
			Date:        t.Date,
			Source:      domain.SourceTransaction,
			ReferenceID: t.TransactionID,
			Description: transactionDescription(t),
			Amount:      t.SignedAmount(),
		})
	}
	for _, j := range revenueJobs {
		amount, err := accounting.SignedLedgerAmount(domain.SourceJobRevenue, j.PriceFromCustomer)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.LedgerLine{
			Date:        j.Date,
			Source:      domain.SourceJobRevenue,
			ReferenceID: j.JobID,
			Description: "Customer payment " + j.CustomerID,
			Amount:      amount,
		})
	}
	for _, j := range laborJobs {
		amount, err := accounting.SignedLedgerAmount(domain.SourceJobLabor, j.PriceToWorker)
		if err != nil {
			return nil, err
		}
		worker := string(j.WorkerKind)
		if j.AssignedWorkerID != nil {
			worker = *j.AssignedWorkerID
		}
		lines = append(lines, domain.LedgerLine{
			Date:        j.Date,
			Source:      domain.SourceJobLabor,
			ReferenceID: j.JobID,
			Description: "Worker payment " + worker,
			Amount:      amount,
		})
	}
	for _, p := range payments {
		amount, err := accounting.SignedLedgerAmount(domain.SourceSalary, p.Amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.LedgerLine{
			Date:        p.PaymentDate,
			Source:      domain.SourceSalary,
			ReferenceID: p.PaymentID,
			Description: fmt.Sprintf("Salary %s %s", p.PeriodKey, p.ProfessionalID),
			Amount:      amount,
		})
	}

	// Stable so same-day lines keep source order.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Date.After(lines[j].Date) })
	return lines, nil
}

func transactionDescription(t domain.Transaction) string {
	switch {
	case t.Category == "":
		return t.Description
	case t.Description == "":
		return t.Category
	default:
		return t.Category + ": " + t.Description
	}
}

func (s *ledgerService) CashFlowPage(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerLine, *string, error) {
	lines, err := s.CashFlow(ctx)
	if err != nil {
		return nil, nil, err
	}

	token := ""
	if nextToken != nil {
		token = *nextToken
	}
	page, next, err := pagination.Page(lines, limit, token, func(l domain.LedgerLine) time.Time { return l.Date })
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if next == "" {
		return page, nil, nil
	}
	return page, &next, nil
}

func (s *ledgerService) Summary(ctx context.Context, today time.Time) (*domain.LedgerSummary, error) {
	lines, err := s.CashFlow(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := s.jobRepo.SumPendingReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum pending receivables")
		return nil, fmt.Errorf("failed to sum pending receivables: %w", err)
	}
	obligations, err := s.obligations.CalculateObligations(ctx, today)
	if err != nil {
		return nil, err
	}

	cash := accounting.SumLines(lines)
	total := obligations.Total()
	summary := &domain.LedgerSummary{
		CurrentCash:            cash,
		PendingReceivables:     receivables,
		PieceRateDebt:          obligations.PieceRateDebt,
		SalaryDebt:             obligations.SalaryDebt,
		TotalForwardObligation: total,
		NetForecast:            cash.Add(receivables).Sub(total),
	}
	s.LogDebug(ctx, "Ledger summary computed",
		slog.String("current_cash", cash.String()),
		slog.String("net_forecast", summary.NetForecast.String()))
	return summary, nil
}

func (s *ledgerService) MonthlyProfit(ctx context.Context, month time.Month, year int) (*domain.MonthlyProfit, error) {
	if month < time.January || month > time.December || year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid month %d/%d", apperrors.ErrValidation, month, year)
	}

	jobs, err := s.jobRepo.ListJobsByMonth(ctx, month, year, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs for month", slog.Int("month", int(month)), slog.Int("year", year))
		return nil, fmt.Errorf("failed to list jobs for month: %w", err)
	}
	transactions, err := s.transactionRepo.ListTransactionsByMonth(ctx, month, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for month", slog.Int("month", int(month)), slog.Int("year", year))
		return nil, fmt.Errorf("failed to list transactions for month: %w", err)
	}
	professionals, err := s.professionalRepo.ListSalariedProfessionals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaried professionals")
		return nil, fmt.Errorf("failed to list salaried professionals: %w", err)
	}

	report := &domain.MonthlyProfit{
		Month:           month,
		Year:            year,
		JobRevenue:      decimal.Zero,
		OtherIncome:     decimal.Zero,
		JobLaborCost:    decimal.Zero,
		OtherExpense:    decimal.Zero,
		MonthlySalaries: decimal.Zero,
		WeeklySalaries:  decimal.Zero,
		MondaysInMonth:  accounting.MondaysInMonth(month, year),
	}

	for _, j := range jobs {
		report.JobRevenue = report.JobRevenue.Add(accounting.SumPositive(j.PriceFromCustomer))
		report.JobLaborCost = report.JobLaborCost.Add(accounting.SumPositive(j.PriceToWorker))
	}
	for _, t := range transactions {
		if t.Kind == domain.Income {
			report.OtherIncome = report.OtherIncome.Add(t.Amount)
		} else {
			report.OtherExpense = report.OtherExpense.Add(t.Amount)
		}
	}
	mondays := decimal.NewFromInt(int64(report.MondaysInMonth))
	for _, p := range professionals {
		report.MonthlySalaries = report.MonthlySalaries.Add(accounting.SumPositive(p.MonthlySalary))
		report.WeeklySalaries = report.WeeklySalaries.Add(accounting.SumPositive(p.WeeklySalary).Mul(mondays))
	}

	report.TotalIncome = report.JobRevenue.Add(report.OtherIncome)
	report.TotalExpenses = report.JobLaborCost.
		Add(report.OtherExpense).
		Add(report.MonthlySalaries).
		Add(report.WeeklySalaries)
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses)
	return report, nil
}
