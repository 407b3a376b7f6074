package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type obligationService struct {
	BaseService
	jobRepo          portsrepo.JobReader
	professionalRepo portsrepo.ProfessionalReader
	salaryRepo       portsrepo.SalaryPaymentReader
}

// NewObligationService creates a new obligation service
func NewObligationService(
	jobRepo portsrepo.JobReader,
	professionalRepo portsrepo.ProfessionalReader,
	salaryRepo portsrepo.SalaryPaymentReader,
) portssvc.ObligationSvc {
	return &obligationService{
		jobRepo:          jobRepo,
		professionalRepo: professionalRepo,
		salaryRepo:       salaryRepo,
	}
}

var _ portssvc.ObligationSvc = (*obligationService)(nil)

func (s *obligationService) CalculateObligations(ctx context.Context, today time.Time) (*domain.Obligations, error) {
	pieceRate, err := s.jobRepo.SumUnpaidPieceRate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum unpaid piece-rate jobs")
		return nil, fmt.Errorf("failed to sum unpaid piece-rate jobs: %w", err)
	}

	professionals, err := s.professionalRepo.ListSalariedProfessionals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaried professionals")
		return nil, fmt.Errorf("failed to list salaried professionals: %w", err)
	}

	salaryDebt := decimal.Zero
	monthKey := domain.MonthlyPeriodKey(today)
	mondays := accounting.MondaysOf(today.Month(), today.Year())

	for _, p := range professionals {
		if p.MonthlySalary.IsPositive() {
			settled, err := s.isSettled(ctx, p.ProfessionalID, monthKey, domain.PeriodMonthly)
			if err != nil {
				return nil, err
			}
			if !settled {
				salaryDebt = salaryDebt.Add(p.MonthlySalary)
			}
		}

		if p.WeeklySalary.IsPositive() {
			for _, monday := range mondays {
				settled, err := s.isSettled(ctx, p.ProfessionalID, domain.WeeklyPeriodKey(monday), domain.PeriodWeekly)
				if err != nil {
					return nil, err
				}
				if !settled {
					salaryDebt = salaryDebt.Add(p.WeeklySalary)
				}
			}
		}
	}

	obligations := &domain.Obligations{
		PieceRateDebt: decimal.Max(pieceRate, decimal.Zero),
		SalaryDebt:    salaryDebt,
	}
	s.LogDebug(ctx, "Obligations calculated",
		slog.String("piece_rate_debt", obligations.PieceRateDebt.String()),
		slog.String("salary_debt", obligations.SalaryDebt.String()))
	return obligations, nil
}

func (s *obligationService) IsMonthlySettled(ctx context.Context, professionalID string, today time.Time) (bool, error) {
	return s.isSettled(ctx, professionalID, domain.MonthlyPeriodKey(today), domain.PeriodMonthly)
}

func (s *obligationService) isSettled(ctx context.Context, professionalID, periodKey string, kind domain.PeriodKind) (bool, error) {
	_, err := s.salaryRepo.FindSalaryPayment(ctx, professionalID, periodKey, kind)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	s.LogError(ctx, err, "Failed to look up salary payment",
		slog.String("professional_id", professionalID),
		slog.String("period_key", periodKey),
		slog.String("period_kind", string(kind)))
	return false, fmt.Errorf("failed to look up salary payment: %w", err)
}
