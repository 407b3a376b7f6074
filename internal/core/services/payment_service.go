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
	"github.com/google/uuid"
)

type paymentService struct {
	BaseService
	jobRepo          portsrepo.JobRepositoryFacade
	professionalRepo portsrepo.ProfessionalReader
	salaryRepo       portsrepo.SalaryPaymentRepositoryFacade
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	jobRepo portsrepo.JobRepositoryFacade,
	professionalRepo portsrepo.ProfessionalReader,
	salaryRepo portsrepo.SalaryPaymentRepositoryFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		jobRepo:          jobRepo,
		professionalRepo: professionalRepo,
		salaryRepo:       salaryRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) SettleSalary(ctx context.Context, professionalID string, kind domain.PeriodKind, today time.Time) (*domain.SalaryPayment, error) {
	periodKey, err := domain.PeriodKeyFor(kind, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	professional, err := s.professionalRepo.FindProfessionalByID(ctx, professionalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find professional", slog.String("professional_id", professionalID))
		}
		return nil, err
	}
	amount := professional.SalaryFor(kind)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: professional %s has no %s salary", apperrors.ErrValidation, professionalID, kind)
	}

	// The store's unique settlement key is the final guard; this check gives a
	// clean conflict without a failed insert in the common case.
	if _, err := s.salaryRepo.FindSalaryPayment(ctx, professionalID, periodKey, kind); err == nil {
		return nil, fmt.Errorf("%s salary %s for %s: %w", kind, periodKey, professionalID, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up salary payment", slog.String("professional_id", professionalID))
		return nil, fmt.Errorf("failed to look up salary payment: %w", err)
	}

	payment := domain.SalaryPayment{
		PaymentID:      uuid.NewString(),
		ProfessionalID: professionalID,
		Amount:         amount,
		PaymentDate:    domain.CalendarDay(today),
		PeriodKey:      periodKey,
		PeriodKind:     kind,
	}
	if err := s.salaryRepo.SaveSalaryPayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Concurrent salary settlement rejected",
				slog.String("professional_id", professionalID),
				slog.String("period_key", periodKey))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save salary payment", slog.String("professional_id", professionalID))
		return nil, fmt.Errorf("failed to save salary payment: %w", err)
	}

	s.LogInfo(ctx, "Salary settled",
		slog.String("payment_id", payment.PaymentID),
		slog.String("professional_id", professionalID),
		slog.String("period_key", periodKey),
		slog.String("amount", amount.String()))
	return &payment, nil
}

func (s *paymentService) SalaryStatus(ctx context.Context, kind domain.PeriodKind, today time.Time) ([]domain.SalaryStatus, error) {
	periodKey, err := domain.PeriodKeyFor(kind, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	professionals, err := s.professionalRepo.ListSalariedProfessionals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaried professionals")
		return nil, fmt.Errorf("failed to list salaried professionals: %w", err)
	}

	statuses := make([]domain.SalaryStatus, 0, len(professionals))
	for _, p := range professionals {
		amount := p.SalaryFor(kind)
		if !amount.IsPositive() {
			continue
		}
		_, err := s.salaryRepo.FindSalaryPayment(ctx, p.ProfessionalID, periodKey, kind)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up salary payment", slog.String("professional_id", p.ProfessionalID))
			return nil, fmt.Errorf("failed to look up salary payment: %w", err)
		}
		statuses = append(statuses, domain.SalaryStatus{
			Professional: p,
			PeriodKind:   kind,
			PeriodKey:    periodKey,
			Amount:       amount,
			IsPaid:       err == nil,
		})
	}
	return statuses, nil
}

func (s *paymentService) Reconcile(ctx context.Context) ([]domain.SettlementConflict, error) {
	conflicts, err := s.salaryRepo.FindDuplicateSettlements(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan for duplicate settlements")
		return nil, fmt.Errorf("failed to scan for duplicate settlements: %w", err)
	}
	for _, c := range conflicts {
		s.LogWarn(ctx, apperrors.ErrConsistency.Error()+": salary period settled more than once",
			slog.String("professional_id", c.ProfessionalID),
			slog.String("period_key", c.PeriodKey),
			slog.String("period_kind", string(c.PeriodKind)),
			slog.Any("payment_ids", c.PaymentIDs))
	}
	if conflicts == nil {
		conflicts = []domain.SettlementConflict{}
	}
	return conflicts, nil
}

func (s *paymentService) ListUnpaidPieceRate(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListUnpaidPieceRateJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unpaid piece-rate jobs")
		return nil, fmt.Errorf("failed to list unpaid piece-rate jobs: %w", err)
	}
	return jobs, nil
}

func (s *paymentService) PayPieceRate(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job", slog.String("job_id", jobID))
		}
		return nil, err
	}
	if job.Status != domain.JobAssigned {
		return nil, fmt.Errorf("%w: only assigned jobs can be paid, job is %s", apperrors.ErrInvalidTransition, job.Status)
	}
	if job.IsWorkerPaid {
		return nil, fmt.Errorf("job %s worker payment: %w", jobID, apperrors.ErrDuplicate)
	}
	if err := s.jobRepo.SetWorkerPaid(ctx, jobID, true); err != nil {
		s.LogError(ctx, err, "Failed to mark worker paid", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to mark worker paid: %w", err)
	}

	job.IsWorkerPaid = true
	s.LogInfo(ctx, "Piece-rate paid",
		slog.String("job_id", jobID),
		slog.String("amount", job.PriceToWorker.String()))
	return job, nil
}
