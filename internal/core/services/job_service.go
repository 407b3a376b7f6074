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
	"github.com/shopspring/decimal"
)

type jobService struct {
	BaseService
	jobRepo          portsrepo.JobRepositoryFacade
	professionalRepo portsrepo.ProfessionalReader
}

// NewJobService creates a new job lifecycle service
func NewJobService(jobRepo portsrepo.JobRepositoryFacade, professionalRepo portsrepo.ProfessionalReader) portssvc.JobSvcFacade {
	return &jobService{
		jobRepo:          jobRepo,
		professionalRepo: professionalRepo,
	}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find job", slog.String("job_id", jobID))
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) ListGroup(ctx context.Context, groupID string) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListJobsByGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list job group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to list job group: %w", err)
	}
	return jobs, nil
}

func (s *jobService) ListMonth(ctx context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error) {
	if month < time.January || month > time.December || year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: invalid month %d/%d", apperrors.ErrValidation, month, year)
	}
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown worker kind %q", apperrors.ErrValidation, kind)
	}
	jobs, err := s.jobRepo.ListJobsByMonth(ctx, month, year, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs for month", slog.Int("month", int(month)), slog.Int("year", year))
		return nil, fmt.Errorf("failed to list jobs for month: %w", err)
	}
	return jobs, nil
}

func (s *jobService) AssignWorker(ctx context.Context, jobID string, workerID string, rate *decimal.Decimal) (*domain.Job, error) {
	if workerID == "" {
		return nil, fmt.Errorf("%w: worker id is required", apperrors.ErrValidation)
	}
	if rate != nil && rate.IsNegative() {
		return nil, fmt.Errorf("%w: worker rate must not be negative", apperrors.ErrValidation)
	}

	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.CanAssign() {
		return nil, fmt.Errorf("%w: cannot assign a %s job", apperrors.ErrInvalidTransition, job.Status)
	}

	price := job.PriceToWorker
	if rate != nil {
		price = *rate
	}

	if job.WorkerKind == domain.WorkerProfessional {
		professional, err := s.professionalRepo.FindProfessionalByID(ctx, workerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: professional %s does not exist", apperrors.ErrValidation, workerID)
			}
			s.LogError(ctx, err, "Failed to find professional", slog.String("professional_id", workerID))
			return nil, fmt.Errorf("failed to find professional: %w", err)
		}
		// Salaried professionals are paid through salary settlement, never per job.
		if professional.IsSalaried() {
			price = decimal.Zero
		}
	}

	if err := s.jobRepo.AssignWorker(ctx, jobID, workerID, price); err != nil {
		s.LogError(ctx, err, "Failed to assign worker", slog.String("job_id", jobID), slog.String("worker_id", workerID))
		return nil, fmt.Errorf("failed to assign worker: %w", err)
	}

	job.AssignedWorkerID = &workerID
	job.PriceToWorker = price
	job.Status = domain.JobAssigned
	s.LogInfo(ctx, "Worker assigned",
		slog.String("job_id", jobID),
		slog.String("worker_id", workerID),
		slog.String("price_to_worker", price.String()))
	return job, nil
}

func (s *jobService) RejectJob(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.CanReject() {
		return nil, fmt.Errorf("%w: cannot reject a %s job", apperrors.ErrInvalidTransition, job.Status)
	}
	if err := s.jobRepo.RejectJob(ctx, jobID); err != nil {
		s.LogError(ctx, err, "Failed to reject job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to reject job: %w", err)
	}

	job.Status = domain.JobRejected
	job.AssignedWorkerID = nil
	job.PriceToWorker = decimal.Zero
	s.LogInfo(ctx, "Job rejected", slog.String("job_id", jobID))
	return job, nil
}

func (s *jobService) SetCollected(ctx context.Context, jobID string, collected bool) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.SetCollected(ctx, jobID, collected); err != nil {
		s.LogError(ctx, err, "Failed to update collection flag", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update collection flag: %w", err)
	}
	job.IsCollected = collected
	return job, nil
}

func (s *jobService) SetWorkerPaid(ctx context.Context, jobID string, paid bool) (*domain.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if paid && job.Status == domain.JobRejected {
		return nil, fmt.Errorf("%w: a rejected job has no worker to pay", apperrors.ErrInvalidTransition)
	}
	if err := s.jobRepo.SetWorkerPaid(ctx, jobID, paid); err != nil {
		s.LogError(ctx, err, "Failed to update worker paid flag", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update worker paid flag: %w", err)
	}
	job.IsWorkerPaid = paid
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, jobID string) error {
	if err := s.jobRepo.DeleteJob(ctx, jobID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete job", slog.String("job_id", jobID))
		}
		return err
	}
	s.LogInfo(ctx, "Job deleted", slog.String("job_id", jobID))
	return nil
}

func (s *jobService) DeleteJobGroup(ctx context.Context, groupID string) (int64, error) {
	removed, err := s.jobRepo.DeleteJobGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete job group", slog.String("group_id", groupID))
		return 0, fmt.Errorf("failed to delete job group: %w", err)
	}
	if removed == 0 {
		return 0, fmt.Errorf("job group %s: %w", groupID, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Job group deleted", slog.String("group_id", groupID), slog.Int64("removed", removed))
	return removed, nil
}
