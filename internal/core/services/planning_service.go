package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type planningService struct {
	BaseService
	jobRepo portsrepo.JobWriter
	newID   func() string
}

// PlanningOption configures the planning service
type PlanningOption func(*planningService)

// WithIDGenerator replaces uuid generation for group and job ids.
func WithIDGenerator(newID func() string) PlanningOption {
	return func(s *planningService) {
		s.newID = newID
	}
}

// WithPlanningClock overrides the clock used for job creation timestamps.
func WithPlanningClock(now func() time.Time) PlanningOption {
	return func(s *planningService) {
		s.now = now
	}
}

// NewPlanningService creates a new planning service
func NewPlanningService(jobRepo portsrepo.JobWriter, options ...PlanningOption) portssvc.PlanningSvc {
	svc := &planningService{
		jobRepo: jobRepo,
		newID:   uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PlanningSvc = (*planningService)(nil)

// planSlot is one worker position staffed on every planned date.
type planSlot struct {
	kind domain.WorkerKind
	rate decimal.Decimal
}

// DistributePlan expands a validated request into job rows, ordered by date, then
// students before professionals, then slot. Job ids are left empty so the result
// depends only on its inputs.
func DistributePlan(req domain.PlanRequest, groupID string) []domain.Job {
	workers := req.Roster.Workers()
	if workers <= 0 {
		return nil
	}

	dates := req.NormalizedDates()
	perHead := decimal.Zero
	if req.Policy == domain.PricingPerDay {
		perHead = accounting.SplitDailyRate(req.DailyRate, workers)
	}
	isPrepaid := req.PaymentMode == domain.Prepaid

	slots := make([]planSlot, 0, workers)
	for i := 0; i < req.Roster.StudentCount; i++ {
		slots = append(slots, planSlot{kind: domain.WorkerStudent, rate: req.Roster.StudentRate})
	}
	for i := 0; i < req.Roster.ProfessionalCount; i++ {
		slots = append(slots, planSlot{kind: domain.WorkerProfessional, rate: req.Roster.ProfessionalRate})
	}

	jobs := make([]domain.Job, 0, len(dates)*workers)
	for _, date := range dates {
		for _, slot := range slots {
			price := perHead
			if req.Policy == domain.PricingFlatProject {
				price = decimal.Zero
				if len(jobs) == 0 {
					price = req.TotalPrice
				}
			}
			jobs = append(jobs, domain.Job{
				GroupID:           groupID,
				Date:              date,
				CustomerID:        req.CustomerID,
				WorkerKind:        slot.kind,
				Status:            domain.JobOpen,
				PriceToWorker:     slot.rate,
				PriceFromCustomer: price,
				IsPrepaid:         isPrepaid,
				IsCollected:       isPrepaid,
				Note:              req.Note,
				Slot:              len(jobs),
			})
		}
	}
	return jobs
}

func (s *planningService) PlanJobs(ctx context.Context, req domain.PlanRequest) (*domain.PlanResult, error) {
	if err := req.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected plan request", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	groupID := s.newID()
	jobs := DistributePlan(req, groupID)
	result := &domain.PlanResult{
		GroupID:         groupID,
		Jobs:            jobs,
		CustomerRevenue: decimal.Zero,
		WorkerPayroll:   decimal.Zero,
		DatesScheduled:  len(req.NormalizedDates()),
	}

	if len(jobs) == 0 {
		s.LogWarn(ctx, "Plan has no workers; no jobs created",
			slog.String("customer_id", req.CustomerID),
			slog.String("policy", string(req.Policy)),
			slog.String("total_price", req.TotalPrice.String()))
		result.Jobs = []domain.Job{}
		return result, nil
	}

	now := s.Now()
	for i := range jobs {
		jobs[i].JobID = s.newID()
		jobs[i].CreatedAt = now
		result.CustomerRevenue = result.CustomerRevenue.Add(jobs[i].PriceFromCustomer)
		result.WorkerPayroll = result.WorkerPayroll.Add(jobs[i].PriceToWorker)
	}

	if err := s.jobRepo.SaveJobBatch(ctx, jobs); err != nil {
		s.LogError(ctx, err, "Failed to save planned jobs",
			slog.String("group_id", groupID),
			slog.Int("job_count", len(jobs)))
		return nil, fmt.Errorf("failed to save planned jobs: %w", err)
	}

	s.LogInfo(ctx, "Jobs planned",
		slog.String("group_id", groupID),
		slog.String("customer_id", req.CustomerID),
		slog.Int("job_count", len(jobs)),
		slog.String("customer_revenue", result.CustomerRevenue.String()))
	return result, nil
}
