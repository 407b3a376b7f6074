package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a specific job by its unique identifier.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobsByGroup retrieves every job created by one planning action, ordered by date.
	ListJobsByGroup(ctx context.Context, groupID string) ([]domain.Job, error)

	// ListJobsByMonth retrieves the jobs dated in the given month, ordered by date.
	// An empty kind lists all kinds.
	ListJobsByMonth(ctx context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error)

	// ListCollectedRevenueJobs retrieves collected jobs with a positive customer price.
	ListCollectedRevenueJobs(ctx context.Context) ([]domain.Job, error)

	// ListPaidLaborJobs retrieves worker-paid jobs with a positive worker price.
	ListPaidLaborJobs(ctx context.Context) ([]domain.Job, error)

	// ListUnpaidPieceRateJobs retrieves assigned, unpaid jobs with a positive worker price.
	ListUnpaidPieceRateJobs(ctx context.Context) ([]domain.Job, error)

	// SumUnpaidPieceRate adds the positive worker price of every job not yet paid to its
	// worker, regardless of date or status.
	SumUnpaidPieceRate(ctx context.Context) (decimal.Decimal, error)

	// SumPendingReceivables adds the positive customer price of every uncollected,
	// non-rejected job.
	SumPendingReceivables(ctx context.Context) (decimal.Decimal, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// SaveJobBatch persists all jobs of one planning action atomically: either every
	// row is stored or none is.
	SaveJobBatch(ctx context.Context, jobs []domain.Job) error

	// AssignWorker stores the worker and worker price and marks the job ASSIGNED.
	AssignWorker(ctx context.Context, jobID string, workerID string, priceToWorker decimal.Decimal) error

	// RejectJob marks the job REJECTED and clears its worker and worker price.
	RejectJob(ctx context.Context, jobID string) error

	// SetCollected records whether the customer has paid for the job.
	SetCollected(ctx context.Context, jobID string, collected bool) error

	// SetWorkerPaid records whether the worker has been paid for the job.
	SetWorkerPaid(ctx context.Context, jobID string, paid bool) error

	// DeleteJob removes a single job.
	DeleteJob(ctx context.Context, jobID string) error

	// DeleteJobGroup removes every job of a planning action and returns how many were removed.
	DeleteJobGroup(ctx context.Context, groupID string) (int64, error)
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}
