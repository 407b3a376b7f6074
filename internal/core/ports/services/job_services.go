package services

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobReaderSvc defines read operations for jobs
type JobReaderSvc interface {
	GetJob(ctx context.Context, jobID string) (*domain.Job, error)

	// ListGroup retrieves all jobs of one planning action.
	ListGroup(ctx context.Context, groupID string) ([]domain.Job, error)

	// ListMonth retrieves jobs dated in a month, optionally filtered by worker kind.
	ListMonth(ctx context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error)
}

// JobWriterSvc defines the lifecycle operations on jobs
type JobWriterSvc interface {
	// AssignWorker staffs an OPEN job. A nil rate keeps the job's current worker price.
	AssignWorker(ctx context.Context, jobID string, workerID string, rate *decimal.Decimal) (*domain.Job, error)

	// RejectJob declines an OPEN job.
	RejectJob(ctx context.Context, jobID string) (*domain.Job, error)

	SetCollected(ctx context.Context, jobID string, collected bool) (*domain.Job, error)
	SetWorkerPaid(ctx context.Context, jobID string, paid bool) (*domain.Job, error)

	DeleteJob(ctx context.Context, jobID string) error

	// DeleteJobGroup removes a whole planning action and returns the number of jobs removed.
	DeleteJobGroup(ctx context.Context, groupID string) (int64, error)
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
