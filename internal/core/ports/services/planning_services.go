package services

import (
	"context"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// PlanningSvc turns a customer quote into persisted jobs.
type PlanningSvc interface {
	// PlanJobs validates the request, distributes the price over dates and workers,
	// and stores the resulting jobs atomically under one new group id.
	PlanJobs(ctx context.Context, req domain.PlanRequest) (*domain.PlanResult, error)
}
