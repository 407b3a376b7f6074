package dto

import (
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListJobsQuery selects the jobs of one month.
type ListJobsQuery struct {
	Month int    `form:"month" binding:"required,min=1,max=12"`
	Year  int    `form:"year" binding:"required,min=1970,max=9999"`
	Kind  string `form:"kind" binding:"omitempty,oneof=student professional none"`
}

// AssignWorkerRequest staffs a job. Rate is ignored for salaried professionals;
// when omitted the job keeps its current worker price.
type AssignWorkerRequest struct {
	WorkerID string           `json:"workerID" binding:"required"`
	Rate     *decimal.Decimal `json:"rate"`
}

// SetCollectedRequest toggles whether the customer has paid.
type SetCollectedRequest struct {
	Collected *bool `json:"collected" binding:"required"`
}

// SetWorkerPaidRequest toggles whether the worker has been paid.
type SetWorkerPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID             string          `json:"jobID"`
	GroupID           string          `json:"groupID"`
	Date              string          `json:"date"`
	CustomerID        string          `json:"customerID"`
	WorkerKind        string          `json:"workerKind"`
	Status            string          `json:"status"`
	AssignedWorkerID  *string         `json:"assignedWorkerID,omitempty"`
	PriceToWorker     decimal.Decimal `json:"priceToWorker"`
	PriceFromCustomer decimal.Decimal `json:"priceFromCustomer"`
	IsWorkerPaid      bool            `json:"isWorkerPaid"`
	IsCollected       bool            `json:"isCollected"`
	IsPrepaid         bool            `json:"isPrepaid"`
	Note              string          `json:"note,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListJobsResponse wraps a list of jobs.
type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// DeleteJobGroupResponse reports how many jobs a group delete removed.
type DeleteJobGroupResponse struct {
	GroupID string `json:"groupID"`
	Removed int64  `json:"removed"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:             j.JobID,
		GroupID:           j.GroupID,
		Date:              j.Date.Format(APIDateLayout),
		CustomerID:        j.CustomerID,
		WorkerKind:        string(j.WorkerKind),
		Status:            string(j.Status),
		AssignedWorkerID:  j.AssignedWorkerID,
		PriceToWorker:     j.PriceToWorker,
		PriceFromCustomer: j.PriceFromCustomer,
		IsWorkerPaid:      j.IsWorkerPaid,
		IsCollected:       j.IsCollected,
		IsPrepaid:         j.IsPrepaid,
		Note:              j.Note,
		CreatedAt:         j.CreatedAt,
	}
}

// ToJobResponses converts a slice of domain.Job to []JobResponse.
func ToJobResponses(jobs []domain.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToJobResponse(&jobs[i])
	}
	return responses
}
