package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerKind identifies which pool a job slot is staffed from.
type WorkerKind string

const (
	WorkerStudent      WorkerKind = "student"
	WorkerProfessional WorkerKind = "professional"
	WorkerNone         WorkerKind = "none"
)

// Valid reports whether k is a known worker kind.
func (k WorkerKind) Valid() bool {
	switch k {
	case WorkerStudent, WorkerProfessional, WorkerNone:
		return true
	}
	return false
}

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobOpen     JobStatus = "OPEN"
	JobAssigned JobStatus = "ASSIGNED"
	JobRejected JobStatus = "REJECTED" // declined request; terminal
)

// Job is one unit of scheduled labor for one worker on one date.
type Job struct {
	JobID             string          `json:"jobID"`
	GroupID           string          `json:"groupID"` // shared by every job of one planning action
	Date              time.Time       `json:"date"`
	CustomerID        string          `json:"customerID"`
	WorkerKind        WorkerKind      `json:"workerKind"`
	Status            JobStatus       `json:"status"`
	AssignedWorkerID  *string         `json:"assignedWorkerID,omitempty"`
	PriceToWorker     decimal.Decimal `json:"priceToWorker"`
	PriceFromCustomer decimal.Decimal `json:"priceFromCustomer"`
	IsWorkerPaid      bool            `json:"isWorkerPaid"`
	IsCollected       bool            `json:"isCollected"`
	IsPrepaid         bool            `json:"isPrepaid"`
	Note              string          `json:"note"`
	Slot              int             `json:"slot"` // emission position within its planning action
	CreatedAt         time.Time       `json:"createdAt"`
}

// CanAssign reports whether a worker may be assigned to the job. A worker is
// assigned once; an ASSIGNED job keeps its worker.
func (j Job) CanAssign() bool {
	return j.Status == JobOpen
}

// CanReject reports whether the job may still be declined.
func (j Job) CanReject() bool {
	return j.Status == JobOpen
}
