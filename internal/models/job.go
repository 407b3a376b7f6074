package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Job is the row form of a scheduled job. Date is stored as DD.MM.YYYY text.
type Job struct {
	JobID             string          `db:"job_id"`
	GroupID           string          `db:"group_id"`
	Date              string          `db:"date"`
	CustomerID        string          `db:"customer_id"`
	WorkerKind        string          `db:"worker_kind"`
	Status            string          `db:"status"`
	AssignedWorkerID  sql.NullString  `db:"assigned_worker_id"`
	PriceToWorker     decimal.Decimal `db:"price_to_worker"`
	PriceFromCustomer decimal.Decimal `db:"price_from_customer"`
	IsWorkerPaid      bool            `db:"is_worker_paid"`
	IsCollected       bool            `db:"is_collected"`
	IsPrepaid         bool            `db:"is_prepaid"`
	Note              string          `db:"note"`
	Slot              int             `db:"slot"`
	CreatedAt         time.Time       `db:"created_at"`
}
