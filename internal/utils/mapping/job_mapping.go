package mapping

import (
	"database/sql"
	"fmt"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/models"
)

// ToModelJob converts a domain Job to a model Job
func ToModelJob(d domain.Job) models.Job {
	m := models.Job{
		JobID:             d.JobID,
		GroupID:           d.GroupID,
		Date:              domain.FormatLedgerDate(d.Date),
		CustomerID:        d.CustomerID,
		WorkerKind:        string(d.WorkerKind),
		Status:            string(d.Status),
		PriceToWorker:     d.PriceToWorker,
		PriceFromCustomer: d.PriceFromCustomer,
		IsWorkerPaid:      d.IsWorkerPaid,
		IsCollected:       d.IsCollected,
		IsPrepaid:         d.IsPrepaid,
		Note:              d.Note,
		Slot:              d.Slot,
		CreatedAt:         d.CreatedAt,
	}
	if d.AssignedWorkerID != nil {
		m.AssignedWorkerID = sql.NullString{String: *d.AssignedWorkerID, Valid: true}
	}
	return m
}

// ToDomainJob converts a model Job to a domain Job. It fails when the stored
// date is not in DD.MM.YYYY form.
func ToDomainJob(m models.Job) (domain.Job, error) {
	date, err := domain.ParseLedgerDate(m.Date)
	if err != nil {
		return domain.Job{}, fmt.Errorf("job %s: %w", m.JobID, err)
	}
	d := domain.Job{
		JobID:             m.JobID,
		GroupID:           m.GroupID,
		Date:              date,
		CustomerID:        m.CustomerID,
		WorkerKind:        domain.WorkerKind(m.WorkerKind),
		Status:            domain.JobStatus(m.Status),
		PriceToWorker:     m.PriceToWorker,
		PriceFromCustomer: m.PriceFromCustomer,
		IsWorkerPaid:      m.IsWorkerPaid,
		IsCollected:       m.IsCollected,
		IsPrepaid:         m.IsPrepaid,
		Note:              m.Note,
		Slot:              m.Slot,
		CreatedAt:         m.CreatedAt,
	}
	if m.AssignedWorkerID.Valid {
		workerID := m.AssignedWorkerID.String
		d.AssignedWorkerID = &workerID
	}
	return d, nil
}

// ToDomainJobSlice converts a slice of model Jobs to domain Jobs
func ToDomainJobSlice(ms []models.Job) ([]domain.Job, error) {
	ds := make([]domain.Job, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainJob(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
