package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/dispatch_ledger/internal/models"
	"github.com/SscSPs/dispatch_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const jobColumns = `job_id, group_id, date, customer_id, worker_kind, status, assigned_worker_id,
	price_to_worker, price_from_customer, is_worker_paid, is_collected, is_prepaid, note, slot, created_at`

// Dates are DD.MM.YYYY text, so chronological order goes through to_date. Jobs of
// one batch share created_at; slot keeps them in emission order.
const jobOrder = ` ORDER BY to_date(date, 'DD.MM.YYYY'), created_at, slot, job_id`

// PgxJobRepository implements portsrepo.JobRepositoryFacade using pgx.
type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func scanJob(row pgx.CollectableRow) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.GroupID,
		&m.Date,
		&m.CustomerID,
		&m.WorkerKind,
		&m.Status,
		&m.AssignedWorkerID,
		&m.PriceToWorker,
		&m.PriceFromCustomer,
		&m.IsWorkerPaid,
		&m.IsCollected,
		&m.IsPrepaid,
		&m.Note,
		&m.Slot,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxJobRepository) queryJobs(ctx context.Context, what string, query string, args ...any) ([]domain.Job, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.wrap("failed to query "+what, err)
	}
	ms, err := pgx.CollectRows(rows, scanJob)
	if err != nil {
		return nil, r.wrap("failed to scan "+what, err)
	}
	jobs, err := mapping.ToDomainJobSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map "+what, err)
	}
	return jobs, nil
}

func (r *PgxJobRepository) sum(ctx context.Context, what string, query string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, r.wrap("failed to sum "+what, err)
	}
	return total, nil
}

// FindJobByID retrieves a job by its ID.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, jobID)
	if err != nil {
		return nil, r.wrap("failed to find job "+jobID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanJob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.wrap("failed to find job "+jobID, err)
	}
	job, err := mapping.ToDomainJob(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map job "+jobID, err)
	}
	return &job, nil
}

func (r *PgxJobRepository) ListJobsByGroup(ctx context.Context, groupID string) ([]domain.Job, error) {
	return r.queryJobs(ctx, "jobs of group "+groupID,
		`SELECT `+jobColumns+` FROM jobs WHERE group_id = $1`+jobOrder, groupID)
}

func (r *PgxJobRepository) ListJobsByMonth(ctx context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error) {
	what := fmt.Sprintf("jobs of %02d.%04d", int(month), year)
	if kind == "" {
		return r.queryJobs(ctx, what,
			`SELECT `+jobColumns+` FROM jobs WHERE date LIKE $1`+jobOrder,
			domain.MonthPattern(month, year))
	}
	return r.queryJobs(ctx, what,
		`SELECT `+jobColumns+` FROM jobs WHERE date LIKE $1 AND worker_kind = $2`+jobOrder,
		domain.MonthPattern(month, year), string(kind))
}

func (r *PgxJobRepository) ListCollectedRevenueJobs(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, "collected revenue jobs",
		`SELECT `+jobColumns+` FROM jobs WHERE is_collected AND price_from_customer > 0`+jobOrder)
}

func (r *PgxJobRepository) ListPaidLaborJobs(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, "paid labor jobs",
		`SELECT `+jobColumns+` FROM jobs WHERE is_worker_paid AND price_to_worker > 0`+jobOrder)
}

func (r *PgxJobRepository) ListUnpaidPieceRateJobs(ctx context.Context) ([]domain.Job, error) {
	return r.queryJobs(ctx, "unpaid piece-rate jobs",
		`SELECT `+jobColumns+` FROM jobs
		WHERE status = $1 AND NOT is_worker_paid AND price_to_worker > 0`+jobOrder,
		string(domain.JobAssigned))
}

func (r *PgxJobRepository) SumUnpaidPieceRate(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "unpaid piece-rate",
		`SELECT COALESCE(SUM(price_to_worker), 0) FROM jobs WHERE NOT is_worker_paid AND price_to_worker > 0`)
}

func (r *PgxJobRepository) SumPendingReceivables(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "pending receivables",
		`SELECT COALESCE(SUM(price_from_customer), 0) FROM jobs
		WHERE NOT is_collected AND price_from_customer > 0`)
}

// SaveJobBatch inserts every job of a planning action in one transaction.
func (r *PgxJobRepository) SaveJobBatch(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	query := `INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	batch := &pgx.Batch{}
	for _, j := range jobs {
		m := mapping.ToModelJob(j)
		batch.Queue(query,
			m.JobID,
			m.GroupID,
			m.Date,
			m.CustomerID,
			m.WorkerKind,
			m.Status,
			m.AssignedWorkerID,
			m.PriceToWorker,
			m.PriceFromCustomer,
			m.IsWorkerPaid,
			m.IsCollected,
			m.IsPrepaid,
			m.Note,
			m.Slot,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return r.wrap(fmt.Sprintf("failed to insert batch of %d jobs", len(jobs)), err)
	}

	return r.Commit(ctx, tx)
}

// execOne runs an update that must touch exactly one job.
func (r *PgxJobRepository) execOne(ctx context.Context, jobID string, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, append([]any{jobID}, args...)...)
	if err != nil {
		return r.wrap("failed to update job "+jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) AssignWorker(ctx context.Context, jobID string, workerID string, priceToWorker decimal.Decimal) error {
	return r.execOne(ctx, jobID,
		`UPDATE jobs SET assigned_worker_id = $2, price_to_worker = $3, status = $4 WHERE job_id = $1`,
		workerID, priceToWorker, string(domain.JobAssigned))
}

func (r *PgxJobRepository) RejectJob(ctx context.Context, jobID string) error {
	return r.execOne(ctx, jobID,
		`UPDATE jobs SET assigned_worker_id = NULL, price_to_worker = 0, status = $2 WHERE job_id = $1`,
		string(domain.JobRejected))
}

func (r *PgxJobRepository) SetCollected(ctx context.Context, jobID string, collected bool) error {
	return r.execOne(ctx, jobID, `UPDATE jobs SET is_collected = $2 WHERE job_id = $1`, collected)
}

func (r *PgxJobRepository) SetWorkerPaid(ctx context.Context, jobID string, paid bool) error {
	return r.execOne(ctx, jobID, `UPDATE jobs SET is_worker_paid = $2 WHERE job_id = $1`, paid)
}

func (r *PgxJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	return r.execOne(ctx, jobID, `DELETE FROM jobs WHERE job_id = $1`)
}

func (r *PgxJobRepository) DeleteJobGroup(ctx context.Context, groupID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM jobs WHERE group_id = $1`, groupID)
	if err != nil {
		return 0, r.wrap("failed to delete job group "+groupID, err)
	}
	return tag.RowsAffected(), nil
}
