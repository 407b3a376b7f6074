package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/dispatch_ledger/internal/models"
	"github.com/SscSPs/dispatch_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSalaryPaymentRepository implements portsrepo.SalaryPaymentRepositoryFacade using pgx.
type PgxSalaryPaymentRepository struct {
	BaseRepository
}

func newPgxSalaryPaymentRepository(pool *pgxpool.Pool) portsrepo.SalaryPaymentRepositoryFacade {
	return &PgxSalaryPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryPaymentRepositoryFacade = (*PgxSalaryPaymentRepository)(nil)

const salaryPaymentSelect = `
	SELECT payment_id, professional_id, amount, payment_date, period_key, period_kind
	FROM salary_payments`

func (r *PgxSalaryPaymentRepository) FindSalaryPayment(ctx context.Context, professionalID, periodKey string, kind domain.PeriodKind) (*domain.SalaryPayment, error) {
	rows, err := r.Pool.Query(ctx, salaryPaymentSelect+`
		WHERE professional_id = $1 AND period_key = $2 AND period_kind = $3
		LIMIT 1`, professionalID, periodKey, string(kind))
	if err != nil {
		return nil, r.wrap("failed to find salary payment", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SalaryPayment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.wrap("failed to find salary payment", err)
	}
	p, err := mapping.ToDomainSalaryPayment(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map salary payment", err)
	}
	return &p, nil
}

func (r *PgxSalaryPaymentRepository) ListSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	rows, err := r.Pool.Query(ctx, salaryPaymentSelect+` ORDER BY to_date(payment_date, 'DD.MM.YYYY'), payment_id`)
	if err != nil {
		return nil, r.wrap("failed to query salary payments", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SalaryPayment])
	if err != nil {
		return nil, r.wrap("failed to scan salary payments", err)
	}

	payments := make([]domain.SalaryPayment, 0, len(ms))
	for _, m := range ms {
		p, err := mapping.ToDomainSalaryPayment(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to map salary payments", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// FindDuplicateSettlements groups payments by settlement key. The unique index
// keeps this empty on a migrated database; rows imported before it are still caught.
func (r *PgxSalaryPaymentRepository) FindDuplicateSettlements(ctx context.Context) ([]domain.SettlementConflict, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT professional_id, period_key, period_kind, array_agg(payment_id ORDER BY payment_id)
		FROM salary_payments
		GROUP BY professional_id, period_key, period_kind
		HAVING COUNT(*) > 1
		ORDER BY professional_id, period_key`)
	if err != nil {
		return nil, r.wrap("failed to query duplicate settlements", err)
	}
	conflicts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SettlementConflict, error) {
		var c domain.SettlementConflict
		var kind string
		err := row.Scan(&c.ProfessionalID, &c.PeriodKey, &kind, &c.PaymentIDs)
		c.PeriodKind = domain.PeriodKind(kind)
		return c, err
	})
	if err != nil {
		return nil, r.wrap("failed to scan duplicate settlements", err)
	}
	return conflicts, nil
}

// SaveSalaryPayment inserts a settlement. The unique index on
// (professional_id, period_key, period_kind) turns a concurrent second
// settlement into apperrors.ErrDuplicate.
func (r *PgxSalaryPaymentRepository) SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment) error {
	m := mapping.ToModelSalaryPayment(payment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO salary_payments (payment_id, professional_id, amount, payment_date, period_key, period_kind)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.PaymentID, m.ProfessionalID, m.Amount, m.PaymentDate, m.PeriodKey, m.PeriodKind)
	if err != nil {
		return r.wrap("failed to save salary payment for "+m.ProfessionalID, err)
	}
	return nil
}
