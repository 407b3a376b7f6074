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

// PgxProfessionalRepository reads the professional profiles the ledger depends on.
type PgxProfessionalRepository struct {
	BaseRepository
}

func newPgxProfessionalRepository(pool *pgxpool.Pool) portsrepo.ProfessionalReader {
	return &PgxProfessionalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfessionalReader = (*PgxProfessionalRepository)(nil)

func (r *PgxProfessionalRepository) FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error) {
	var m models.Professional
	err := r.Pool.QueryRow(ctx, `
		SELECT professional_id, name, monthly_salary, weekly_salary
		FROM professionals
		WHERE professional_id = $1`, professionalID).
		Scan(&m.ProfessionalID, &m.Name, &m.MonthlySalary, &m.WeeklySalary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, r.wrap("failed to find professional "+professionalID, err)
	}
	p := mapping.ToDomainProfessional(m)
	return &p, nil
}

func (r *PgxProfessionalRepository) ListSalariedProfessionals(ctx context.Context) ([]domain.Professional, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT professional_id, name, monthly_salary, weekly_salary
		FROM professionals
		WHERE monthly_salary > 0 OR weekly_salary > 0
		ORDER BY name`)
	if err != nil {
		return nil, r.wrap("failed to query salaried professionals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Professional])
	if err != nil {
		return nil, r.wrap("failed to scan salaried professionals", err)
	}
	return mapping.ToDomainProfessionalSlice(ms), nil
}
