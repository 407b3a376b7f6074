package pgsql

import (
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JobRepo:           newPgxJobRepository(dbPool),
		ProfessionalRepo:  newPgxProfessionalRepository(dbPool),
		SalaryPaymentRepo: newPgxSalaryPaymentRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		Health:            &BaseRepository{Pool: dbPool},
	}
}
