package services

import (
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Obligations first; the ledger summary depends on them.
	container.Obligation = NewObligationService(repos.JobRepo, repos.ProfessionalRepo, repos.SalaryPaymentRepo)
	container.Ledger = NewLedgerService(repos, container.Obligation)
	container.Planning = NewPlanningService(repos.JobRepo)
	container.Job = NewJobService(repos.JobRepo, repos.ProfessionalRepo)
	container.Payment = NewPaymentService(repos.JobRepo, repos.ProfessionalRepo, repos.SalaryPaymentRepo)

	return container
}
