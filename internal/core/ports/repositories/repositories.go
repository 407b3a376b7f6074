package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	JobRepo           JobRepositoryFacade
	ProfessionalRepo  ProfessionalReader
	SalaryPaymentRepo SalaryPaymentRepositoryFacade
	TransactionRepo   TransactionReader
	Health            StoreHealth
}
