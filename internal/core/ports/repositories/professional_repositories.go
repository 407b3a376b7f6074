package repositories

import (
	"context"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
)

// ProfessionalReader defines read operations for professional data.
// Professionals are maintained by the profile collaborator; the ledger only reads them.
type ProfessionalReader interface {
	FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error)

	// ListSalariedProfessionals retrieves professionals with a positive monthly or weekly salary.
	ListSalariedProfessionals(ctx context.Context) ([]domain.Professional, error)
}
